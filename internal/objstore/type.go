// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objstore

import "context"

// Store 存放可以公开访问的文件
//
//go:generate mockgen -source=./type.go -package=objstoremocks -destination=./mocks/objstore.mock.go -typed Store
type Store interface {
	// Put 上传并返回公开访问地址
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
