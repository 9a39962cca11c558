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

package domain

const BarcodeFormatQR = "PKBarcodeFormatQR"

type Brand struct {
	Name            string
	BackgroundColor string
	ForegroundColor string
}

type Barcode struct {
	Format  string
	Message string
}

// PassDescriptor 钱包卡券的内容，不包含任何订单数据
type PassDescriptor struct {
	SerialNumber     string
	OrganizationName string
	Description      string
	Headline         string
	Code             string
	MemberName       string
	MemberEmail      string
	Terms            string
	BackgroundColor  string
	ForegroundColor  string
	Barcode          Barcode
	// ExpiresAt 为 0 表示永不过期
	ExpiresAt int64
}
