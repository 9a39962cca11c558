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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/pkg/errors"
)

var ErrStoreNotFound = errors.New("店铺缓存不存在")

const storeExpiration = 10 * time.Minute

// StoreCache 以域名为 key 缓存店铺，webhook 验签时使用
type StoreCache interface {
	Get(ctx context.Context, domain string) (domain.Store, error)
	Set(ctx context.Context, s domain.Store) error
	Del(ctx context.Context, domain string) error
}

type storeCache struct {
	ec ecache.Cache
}

func NewStoreCache(ec ecache.Cache) StoreCache {
	return &storeCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "store:",
		},
	}
}

func (c *storeCache) Get(ctx context.Context, d string) (domain.Store, error) {
	val := c.ec.Get(ctx, c.key(d))
	if val.KeyNotFound() {
		return domain.Store{}, ErrStoreNotFound
	}
	if val.Err != nil {
		return domain.Store{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Store{}, err
	}
	var s domain.Store
	err = json.Unmarshal([]byte(str), &s)
	return s, errors.Wrap(err, "反序列化店铺失败")
}

func (c *storeCache) Set(ctx context.Context, s domain.Store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化店铺失败")
	}
	return c.ec.Set(ctx, c.key(s.ShopDomain), string(data), storeExpiration)
}

func (c *storeCache) Del(ctx context.Context, d string) error {
	_, err := c.ec.Delete(ctx, c.key(d))
	return err
}

func (c *storeCache) key(d string) string {
	return fmt.Sprintf("domain:%s", d)
}
