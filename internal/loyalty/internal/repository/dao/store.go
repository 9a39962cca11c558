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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreDAO interface {
	// Upsert 按 ShopDomain 创建或者更新店铺，已有密钥不会被覆盖
	Upsert(ctx context.Context, s Store) (Store, error)
	FindByID(ctx context.Context, id int64) (Store, error)
	FindByDomain(ctx context.Context, domain string) (Store, error)
	FindByOwner(ctx context.Context, uid int64) (Store, error)
}

type GORMStoreDAO struct {
	db *egorm.Component
}

func NewGORMStoreDAO(db *egorm.Component) StoreDAO {
	return &GORMStoreDAO{db: db}
}

func (d *GORMStoreDAO) Upsert(ctx context.Context, s Store) (Store, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		var existing Store
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("shop_domain = ?", s.ShopDomain).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Ctime, s.Utime = now, now
			return tx.Create(&s).Error
		}
		if err != nil {
			return err
		}
		if existing.OwnerUid != s.OwnerUid {
			return ErrStoreOwned
		}
		if existing.WebhookSecret != "" && s.WebhookSecret != "" && existing.WebhookSecret != s.WebhookSecret {
			return ErrSecretImmutable
		}
		updates := map[string]any{
			"name":   s.Name,
			"plan":   s.Plan,
			"status": s.Status,
			"brand":  s.Brand,
			"utime":  now,
		}
		if existing.WebhookSecret == "" {
			updates["webhook_secret"] = s.WebhookSecret
		}
		if err = tx.Model(&Store{}).Where("id = ?", existing.Id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", existing.Id).First(&s).Error
	})
	return s, err
}

func (d *GORMStoreDAO) FindByID(ctx context.Context, id int64) (Store, error) {
	var res Store
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *GORMStoreDAO) FindByDomain(ctx context.Context, domain string) (Store, error) {
	var res Store
	err := d.db.WithContext(ctx).First(&res, "shop_domain = ?", domain).Error
	return res, err
}

func (d *GORMStoreDAO) FindByOwner(ctx context.Context, uid int64) (Store, error) {
	var res Store
	err := d.db.WithContext(ctx).Order("id ASC").First(&res, "owner_uid = ?", uid).Error
	return res, err
}
