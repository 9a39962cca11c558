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
	"time"

	"github.com/ego-component/egorm"
)

type CardDAO interface {
	Create(ctx context.Context, c Card) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (Card, error)
	FindByStore(ctx context.Context, storeID int64) ([]Card, error)
	UpdateStatus(ctx context.Context, storeID, id int64, status string) error
}

type GORMCardDAO struct {
	db *egorm.Component
}

func NewGORMCardDAO(db *egorm.Component) CardDAO {
	return &GORMCardDAO{db: db}
}

func (d *GORMCardDAO) Create(ctx context.Context, c Card) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *GORMCardDAO) FindByID(ctx context.Context, storeID, id int64) (Card, error) {
	var res Card
	err := d.db.WithContext(ctx).First(&res, "store_id = ? AND id = ?", storeID, id).Error
	return res, err
}

func (d *GORMCardDAO) FindByStore(ctx context.Context, storeID int64) ([]Card, error) {
	var res []Card
	err := d.db.WithContext(ctx).Where("store_id = ?", storeID).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (d *GORMCardDAO) UpdateStatus(ctx context.Context, storeID, id int64, status string) error {
	res := d.db.WithContext(ctx).Model(&Card{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(map[string]any{"status": status, "utime": time.Now().UnixMilli()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
