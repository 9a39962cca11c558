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

type AutomationDAO interface {
	Create(ctx context.Context, r AutomationRule) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (AutomationRule, error)
	FindByStore(ctx context.Context, storeID int64) ([]AutomationRule, error)
	FindActive(ctx context.Context, storeID int64, trigger string) ([]AutomationRule, error)
	UpdateActive(ctx context.Context, storeID, id int64, active bool) error
}

type GORMAutomationDAO struct {
	db *egorm.Component
}

func NewGORMAutomationDAO(db *egorm.Component) AutomationDAO {
	return &GORMAutomationDAO{db: db}
}

func (d *GORMAutomationDAO) Create(ctx context.Context, r AutomationRule) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := d.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (d *GORMAutomationDAO) FindByID(ctx context.Context, storeID, id int64) (AutomationRule, error) {
	var res AutomationRule
	err := d.db.WithContext(ctx).First(&res, "store_id = ? AND id = ?", storeID, id).Error
	return res, err
}

func (d *GORMAutomationDAO) FindByStore(ctx context.Context, storeID int64) ([]AutomationRule, error) {
	var res []AutomationRule
	err := d.db.WithContext(ctx).Where("store_id = ?", storeID).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (d *GORMAutomationDAO) FindActive(ctx context.Context, storeID int64, trigger string) ([]AutomationRule, error) {
	var res []AutomationRule
	err := d.db.WithContext(ctx).
		Where("store_id = ? AND trigger_type = ? AND is_active = ?", storeID, trigger, true).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMAutomationDAO) UpdateActive(ctx context.Context, storeID, id int64, active bool) error {
	res := d.db.WithContext(ctx).Model(&AutomationRule{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(map[string]any{"is_active": active, "utime": time.Now().UnixMilli()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
