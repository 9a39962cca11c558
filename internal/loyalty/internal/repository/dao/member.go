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
	"fmt"
	"time"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type MemberDAO interface {
	CountActive(ctx context.Context, storeID int64) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (Member, error)
	FindByEmail(ctx context.Context, storeID int64, email string) (Member, error)
	FindByIDs(ctx context.Context, storeID int64, ids []int64) ([]Member, error)
	// CreateWithinQuota 在同一个事务内锁定店铺、重新计数并插入会员，
	// code 和 task 不为 nil 时一并插入
	CreateWithinQuota(ctx context.Context, limit int64, m Member, code *DiscountCode, task *SendTask) (Member, error)
	// SetStatus 从 blocked 恢复为 active 时同样受配额约束
	SetStatus(ctx context.Context, storeID, id int64, status string, limit int64) error
}

type GORMMemberDAO struct {
	db *egorm.Component
}

func NewGORMMemberDAO(db *egorm.Component) MemberDAO {
	return &GORMMemberDAO{db: db}
}

func (d *GORMMemberDAO) CountActive(ctx context.Context, storeID int64) (int64, error) {
	return d.countActive(d.db.WithContext(ctx), storeID)
}

func (d *GORMMemberDAO) countActive(tx *egorm.Component, storeID int64) (int64, error) {
	var cnt int64
	err := tx.Model(&Member{}).
		Where("store_id = ? AND status = ?", storeID, memberStatusActive).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMMemberDAO) FindByID(ctx context.Context, storeID, id int64) (Member, error) {
	var res Member
	err := d.db.WithContext(ctx).First(&res, "store_id = ? AND id = ?", storeID, id).Error
	return res, err
}

func (d *GORMMemberDAO) FindByEmail(ctx context.Context, storeID int64, email string) (Member, error) {
	var res Member
	err := d.db.WithContext(ctx).First(&res, "store_id = ? AND email = ?", storeID, email).Error
	return res, err
}

func (d *GORMMemberDAO) FindByIDs(ctx context.Context, storeID int64, ids []int64) ([]Member, error) {
	var res []Member
	err := d.db.WithContext(ctx).Where("store_id = ? AND id IN ?", storeID, ids).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMMemberDAO) CreateWithinQuota(ctx context.Context, limit int64, m Member, code *DiscountCode, task *SendTask) (Member, error) {
	now := time.Now().UnixMilli()
	m.Ctime, m.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := d.lockStore(tx, m.StoreId); err != nil {
			return err
		}
		if m.Status == memberStatusActive {
			cnt, err := d.countActive(tx, m.StoreId)
			if err != nil {
				return err
			}
			if cnt+1 > limit {
				return &domain.QuotaExceededError{CurrentCount: cnt, AttemptedCount: 1, Limit: limit}
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			if isMySQLUniqueIndexError(err) {
				return fmt.Errorf("%w: %s", ErrMemberExists, m.Email)
			}
			return err
		}
		if code == nil {
			return nil
		}
		code.MemberId = m.Id
		if err := createCode(tx, code, now); err != nil {
			return err
		}
		if task == nil {
			return nil
		}
		task.MemberId, task.CodeId = m.Id, code.Id
		return createTask(tx, task, now)
	})
	return m, err
}

func (d *GORMMemberDAO) SetStatus(ctx context.Context, storeID, id int64, status string, limit int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := d.lockStore(tx, storeID); err != nil {
			return err
		}
		var m Member
		if err := tx.First(&m, "store_id = ? AND id = ?", storeID, id).Error; err != nil {
			return err
		}
		if m.Status == status {
			return nil
		}
		if status == memberStatusActive {
			cnt, err := d.countActive(tx, storeID)
			if err != nil {
				return err
			}
			if cnt+1 > limit {
				return &domain.QuotaExceededError{CurrentCount: cnt, AttemptedCount: 1, Limit: limit}
			}
		}
		return tx.Model(&Member{}).Where("id = ?", id).
			Updates(map[string]any{"status": status, "utime": now}).Error
	})
}

// lockStore 同一个店铺的会员写入串行化
func (d *GORMMemberDAO) lockStore(tx *egorm.Component, storeID int64) error {
	var s Store
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").First(&s, "id = ?", storeID).Error
}

const memberStatusActive = string(domain.MemberStatusActive)
