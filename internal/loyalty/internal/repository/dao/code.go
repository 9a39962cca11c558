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

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type CodeDAO interface {
	Exists(ctx context.Context, storeID int64, code string) (bool, error)
	FindByID(ctx context.Context, id int64) (DiscountCode, error)
	// CreateWithTask 折扣码和投递任务同时成功或者同时失败，
	// task.Key 重复时返回 ErrDuplicatedTask
	CreateWithTask(ctx context.Context, code DiscountCode, task SendTask) (DiscountCode, SendTask, error)
	Count(ctx context.Context, storeID int64) (int64, error)
	List(ctx context.Context, storeID int64, offset, limit int) ([]DiscountCode, error)
	// Redeem 返回订单里所有属于该店铺的折扣码（核销之后的状态），以及本次新核销的折扣码 ID
	Redeem(ctx context.Context, storeID int64, codes []string, orderID, orderName string, amount int64) ([]DiscountCode, []int64, error)
}

type GORMCodeDAO struct {
	db *egorm.Component
}

func NewGORMCodeDAO(db *egorm.Component) CodeDAO {
	return &GORMCodeDAO{db: db}
}

func (d *GORMCodeDAO) Exists(ctx context.Context, storeID int64, code string) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&DiscountCode{}).
		Where("store_id = ? AND code = ?", storeID, code).Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMCodeDAO) FindByID(ctx context.Context, id int64) (DiscountCode, error) {
	var res DiscountCode
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *GORMCodeDAO) CreateWithTask(ctx context.Context, code DiscountCode, task SendTask) (DiscountCode, SendTask, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := createCode(tx, &code, now); err != nil {
			return err
		}
		task.CodeId, task.MemberId = code.Id, code.MemberId
		return createTask(tx, &task, now)
	})
	return code, task, err
}

func (d *GORMCodeDAO) Count(ctx context.Context, storeID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&DiscountCode{}).
		Where("store_id = ?", storeID).Count(&cnt).Error
	return cnt, err
}

func (d *GORMCodeDAO) List(ctx context.Context, storeID int64, offset, limit int) ([]DiscountCode, error) {
	var res []DiscountCode
	err := d.db.WithContext(ctx).Where("store_id = ?", storeID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMCodeDAO) Redeem(ctx context.Context, storeID int64, codes []string, orderID, orderName string, amount int64) ([]DiscountCode, []int64, error) {
	now := time.Now().UnixMilli()
	var matched []DiscountCode
	var redeemed []int64
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		matched, redeemed = nil, nil
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("store_id = ? AND code IN ?", storeID, codes).
			Order("id ASC").Find(&matched).Error
		if err != nil {
			return err
		}
		for i := range matched {
			c := &matched[i]
			if c.IsRedeemed {
				continue
			}
			res := tx.Model(&DiscountCode{}).
				Where("id = ? AND is_redeemed = ?", c.Id, false).
				Updates(map[string]any{
					"is_redeemed": true,
					"order_id":    orderID,
					"order_name":  orderName,
					"redeemed_at": now,
					"utime":       now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// 行锁之下不会发生，保险起见以数据库为准
				if err = tx.First(c, "id = ?", c.Id).Error; err != nil {
					return err
				}
				continue
			}
			c.IsRedeemed, c.OrderId, c.OrderName, c.RedeemedAt, c.Utime = true, orderID, orderName, now, now
			l := RedeemLog{
				StoreId:     storeID,
				CodeId:      c.Id,
				Code:        c.Code,
				OrderId:     orderID,
				OrderAmount: amount,
				Ctime:       now,
			}
			if err = tx.Create(&l).Error; err != nil && !isMySQLUniqueIndexError(err) {
				return err
			}
			redeemed = append(redeemed, c.Id)
		}
		return nil
	})
	return matched, redeemed, err
}

func createCode(tx *egorm.Component, code *DiscountCode, now int64) error {
	code.Ctime, code.Utime = now, now
	if err := tx.Create(code).Error; err != nil {
		if isMySQLUniqueIndexError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicatedCode, code.Code)
		}
		return err
	}
	return nil
}

func createTask(tx *egorm.Component, task *SendTask, now int64) error {
	task.Ctime, task.Utime = now, now
	if err := tx.Create(task).Error; err != nil {
		if isMySQLUniqueIndexError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicatedTask, task.Key)
		}
		return err
	}
	return nil
}
