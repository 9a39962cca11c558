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
	"errors"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrSecretImmutable = errors.New("webhook 密钥不可修改")
	ErrMemberExists    = errors.New("会员已存在")
	ErrDuplicatedCode  = errors.New("折扣码重复")
	ErrDuplicatedTask  = errors.New("投递任务已存在")
	ErrQuotaExceeded   = domain.ErrQuotaExceeded
	ErrStoreOwned      = errors.New("店铺已被其他商家绑定")
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Store{},
		&Member{},
		&Card{},
		&DiscountCode{},
		&AutomationRule{},
		&RedeemLog{},
		&SendTask{},
	)
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
