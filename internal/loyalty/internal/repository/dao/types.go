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
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type Store struct {
	Id            int64                  `gorm:"primaryKey;autoIncrement;comment:店铺自增ID"`
	OwnerUid      int64                  `gorm:"not null;index:idx_owner_uid;comment:商家用户ID"`
	Name          string                 `gorm:"type:varchar(255);not null;comment:店铺名称"`
	ShopDomain    string                 `gorm:"type:varchar(255);not null;uniqueIndex:uniq_shop_domain;comment:规范化之后的店铺域名"`
	WebhookSecret string                 `gorm:"type:varchar(255);not null;comment:webhook 签名密钥"`
	Plan          string                 `gorm:"type:varchar(16);not null;default:free;comment:套餐 free/base/pro"`
	Status        string                 `gorm:"type:varchar(16);not null;default:active;comment:active/paused/disconnected"`
	Brand         sqlx.JsonColumn[Brand] `gorm:"type:varchar(512);comment:卡面品牌信息"`
	Ctime         int64
	Utime         int64
}

type Brand struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

type Member struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:会员自增ID"`
	StoreId int64  `gorm:"not null;uniqueIndex:uniq_store_email;index:idx_store_status,priority:1;comment:店铺ID"`
	Email   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_store_email;comment:规范化之后的邮箱"`
	Name    string `gorm:"type:varchar(255);not null;default:'';comment:展示名"`
	Source  string `gorm:"type:varchar(32);not null;comment:import/manual/shopify_sync/automation"`
	Status  string `gorm:"type:varchar(16);not null;index:idx_store_status,priority:2;comment:active/blocked"`
	Ctime   int64
	Utime   int64
}

type Card struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:卡券模板自增ID"`
	StoreId       int64  `gorm:"not null;index:idx_store_id;comment:店铺ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:卡券名称"`
	DiscountType  string `gorm:"type:varchar(16);not null;comment:percentage/fixed_amount"`
	DiscountValue int64  `gorm:"not null;comment:百分比或者金额（分）"`
	ExpireDays    int    `gorm:"not null;default:30;comment:有效天数,0表示永不过期"`
	Status        string `gorm:"type:varchar(16);not null;default:active;comment:active/inactive"`
	Ctime         int64
	Utime         int64
}

type DiscountCode struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:折扣码自增ID"`
	StoreId    int64  `gorm:"not null;uniqueIndex:uniq_store_code;comment:店铺ID"`
	CardId     int64  `gorm:"not null;index:idx_card_id;comment:卡券模板ID"`
	MemberId   int64  `gorm:"not null;index:idx_member_id;comment:会员ID"`
	Code       string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_store_code;comment:折扣码"`
	IsRedeemed bool   `gorm:"not null;default:false;comment:是否已核销"`
	OrderId    string `gorm:"type:varchar(64);not null;default:'';comment:核销订单ID"`
	OrderName  string `gorm:"type:varchar(255);not null;default:'';comment:核销订单名"`
	RedeemedAt int64  `gorm:"not null;default:0"`
	IssuedAt   int64  `gorm:"not null"`
	ExpiresAt  int64  `gorm:"not null;default:0;comment:0表示永不过期"`
	Ctime      int64
	Utime      int64
}

type AutomationRule struct {
	Id           int64         `gorm:"primaryKey;autoIncrement;comment:自动化规则自增ID"`
	StoreId      int64         `gorm:"not null;index:idx_store_trigger,priority:1;comment:店铺ID"`
	CardId       int64         `gorm:"not null;comment:卡券模板ID"`
	TriggerType  string        `gorm:"type:varchar(32);not null;index:idx_store_trigger,priority:2;comment:order_paid/customer_created/manual"`
	TriggerValue sql.NullInt64 `gorm:"comment:order_paid 的订单金额下限(分)"`
	IsActive     bool          `gorm:"not null;default:true"`
	Ctime        int64
	Utime        int64
}

type RedeemLog struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:核销记录自增ID"`
	StoreId     int64  `gorm:"not null;index:idx_store_id;comment:店铺ID"`
	CodeId      int64  `gorm:"not null;uniqueIndex:uniq_code_id;comment:折扣码ID"`
	Code        string `gorm:"type:varchar(64);not null;comment:折扣码"`
	OrderId     string `gorm:"type:varchar(64);not null;index:idx_order_id;comment:平台订单ID"`
	OrderAmount int64  `gorm:"not null;comment:订单金额(分)"`
	Ctime       int64
}

type SendTask struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:投递任务自增ID"`
	StoreId      int64  `gorm:"not null;index:idx_store_id;comment:店铺ID"`
	AutomationId int64  `gorm:"not null;default:0;comment:自动化规则ID,导入为0"`
	MemberId     int64  `gorm:"not null;comment:会员ID"`
	CodeId       int64  `gorm:"not null;comment:折扣码ID"`
	Key          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_key;comment:去重键"`
	Status       string `gorm:"type:varchar(16);not null;index:idx_status_retry,priority:1;comment:pending/sent/failed"`
	PassUrl      string `gorm:"type:varchar(1024);not null;default:''"`
	ErrorMessage string `gorm:"type:varchar(1024);not null;default:''"`
	RetryCount   int    `gorm:"not null;default:0;index:idx_status_retry,priority:2"`
	SentAt       int64  `gorm:"not null;default:0"`
	Ctime        int64
	Utime        int64
}
