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

import (
	"errors"
	"fmt"
	"strings"
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

type CardStatus string

const (
	CardStatusActive   CardStatus = "active"
	CardStatusInactive CardStatus = "inactive"
)

func (s CardStatus) Valid() bool {
	return s == CardStatusActive || s == CardStatusInactive
}

var (
	errCardName          = errors.New("卡券名称不能为空")
	errCardDiscountType  = errors.New("未知的折扣类型")
	errCardPercentage    = errors.New("百分比折扣必须在 1 到 100 之间")
	errCardFixedAmount   = errors.New("固定金额折扣必须大于 0")
	errCardExpireDays    = errors.New("有效天数不能为负数")
	errCardInvalidStatus = errors.New("未知的卡券状态")
)

// Card 卡券模板，也就是导入时的 campaign
type Card struct {
	ID           int64
	StoreID      int64
	Name         string
	DiscountType DiscountType
	// DiscountValue 百分比时为 1-100，固定金额时为最小货币单位（分）
	DiscountValue int64
	// ExpireDays 为 0 表示永不过期
	ExpireDays int
	Status     CardStatus
	Ctime      int64
	Utime      int64
}

func (c Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errCardName
	}
	switch c.DiscountType {
	case DiscountTypePercentage:
		if c.DiscountValue < 1 || c.DiscountValue > 100 {
			return errCardPercentage
		}
	case DiscountTypeFixedAmount:
		if c.DiscountValue <= 0 {
			return errCardFixedAmount
		}
	default:
		return errCardDiscountType
	}
	if c.ExpireDays < 0 {
		return errCardExpireDays
	}
	if c.Status != "" && !c.Status.Valid() {
		return errCardInvalidStatus
	}
	return nil
}

func (c Card) Issuable() bool {
	return c.Status == CardStatusActive
}

// Headline 卡面上展示的优惠文案
func (c Card) Headline() string {
	if c.DiscountType == DiscountTypePercentage {
		return fmt.Sprintf("%d%% OFF", c.DiscountValue)
	}
	if c.DiscountValue%100 == 0 {
		return fmt.Sprintf("$%d OFF", c.DiscountValue/100)
	}
	return fmt.Sprintf("$%d.%02d OFF", c.DiscountValue/100, c.DiscountValue%100)
}
