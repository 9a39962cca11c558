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

import "time"

type DiscountCode struct {
	ID       int64
	StoreID  int64
	CardID   int64
	MemberID int64
	Code     string
	// 核销信息，以第一笔订单为准
	IsRedeemed bool
	OrderID    string
	OrderName  string
	RedeemedAt int64
	IssuedAt   int64
	// ExpiresAt 为 0 表示永不过期
	ExpiresAt int64
	Ctime     int64
	Utime     int64
}

func (c DiscountCode) Expired(now time.Time) bool {
	return c.ExpiresAt > 0 && now.UnixMilli() >= c.ExpiresAt
}

// ExpireAt 按自然日计算，expireDays 为 0 时返回 0
func ExpireAt(issuedAt int64, expireDays int) int64 {
	if expireDays <= 0 {
		return 0
	}
	return time.UnixMilli(issuedAt).UTC().AddDate(0, 0, expireDays).UnixMilli()
}

// Issuance 一次发放落库之后的结果
type Issuance struct {
	Member Member
	Code   DiscountCode
	Task   SendTask
}
