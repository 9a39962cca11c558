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

// Redemption 平台推送的一笔已支付订单里使用的折扣码
type Redemption struct {
	StoreID   int64
	Codes     []string
	OrderID   string
	OrderName string
	// OrderAmount 最小货币单位
	OrderAmount int64
}

type RedemptionResult struct {
	// UpdatedCodes 当前与该订单关联的折扣码，重放时保持不变
	UpdatedCodes []string
	// Conflicts 已经被其他订单核销的折扣码
	Conflicts []string
}

type RedeemLog struct {
	ID          int64
	StoreID     int64
	CodeID      int64
	Code        string
	OrderID     string
	OrderAmount int64
	Ctime       int64
}
