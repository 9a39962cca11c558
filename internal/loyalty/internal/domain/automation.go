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

type TriggerType string

const (
	TriggerOrderPaid       TriggerType = "order_paid"
	TriggerCustomerCreated TriggerType = "customer_created"
	TriggerManual          TriggerType = "manual"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerOrderPaid, TriggerCustomerCreated, TriggerManual:
		return true
	}
	return false
}

// AutomationRule 事件发生时给会员发放 CardID 对应的卡券
type AutomationRule struct {
	ID          int64
	StoreID     int64
	CardID      int64
	TriggerType TriggerType
	// TriggerValue 仅 order_paid 使用，订单金额下限，单位为分；nil 表示不限制
	TriggerValue *int64
	IsActive     bool
	Ctime        int64
	Utime        int64
}

// TriggerEvent 一次可能触发自动化规则的业务事件
type TriggerEvent struct {
	Type    TriggerType
	StoreID int64
	// Key 同一个事件重复投递时保持不变，用于去重
	Key        string
	OrderTotal int64
	MemberID   int64
	Email      string
	Name       string
}

// Matches manual 规则永远不会被事件触发
func (r AutomationRule) Matches(evt TriggerEvent) bool {
	if !r.IsActive || r.StoreID != evt.StoreID || r.TriggerType != evt.Type {
		return false
	}
	switch r.TriggerType {
	case TriggerOrderPaid:
		return r.TriggerValue == nil || evt.OrderTotal >= *r.TriggerValue
	case TriggerCustomerCreated:
		return true
	default:
		return false
	}
}
