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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomationRule_Matches(t *testing.T) {
	testCases := []struct {
		name string
		rule AutomationRule
		evt  TriggerEvent
		want bool
	}{
		{
			name: "订单金额达到下限",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerOrderPaid, TriggerValue: ptr(5000), IsActive: true},
			evt:  TriggerEvent{Type: TriggerOrderPaid, StoreID: 1, OrderTotal: 5000},
			want: true,
		},
		{
			name: "订单金额不足",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerOrderPaid, TriggerValue: ptr(5000), IsActive: true},
			evt:  TriggerEvent{Type: TriggerOrderPaid, StoreID: 1, OrderTotal: 4999},
			want: false,
		},
		{
			name: "没有金额下限",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerOrderPaid, IsActive: true},
			evt:  TriggerEvent{Type: TriggerOrderPaid, StoreID: 1},
			want: true,
		},
		{
			name: "新客户",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerCustomerCreated, IsActive: true},
			evt:  TriggerEvent{Type: TriggerCustomerCreated, StoreID: 1},
			want: true,
		},
		{
			name: "规则未启用",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerCustomerCreated},
			evt:  TriggerEvent{Type: TriggerCustomerCreated, StoreID: 1},
			want: false,
		},
		{
			name: "其他店铺",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerCustomerCreated, IsActive: true},
			evt:  TriggerEvent{Type: TriggerCustomerCreated, StoreID: 2},
			want: false,
		},
		{
			name: "类型不一致",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerCustomerCreated, IsActive: true},
			evt:  TriggerEvent{Type: TriggerOrderPaid, StoreID: 1},
			want: false,
		},
		{
			name: "manual 不会被事件触发",
			rule: AutomationRule{StoreID: 1, TriggerType: TriggerManual, IsActive: true},
			evt:  TriggerEvent{Type: TriggerManual, StoreID: 1},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Matches(tc.evt))
		})
	}
}

func ptr(v int64) *int64 {
	return &v
}
