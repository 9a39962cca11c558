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

func TestCard_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		card    Card
		wantErr error
	}{
		{
			name:    "百分比折扣",
			card:    Card{Name: "新人礼", DiscountType: DiscountTypePercentage, DiscountValue: 20},
			wantErr: nil,
		},
		{
			name:    "百分比上限",
			card:    Card{Name: "免单", DiscountType: DiscountTypePercentage, DiscountValue: 100, Status: CardStatusActive},
			wantErr: nil,
		},
		{
			name:    "固定金额",
			card:    Card{Name: "满减", DiscountType: DiscountTypeFixedAmount, DiscountValue: 1050, ExpireDays: 30},
			wantErr: nil,
		},
		{
			name:    "名称为空",
			card:    Card{Name: "  ", DiscountType: DiscountTypePercentage, DiscountValue: 20},
			wantErr: errCardName,
		},
		{
			name:    "百分比为0",
			card:    Card{Name: "a", DiscountType: DiscountTypePercentage, DiscountValue: 0},
			wantErr: errCardPercentage,
		},
		{
			name:    "百分比超过100",
			card:    Card{Name: "a", DiscountType: DiscountTypePercentage, DiscountValue: 101},
			wantErr: errCardPercentage,
		},
		{
			name:    "固定金额为负",
			card:    Card{Name: "a", DiscountType: DiscountTypeFixedAmount, DiscountValue: -1},
			wantErr: errCardFixedAmount,
		},
		{
			name:    "未知折扣类型",
			card:    Card{Name: "a", DiscountType: "bogo", DiscountValue: 1},
			wantErr: errCardDiscountType,
		},
		{
			name:    "有效天数为负",
			card:    Card{Name: "a", DiscountType: DiscountTypePercentage, DiscountValue: 10, ExpireDays: -1},
			wantErr: errCardExpireDays,
		},
		{
			name:    "未知状态",
			card:    Card{Name: "a", DiscountType: DiscountTypePercentage, DiscountValue: 10, Status: "deleted"},
			wantErr: errCardInvalidStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.card.Validate(), tc.wantErr)
		})
	}
}

func TestCard_Headline(t *testing.T) {
	testCases := []struct {
		name string
		card Card
		want string
	}{
		{
			name: "百分比",
			card: Card{DiscountType: DiscountTypePercentage, DiscountValue: 20},
			want: "20% OFF",
		},
		{
			name: "整数金额",
			card: Card{DiscountType: DiscountTypeFixedAmount, DiscountValue: 1000},
			want: "$10 OFF",
		},
		{
			name: "带分的金额",
			card: Card{DiscountType: DiscountTypeFixedAmount, DiscountValue: 1005},
			want: "$10.05 OFF",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.card.Headline())
		})
	}
}
