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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedemptionLedger_ApplyRedemption(t *testing.T) {
	order := domain.Redemption{
		StoreID:     1,
		Codes:       []string{" summer-ab12cd34", "SUMMER-AB12CD34", "UNKNOWN-1"},
		OrderID:     "123",
		OrderName:   "#1001",
		OrderAmount: 5000,
	}
	normalized := order
	normalized.Codes = []string{"SUMMER-AB12CD34", "UNKNOWN-1"}

	testCases := []struct {
		name    string
		r       domain.Redemption
		mock    func(repo *repomocks.MockCodeRepository)
		want    domain.RedemptionResult
		wantErr error
	}{
		{
			name: "首次核销",
			r:    order,
			mock: func(repo *repomocks.MockCodeRepository) {
				repo.EXPECT().Redeem(gomock.Any(), normalized).Return([]domain.DiscountCode{
					{ID: 1, Code: "SUMMER-AB12CD34", IsRedeemed: true, OrderID: "123", OrderName: "#1001"},
				}, []int64{1}, nil)
			},
			want: domain.RedemptionResult{UpdatedCodes: []string{"SUMMER-AB12CD34"}, Conflicts: []string{}},
		},
		{
			name: "重复投递结果一致",
			r:    order,
			mock: func(repo *repomocks.MockCodeRepository) {
				repo.EXPECT().Redeem(gomock.Any(), normalized).Return([]domain.DiscountCode{
					{ID: 1, Code: "SUMMER-AB12CD34", IsRedeemed: true, OrderID: "123", OrderName: "#1001"},
				}, []int64{}, nil)
			},
			want: domain.RedemptionResult{UpdatedCodes: []string{"SUMMER-AB12CD34"}, Conflicts: []string{}},
		},
		{
			name: "已被其他订单核销",
			r:    order,
			mock: func(repo *repomocks.MockCodeRepository) {
				repo.EXPECT().Redeem(gomock.Any(), normalized).Return([]domain.DiscountCode{
					{ID: 1, Code: "SUMMER-AB12CD34", IsRedeemed: true, OrderID: "99"},
				}, []int64{}, nil)
			},
			want: domain.RedemptionResult{UpdatedCodes: []string{}, Conflicts: []string{"SUMMER-AB12CD34"}},
		},
		{
			name: "订单没有折扣码",
			r:    domain.Redemption{StoreID: 1, OrderID: "123", Codes: []string{" "}},
			mock: func(repo *repomocks.MockCodeRepository) {},
			want: domain.RedemptionResult{UpdatedCodes: []string{}, Conflicts: []string{}},
		},
		{
			name: "存储失败",
			r:    order,
			mock: func(repo *repomocks.MockCodeRepository) {
				repo.EXPECT().Redeem(gomock.Any(), normalized).Return(nil, nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockCodeRepository(ctrl)
			tc.mock(repo)
			res, err := NewRedemptionLedger(repo).ApplyRedemption(context.Background(), tc.r)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
