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
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCardService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cards := repomocks.NewMockCardRepository(ctrl)
	svc := NewCardService(cards, nil)

	cards.EXPECT().Create(gomock.Any(), domain.Card{
		StoreID: 1, Name: "Summer", DiscountType: domain.DiscountTypePercentage, DiscountValue: 20, Status: domain.CardStatusActive,
	}).Return(int64(3), nil)
	id, err := svc.Create(context.Background(), domain.Card{
		StoreID: 1, Name: "Summer", DiscountType: domain.DiscountTypePercentage, DiscountValue: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	_, err = svc.Create(context.Background(), domain.Card{StoreID: 1, Name: "Summer", DiscountType: domain.DiscountTypePercentage, DiscountValue: 120})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCardService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cards := repomocks.NewMockCardRepository(ctrl)
	svc := NewCardService(cards, nil)

	cards.EXPECT().SetStatus(gomock.Any(), int64(1), int64(9), domain.CardStatusInactive).Return(repository.ErrRecordNotFound)
	assert.ErrorIs(t, svc.SetStatus(context.Background(), 1, 9, domain.CardStatusInactive), ErrCardNotFound)
	assert.ErrorIs(t, svc.SetStatus(context.Background(), 1, 9, "archived"), ErrInvalidInput)
}

func TestCardService_ListCodes(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(codes *repomocks.MockCodeRepository)
		wantCodes []domain.DiscountCode
		wantTotal int64
		wantErr   error
	}{
		{
			name: "查询成功",
			mock: func(codes *repomocks.MockCodeRepository) {
				codes.EXPECT().List(gomock.Any(), int64(1), 0, 20).Return([]domain.DiscountCode{{ID: 1}}, nil)
				codes.EXPECT().Count(gomock.Any(), int64(1)).Return(int64(21), nil)
			},
			wantCodes: []domain.DiscountCode{{ID: 1}},
			wantTotal: 21,
		},
		{
			name: "计数失败",
			mock: func(codes *repomocks.MockCodeRepository) {
				codes.EXPECT().List(gomock.Any(), int64(1), 0, 20).Return([]domain.DiscountCode{}, nil)
				codes.EXPECT().Count(gomock.Any(), int64(1)).Return(int64(0), errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			codes := repomocks.NewMockCodeRepository(ctrl)
			tc.mock(codes)
			list, total, err := NewCardService(nil, codes).ListCodes(context.Background(), 1, 0, 20)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCodes, list)
			assert.Equal(t, tc.wantTotal, total)
		})
	}
}
