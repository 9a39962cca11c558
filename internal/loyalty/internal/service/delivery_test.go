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

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	svcmocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deliveryMocks struct {
	pass    *svcmocks.MockPassIssuer
	tasks   *repomocks.MockSendTaskRepository
	stores  *repomocks.MockStoreRepository
	cards   *repomocks.MockCardRepository
	members *repomocks.MockMemberRepository
	codes   *repomocks.MockCodeRepository
}

func newDeliveryMocks(ctrl *gomock.Controller) deliveryMocks {
	return deliveryMocks{
		pass:    svcmocks.NewMockPassIssuer(ctrl),
		tasks:   repomocks.NewMockSendTaskRepository(ctrl),
		stores:  repomocks.NewMockStoreRepository(ctrl),
		cards:   repomocks.NewMockCardRepository(ctrl),
		members: repomocks.NewMockMemberRepository(ctrl),
		codes:   repomocks.NewMockCodeRepository(ctrl),
	}
}

func (m deliveryMocks) svc() service.DeliveryService {
	return service.NewDeliveryService(m.pass, m.tasks, m.stores, m.cards, m.members, m.codes, config.LoyaltyConfig{})
}

func TestDeliveryService_Deliver(t *testing.T) {
	store := domain.Store{ID: 1, Name: "Glow Shop"}
	card := domain.Card{ID: 3, StoreID: 1, Name: "Summer"}
	is := domain.Issuance{
		Member: domain.Member{ID: 2, Email: "ann@x.com"},
		Code:   domain.DiscountCode{ID: 5, Code: "SUMMER-1"},
		Task:   domain.SendTask{ID: 7},
	}
	testCases := []struct {
		name    string
		mock    func(m deliveryMocks)
		wantErr error
	}{
		{
			name: "投递成功",
			mock: func(m deliveryMocks) {
				m.pass.EXPECT().BuildPass(is.Member, is.Code, card, domain.Brand{Name: "Glow Shop"}).
					Return(domain.PassDescriptor{Code: "SUMMER-1"})
				m.pass.EXPECT().Deliver(gomock.Any(), is.Member, domain.PassDescriptor{Code: "SUMMER-1"}).
					Return("https://cdn/1.json", nil)
				m.tasks.EXPECT().MarkSent(gomock.Any(), int64(7), "https://cdn/1.json").Return(nil)
			},
		},
		{
			name: "投递失败",
			mock: func(m deliveryMocks) {
				m.pass.EXPECT().BuildPass(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.PassDescriptor{})
				m.pass.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("smtp error"))
				m.tasks.EXPECT().MarkFailed(gomock.Any(), int64(7), "smtp error").Return(nil)
			},
			wantErr: errors.New("smtp error"),
		},
		{
			name: "记录状态失败不影响结果",
			mock: func(m deliveryMocks) {
				m.pass.EXPECT().BuildPass(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.PassDescriptor{})
				m.pass.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return("u", nil)
				m.tasks.EXPECT().MarkSent(gomock.Any(), int64(7), "u").Return(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDeliveryMocks(ctrl)
			tc.mock(m)
			err := m.svc().Deliver(context.Background(), store, card, is)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeliveryService_RetryFailed(t *testing.T) {
	store := domain.Store{ID: 1, Name: "Glow", Brand: domain.Brand{Name: "Glow Beauty"}}
	card := domain.Card{ID: 3, StoreID: 1}
	member := domain.Member{ID: 2, StoreID: 1, Status: domain.MemberStatusActive}
	task := func(id int64) domain.SendTask {
		return domain.SendTask{ID: id, StoreID: 1, MemberID: 2, CodeID: id * 10, Status: domain.SendTaskStatusFailed}
	}

	testCases := []struct {
		name    string
		mock    func(m deliveryMocks)
		want    int
		wantErr error
	}{
		{
			name: "部分成功",
			mock: func(m deliveryMocks) {
				m.tasks.EXPECT().FindRetryable(gomock.Any(), 3, 100, gomock.Any()).
					Return([]domain.SendTask{task(1), task(2), task(3)}, nil)
				m.stores.EXPECT().FindByID(gomock.Any(), int64(1)).Return(store, nil).Times(3)
				m.members.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(member, nil).Times(3)
				m.cards.EXPECT().FindByID(gomock.Any(), int64(1), int64(3)).Return(card, nil).Times(2)
				// 1 投递成功
				m.codes.EXPECT().FindByID(gomock.Any(), int64(10)).
					Return(domain.DiscountCode{ID: 10, CardID: 3, Code: "A"}, nil)
				// 2 已经核销，不再投递
				m.codes.EXPECT().FindByID(gomock.Any(), int64(20)).
					Return(domain.DiscountCode{ID: 20, CardID: 3, Code: "B", IsRedeemed: true}, nil)
				m.tasks.EXPECT().MarkFailed(gomock.Any(), int64(2), "折扣码 B 已核销").Return(nil)
				// 3 再次投递失败
				m.codes.EXPECT().FindByID(gomock.Any(), int64(30)).
					Return(domain.DiscountCode{ID: 30, CardID: 3, Code: "C"}, nil)

				m.pass.EXPECT().BuildPass(member, gomock.Any(), card, domain.Brand{Name: "Glow Beauty"}).
					Return(domain.PassDescriptor{}).Times(2)
				m.pass.EXPECT().Deliver(gomock.Any(), member, gomock.Any()).Return("u1", nil)
				m.tasks.EXPECT().MarkSent(gomock.Any(), int64(1), "u1").Return(nil)
				m.pass.EXPECT().Deliver(gomock.Any(), member, gomock.Any()).Return("", errors.New("smtp error"))
				m.tasks.EXPECT().MarkFailed(gomock.Any(), int64(3), "smtp error").Return(nil)
			},
			want: 1,
		},
		{
			name: "会员已禁用",
			mock: func(m deliveryMocks) {
				m.tasks.EXPECT().FindRetryable(gomock.Any(), 3, 100, gomock.Any()).Return([]domain.SendTask{task(1)}, nil)
				m.stores.EXPECT().FindByID(gomock.Any(), int64(1)).Return(store, nil)
				m.codes.EXPECT().FindByID(gomock.Any(), int64(10)).Return(domain.DiscountCode{ID: 10, CardID: 3}, nil)
				m.members.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).
					Return(domain.Member{ID: 2, Status: domain.MemberStatusBlocked}, nil)
				m.tasks.EXPECT().MarkFailed(gomock.Any(), int64(1), "会员 2 已被禁用").Return(nil)
			},
			want: 0,
		},
		{
			name: "卡券查询失败",
			mock: func(m deliveryMocks) {
				m.tasks.EXPECT().FindRetryable(gomock.Any(), 3, 100, gomock.Any()).Return([]domain.SendTask{task(1)}, nil)
				m.stores.EXPECT().FindByID(gomock.Any(), int64(1)).Return(store, nil)
				m.codes.EXPECT().FindByID(gomock.Any(), int64(10)).Return(domain.DiscountCode{ID: 10, CardID: 3}, nil)
				m.members.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(member, nil)
				m.cards.EXPECT().FindByID(gomock.Any(), int64(1), int64(3)).Return(domain.Card{}, errors.New("db error"))
				m.tasks.EXPECT().MarkFailed(gomock.Any(), int64(1), "查询卡券失败: db error").Return(nil)
			},
			want: 0,
		},
		{
			name: "查询任务失败",
			mock: func(m deliveryMocks) {
				m.tasks.EXPECT().FindRetryable(gomock.Any(), 3, 100, gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDeliveryMocks(ctrl)
			tc.mock(m)
			n, err := m.svc().RetryFailed(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestDeliveryService_RetryFailed_StalePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newDeliveryMocks(ctrl)
	before := time.Now()
	m.tasks.EXPECT().FindRetryable(gomock.Any(), 3, 100, gomock.Any()).
		DoAndReturn(func(ctx context.Context, maxRetries, limit int, staleBefore int64) ([]domain.SendTask, error) {
			// 默认 10 分钟仍未投递的 pending 任务交给重试
			assert.LessOrEqual(t, staleBefore, before.Add(-10*time.Minute).UnixMilli()+1000)
			assert.GreaterOrEqual(t, staleBefore, before.Add(-10*time.Minute).UnixMilli())
			return nil, nil
		})
	n, err := m.svc().RetryFailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
