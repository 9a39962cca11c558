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
	"testing"

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemberService_Sync(t *testing.T) {
	store := domain.Store{ID: 1, Plan: domain.PlanPro}
	testCases := []struct {
		name        string
		email       string
		mock        func(repo *repomocks.MockMemberRepository)
		wantCreated bool
		wantErr     error
	}{
		{
			name:  "新客户",
			email: " Ann@X.com",
			mock: func(repo *repomocks.MockMemberRepository) {
				repo.EXPECT().CreateMember(gomock.Any(), int64(250), domain.Member{
					StoreID: 1,
					Email:   "ann@x.com",
					Name:    "Ann",
					Source:  domain.MemberSourceShopifySync,
					Status:  domain.MemberStatusActive,
				}).Return(domain.Member{ID: 2}, nil)
			},
			wantCreated: true,
		},
		{
			name:  "已经是会员",
			email: "ann@x.com",
			mock: func(repo *repomocks.MockMemberRepository) {
				repo.EXPECT().CreateMember(gomock.Any(), int64(250), gomock.Any()).Return(domain.Member{}, repository.ErrMemberExists)
				repo.EXPECT().FindByEmail(gomock.Any(), int64(1), "ann@x.com").Return(domain.Member{ID: 2}, nil)
			},
		},
		{
			name:  "超出配额",
			email: "ann@x.com",
			mock: func(repo *repomocks.MockMemberRepository) {
				repo.EXPECT().CreateMember(gomock.Any(), int64(250), gomock.Any()).Return(domain.Member{}, domain.ErrQuotaExceeded)
			},
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "邮箱不合法",
			email:   "nope",
			mock:    func(repo *repomocks.MockMemberRepository) {},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockMemberRepository(ctrl)
			tc.mock(repo)
			svc := NewMemberService(repo, NewQuotaEnforcer(repo, config.LoyaltyConfig{}))
			_, created, err := svc.Sync(context.Background(), store, tc.email, "Ann")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
		})
	}
}

func TestMemberService_SetStatus(t *testing.T) {
	store := domain.Store{ID: 1, Plan: domain.PlanFree}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockMemberRepository(ctrl)
	svc := NewMemberService(repo, NewQuotaEnforcer(repo, config.LoyaltyConfig{}))

	repo.EXPECT().SetStatus(gomock.Any(), int64(1), int64(2), domain.MemberStatusActive, int64(50)).Return(domain.ErrQuotaExceeded)
	assert.ErrorIs(t, svc.SetStatus(context.Background(), store, 2, domain.MemberStatusActive), ErrQuotaExceeded)

	repo.EXPECT().SetStatus(gomock.Any(), int64(1), int64(3), domain.MemberStatusBlocked, int64(50)).Return(repository.ErrRecordNotFound)
	assert.ErrorIs(t, svc.SetStatus(context.Background(), store, 3, domain.MemberStatusBlocked), ErrMemberNotFound)

	assert.ErrorIs(t, svc.SetStatus(context.Background(), store, 3, "deleted"), ErrInvalidInput)
}
