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
	"regexp"
	"testing"
	"time"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCodePrefix(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{name: "Summer Sale 2024", want: "SUMMER"},
		{name: "vip", want: "VIP"},
		{name: "a-b c_d", want: "ABCD"},
		{name: "新人礼包", want: "GLOW"},
		{name: "", want: "GLOW"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodePrefix(tc.name))
		})
	}
}

func TestCodeIssuer_Issue(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	activeCard := domain.Card{ID: 3, StoreID: 1, Status: domain.CardStatusActive, ExpireDays: 30}
	member := domain.Member{ID: 9, StoreID: 1}

	testCases := []struct {
		name   string
		card   domain.Card
		tokens []string
		mock   func(ctrl *gomock.Controller) repository.CodeRepository

		wantCode string
		wantErr  error
	}{
		{
			name:   "一次成功",
			card:   activeCard,
			tokens: []string{"AB12CD34"},
			mock: func(ctrl *gomock.Controller) repository.CodeRepository {
				repo := repomocks.NewMockCodeRepository(ctrl)
				repo.EXPECT().Exists(gomock.Any(), int64(1), "SUMMER-AB12CD34").Return(false, nil)
				return repo
			},
			wantCode: "SUMMER-AB12CD34",
		},
		{
			name:   "冲突之后重试",
			card:   activeCard,
			tokens: []string{"AAAAAAAA", "BBBBBBBB"},
			mock: func(ctrl *gomock.Controller) repository.CodeRepository {
				repo := repomocks.NewMockCodeRepository(ctrl)
				repo.EXPECT().Exists(gomock.Any(), int64(1), "SUMMER-AAAAAAAA").Return(true, nil)
				repo.EXPECT().Exists(gomock.Any(), int64(1), "SUMMER-BBBBBBBB").Return(false, nil)
				return repo
			},
			wantCode: "SUMMER-BBBBBBBB",
		},
		{
			name:   "一直冲突",
			card:   activeCard,
			tokens: []string{"A", "B", "C", "D", "E"},
			mock: func(ctrl *gomock.Controller) repository.CodeRepository {
				repo := repomocks.NewMockCodeRepository(ctrl)
				repo.EXPECT().Exists(gomock.Any(), int64(1), gomock.Any()).Return(true, nil).Times(maxIssueAttempts)
				return repo
			},
			wantErr: ErrCodeCollision,
		},
		{
			name:   "查询失败",
			card:   activeCard,
			tokens: []string{"AAAAAAAA"},
			mock: func(ctrl *gomock.Controller) repository.CodeRepository {
				repo := repomocks.NewMockCodeRepository(ctrl)
				repo.EXPECT().Exists(gomock.Any(), int64(1), gomock.Any()).Return(false, errors.New("db error"))
				return repo
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "卡券已停用",
			card: domain.Card{ID: 3, StoreID: 1, Status: domain.CardStatusInactive},
			mock: func(ctrl *gomock.Controller) repository.CodeRepository {
				return repomocks.NewMockCodeRepository(ctrl)
			},
			wantErr: ErrCardUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			i := 0
			issuer := &codeIssuer{
				codes: tc.mock(ctrl),
				random: func(n int) (string, error) {
					tok := tc.tokens[i]
					i++
					return tok, nil
				},
				now:         func() time.Time { return now },
				maxAttempts: maxIssueAttempts,
			}
			code, err := issuer.Issue(context.Background(), "SUMMER", tc.card, member)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, code.Code)
			assert.Equal(t, int64(1), code.StoreID)
			assert.Equal(t, int64(3), code.CardID)
			assert.Equal(t, int64(9), code.MemberID)
			assert.Equal(t, now.UnixMilli(), code.IssuedAt)
			assert.Equal(t, now.AddDate(0, 0, 30).UnixMilli(), code.ExpiresAt)
		})
	}
}

func TestRandomToken(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		tok, err := randomToken(codeRandomLen)
		require.NoError(t, err)
		assert.Regexp(t, re, tok)
		seen[tok] = struct{}{}
	}
	// 36^8 的空间里 100 次基本不可能重复
	assert.Len(t, seen, 100)
}
