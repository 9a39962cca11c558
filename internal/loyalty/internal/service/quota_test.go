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
	repomocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuotaEnforcer_Limit(t *testing.T) {
	q := NewQuotaEnforcer(nil, config.LoyaltyConfig{Plans: map[string]int64{"pro": 500}})
	assert.Equal(t, int64(50), q.Limit(domain.PlanFree))
	assert.Equal(t, int64(50), q.Limit(domain.PlanBase))
	assert.Equal(t, int64(500), q.Limit(domain.PlanPro))
	assert.Equal(t, int64(50), q.Limit("unknown"))
}

func TestQuotaEnforcer_CheckImport(t *testing.T) {
	testCases := []struct {
		name     string
		current  int64
		incoming int64
		want     bool
	}{
		{name: "刚好用满", current: 40, incoming: 10, want: true},
		{name: "超出一个", current: 45, incoming: 6, want: false},
		{name: "空店铺", current: 0, incoming: 0, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			members := repomocks.NewMockMemberRepository(ctrl)
			members.EXPECT().CountActive(gomock.Any(), int64(1)).Return(tc.current, nil)
			q := NewQuotaEnforcer(members, config.LoyaltyConfig{})
			d, err := q.CheckImport(context.Background(), domain.Store{ID: 1, Plan: domain.PlanFree}, tc.incoming)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Allowed)
			assert.Equal(t, tc.current, d.CurrentCount)
			assert.Equal(t, tc.incoming, d.AttemptedCount)
			assert.Equal(t, int64(50), d.Limit)
		})
	}
}
