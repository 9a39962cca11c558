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

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
)

//go:generate mockgen -source=./quota.go -package=svcmocks -destination=./mocks/quota.mock.go -typed QuotaEnforcer
type QuotaEnforcer interface {
	// Limit 未知套餐按 free 处理
	Limit(plan domain.Plan) int64
	// CheckImport 只读，最终以写入时的配额校验为准
	CheckImport(ctx context.Context, store domain.Store, incoming int64) (domain.QuotaDecision, error)
}

type quotaEnforcer struct {
	members repository.MemberRepository
	limits  map[domain.Plan]int64
}

func NewQuotaEnforcer(members repository.MemberRepository, cfg config.LoyaltyConfig) QuotaEnforcer {
	cfg = cfg.Default()
	limits := make(map[domain.Plan]int64, len(cfg.Plans))
	for k, v := range cfg.Plans {
		limits[domain.Plan(k)] = v
	}
	return &quotaEnforcer{members: members, limits: limits}
}

func (q *quotaEnforcer) Limit(plan domain.Plan) int64 {
	if l, ok := q.limits[plan]; ok {
		return l
	}
	return q.limits[domain.PlanFree]
}

func (q *quotaEnforcer) CheckImport(ctx context.Context, store domain.Store, incoming int64) (domain.QuotaDecision, error) {
	current, err := q.members.CountActive(ctx, store.ID)
	if err != nil {
		return domain.QuotaDecision{}, err
	}
	limit := q.Limit(store.Plan)
	return domain.QuotaDecision{
		Allowed:        current+incoming <= limit,
		CurrentCount:   current,
		AttemptedCount: incoming,
		Limit:          limit,
	}, nil
}
