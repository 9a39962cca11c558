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
	"strings"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./redemption.go -package=svcmocks -destination=./mocks/redemption.mock.go -typed RedemptionLedger
// RedemptionLedger 记录折扣码的核销，以第一笔订单为准
type RedemptionLedger interface {
	ApplyRedemption(ctx context.Context, r domain.Redemption) (domain.RedemptionResult, error)
}

type redemptionLedger struct {
	codes  repository.CodeRepository
	logger *elog.Component
}

func NewRedemptionLedger(codes repository.CodeRepository) RedemptionLedger {
	return &redemptionLedger{codes: codes, logger: elog.DefaultLogger}
}

func (l *redemptionLedger) ApplyRedemption(ctx context.Context, r domain.Redemption) (domain.RedemptionResult, error) {
	res := domain.RedemptionResult{UpdatedCodes: []string{}, Conflicts: []string{}}
	r.Codes = normalizeCodes(r.Codes)
	if len(r.Codes) == 0 {
		return res, nil
	}
	matched, redeemed, err := l.codes.Redeem(ctx, r)
	if err != nil {
		return res, err
	}
	byCode := make(map[string]domain.DiscountCode, len(matched))
	for _, c := range matched {
		byCode[c.Code] = c
	}
	for _, code := range r.Codes {
		c, ok := byCode[code]
		if !ok {
			continue
		}
		if c.OrderID == r.OrderID {
			res.UpdatedCodes = append(res.UpdatedCodes, code)
			continue
		}
		res.Conflicts = append(res.Conflicts, code)
		l.logger.Warn("折扣码已被其他订单核销",
			elog.Int64("storeId", r.StoreID),
			elog.String("code", code),
			elog.String("orderId", r.OrderID),
			elog.String("redeemedBy", c.OrderID))
	}
	if len(redeemed) > 0 {
		l.logger.Info("核销折扣码",
			elog.Int64("storeId", r.StoreID),
			elog.String("orderId", r.OrderID),
			elog.Int("count", len(redeemed)))
	}
	return res, nil
}

// normalizeCodes 去掉空白与重复并转为大写，保持原有顺序
func normalizeCodes(codes []string) []string {
	res := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		res = append(res, c)
	}
	return res
}
