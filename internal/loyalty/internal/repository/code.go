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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/dao"
)

//go:generate mockgen -source=./code.go -package=repomocks -destination=./mocks/code.mock.go -typed CodeRepository
type CodeRepository interface {
	Exists(ctx context.Context, storeID int64, code string) (bool, error)
	FindByID(ctx context.Context, id int64) (domain.DiscountCode, error)
	CreateWithTask(ctx context.Context, code domain.DiscountCode, task domain.SendTask) (domain.Issuance, error)
	Count(ctx context.Context, storeID int64) (int64, error)
	List(ctx context.Context, storeID int64, offset, limit int) ([]domain.DiscountCode, error)
	// Redeem 返回订单涉及的、属于该店铺的全部折扣码，以及其中本次新核销的 ID
	Redeem(ctx context.Context, r domain.Redemption) ([]domain.DiscountCode, []int64, error)
}

type codeRepository struct {
	dao dao.CodeDAO
}

func NewCodeRepository(d dao.CodeDAO) CodeRepository {
	return &codeRepository{dao: d}
}

func (r *codeRepository) Exists(ctx context.Context, storeID int64, code string) (bool, error) {
	return r.dao.Exists(ctx, storeID, code)
}

func (r *codeRepository) FindByID(ctx context.Context, id int64) (domain.DiscountCode, error) {
	c, err := r.dao.FindByID(ctx, id)
	return toCodeDomain(c), err
}

func (r *codeRepository) CreateWithTask(ctx context.Context, code domain.DiscountCode, task domain.SendTask) (domain.Issuance, error) {
	c, t, err := r.dao.CreateWithTask(ctx, toCodeEntity(code), toSendTaskEntity(task))
	if err != nil {
		return domain.Issuance{}, err
	}
	return domain.Issuance{Code: toCodeDomain(c), Task: toSendTaskDomain(t)}, nil
}

func (r *codeRepository) Count(ctx context.Context, storeID int64) (int64, error) {
	return r.dao.Count(ctx, storeID)
}

func (r *codeRepository) List(ctx context.Context, storeID int64, offset, limit int) ([]domain.DiscountCode, error) {
	cs, err := r.dao.List(ctx, storeID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(cs), nil
}

func (r *codeRepository) Redeem(ctx context.Context, rd domain.Redemption) ([]domain.DiscountCode, []int64, error) {
	matched, redeemed, err := r.dao.Redeem(ctx, rd.StoreID, rd.Codes, rd.OrderID, rd.OrderName, rd.OrderAmount)
	if err != nil {
		return nil, nil, err
	}
	return r.toDomains(matched), redeemed, nil
}

func (r *codeRepository) toDomains(cs []dao.DiscountCode) []domain.DiscountCode {
	return slice.Map(cs, func(idx int, src dao.DiscountCode) domain.DiscountCode {
		return toCodeDomain(src)
	})
}

func toCodeEntity(c domain.DiscountCode) dao.DiscountCode {
	return dao.DiscountCode{
		Id:         c.ID,
		StoreId:    c.StoreID,
		CardId:     c.CardID,
		MemberId:   c.MemberID,
		Code:       c.Code,
		IsRedeemed: c.IsRedeemed,
		OrderId:    c.OrderID,
		OrderName:  c.OrderName,
		RedeemedAt: c.RedeemedAt,
		IssuedAt:   c.IssuedAt,
		ExpiresAt:  c.ExpiresAt,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
}

func toCodeDomain(c dao.DiscountCode) domain.DiscountCode {
	return domain.DiscountCode{
		ID:         c.Id,
		StoreID:    c.StoreId,
		CardID:     c.CardId,
		MemberID:   c.MemberId,
		Code:       c.Code,
		IsRedeemed: c.IsRedeemed,
		OrderID:    c.OrderId,
		OrderName:  c.OrderName,
		RedeemedAt: c.RedeemedAt,
		IssuedAt:   c.IssuedAt,
		ExpiresAt:  c.ExpiresAt,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
}
