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

//go:generate mockgen -source=./card.go -package=repomocks -destination=./mocks/card.mock.go -typed CardRepository
type CardRepository interface {
	Create(ctx context.Context, c domain.Card) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (domain.Card, error)
	FindByStore(ctx context.Context, storeID int64) ([]domain.Card, error)
	SetStatus(ctx context.Context, storeID, id int64, status domain.CardStatus) error
}

type cardRepository struct {
	dao dao.CardDAO
}

func NewCardRepository(d dao.CardDAO) CardRepository {
	return &cardRepository{dao: d}
}

func (r *cardRepository) Create(ctx context.Context, c domain.Card) (int64, error) {
	return r.dao.Create(ctx, dao.Card{
		StoreId:       c.StoreID,
		Name:          c.Name,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		ExpireDays:    c.ExpireDays,
		Status:        string(c.Status),
	})
}

func (r *cardRepository) FindByID(ctx context.Context, storeID, id int64) (domain.Card, error) {
	c, err := r.dao.FindByID(ctx, storeID, id)
	return r.toDomain(c), err
}

func (r *cardRepository) FindByStore(ctx context.Context, storeID int64) ([]domain.Card, error) {
	cs, err := r.dao.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Card) domain.Card {
		return r.toDomain(src)
	}), nil
}

func (r *cardRepository) SetStatus(ctx context.Context, storeID, id int64, status domain.CardStatus) error {
	return r.dao.UpdateStatus(ctx, storeID, id, string(status))
}

func (r *cardRepository) toDomain(c dao.Card) domain.Card {
	return domain.Card{
		ID:            c.Id,
		StoreID:       c.StoreId,
		Name:          c.Name,
		DiscountType:  domain.DiscountType(c.DiscountType),
		DiscountValue: c.DiscountValue,
		ExpireDays:    c.ExpireDays,
		Status:        domain.CardStatus(c.Status),
		Ctime:         c.Ctime,
		Utime:         c.Utime,
	}
}
