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
	"fmt"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./card.go -package=svcmocks -destination=./mocks/card.mock.go -typed CardService
type CardService interface {
	Create(ctx context.Context, c domain.Card) (int64, error)
	List(ctx context.Context, storeID int64) ([]domain.Card, error)
	SetStatus(ctx context.Context, storeID, id int64, status domain.CardStatus) error
	// ListCodes 分页查询已经发放的折扣码
	ListCodes(ctx context.Context, storeID int64, offset, limit int) ([]domain.DiscountCode, int64, error)
}

type cardService struct {
	cards repository.CardRepository
	codes repository.CodeRepository
}

func NewCardService(cards repository.CardRepository, codes repository.CodeRepository) CardService {
	return &cardService{cards: cards, codes: codes}
}

func (s *cardService) Create(ctx context.Context, c domain.Card) (int64, error) {
	if c.Status == "" {
		c.Status = domain.CardStatusActive
	}
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.cards.Create(ctx, c)
}

func (s *cardService) List(ctx context.Context, storeID int64) ([]domain.Card, error) {
	return s.cards.FindByStore(ctx, storeID)
}

func (s *cardService) SetStatus(ctx context.Context, storeID, id int64, status domain.CardStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: 未知的卡券状态 %s", ErrInvalidInput, status)
	}
	return notFound(s.cards.SetStatus(ctx, storeID, id, status), ErrCardNotFound)
}

func (s *cardService) ListCodes(ctx context.Context, storeID int64, offset, limit int) ([]domain.DiscountCode, int64, error) {
	var (
		eg    errgroup.Group
		codes []domain.DiscountCode
		total int64
	)
	eg.Go(func() error {
		var err error
		codes, err = s.codes.List(ctx, storeID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.codes.Count(ctx, storeID)
		return err
	})
	return codes, total, eg.Wait()
}
