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
	"strings"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
)

//go:generate mockgen -source=./store.go -package=svcmocks -destination=./mocks/store.mock.go -typed StoreService
type StoreService interface {
	// Connect 绑定或者更新店铺，密钥只能设置一次
	Connect(ctx context.Context, s domain.Store) (domain.Store, error)
	FindByOwner(ctx context.Context, uid int64) (domain.Store, error)
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) Connect(ctx context.Context, st domain.Store) (domain.Store, error) {
	st.ShopDomain = domain.NormalizeShopDomain(st.ShopDomain)
	if st.ShopDomain == "" {
		return domain.Store{}, fmt.Errorf("%w: 店铺域名不能为空", ErrInvalidInput)
	}
	st.WebhookSecret = strings.TrimSpace(st.WebhookSecret)
	if st.WebhookSecret == "" {
		return domain.Store{}, fmt.Errorf("%w: webhook 密钥不能为空", ErrInvalidInput)
	}
	if st.Plan == "" {
		st.Plan = domain.PlanFree
	}
	if !st.Plan.Valid() {
		return domain.Store{}, fmt.Errorf("%w: 未知的套餐 %s", ErrInvalidInput, st.Plan)
	}
	if st.Status == "" {
		st.Status = domain.StoreStatusActive
	}
	if st.Name == "" {
		st.Name = st.ShopDomain
	}
	return s.repo.Connect(ctx, st)
}

func (s *storeService) FindByOwner(ctx context.Context, uid int64) (domain.Store, error) {
	st, err := s.repo.FindByOwner(ctx, uid)
	return st, notFound(err, ErrStoreNotFound)
}
