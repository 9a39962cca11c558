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
	"fmt"
	"strings"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
)

//go:generate mockgen -source=./member.go -package=svcmocks -destination=./mocks/member.mock.go -typed MemberService
type MemberService interface {
	// Add 商家手动添加会员
	Add(ctx context.Context, store domain.Store, email, name string) (domain.Member, error)
	// Sync 平台新建客户时同步，已存在时返回 false
	Sync(ctx context.Context, store domain.Store, email, name string) (domain.Member, bool, error)
	SetStatus(ctx context.Context, store domain.Store, id int64, status domain.MemberStatus) error
}

type memberService struct {
	repo  repository.MemberRepository
	quota QuotaEnforcer
}

func NewMemberService(repo repository.MemberRepository, quota QuotaEnforcer) MemberService {
	return &memberService{repo: repo, quota: quota}
}

func (s *memberService) Add(ctx context.Context, store domain.Store, email, name string) (domain.Member, error) {
	return s.create(ctx, store, email, name, domain.MemberSourceManual)
}

func (s *memberService) Sync(ctx context.Context, store domain.Store, email, name string) (domain.Member, bool, error) {
	m, err := s.create(ctx, store, email, name, domain.MemberSourceShopifySync)
	if errors.Is(err, ErrMemberExists) {
		m, err = s.repo.FindByEmail(ctx, store.ID, domain.NormalizeEmail(email))
		return m, false, err
	}
	return m, err == nil, err
}

func (s *memberService) create(ctx context.Context, store domain.Store, email, name string, source domain.MemberSource) (domain.Member, error) {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return domain.Member{}, fmt.Errorf("%w: 邮箱格式不正确", ErrInvalidInput)
	}
	return s.repo.CreateMember(ctx, s.quota.Limit(store.Plan), domain.Member{
		StoreID: store.ID,
		Email:   email,
		Name:    strings.TrimSpace(name),
		Source:  source,
		Status:  domain.MemberStatusActive,
	})
}

func (s *memberService) SetStatus(ctx context.Context, store domain.Store, id int64, status domain.MemberStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: 未知的会员状态 %s", ErrInvalidInput, status)
	}
	err := s.repo.SetStatus(ctx, store.ID, id, status, s.quota.Limit(store.Plan))
	return notFound(err, ErrMemberNotFound)
}
