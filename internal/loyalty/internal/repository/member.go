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

//go:generate mockgen -source=./member.go -package=repomocks -destination=./mocks/member.mock.go -typed MemberRepository
type MemberRepository interface {
	CountActive(ctx context.Context, storeID int64) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (domain.Member, error)
	FindByEmail(ctx context.Context, storeID int64, email string) (domain.Member, error)
	FindByIDs(ctx context.Context, storeID int64, ids []int64) ([]domain.Member, error)
	// CreateMember 只创建会员，受配额约束
	CreateMember(ctx context.Context, limit int64, m domain.Member) (domain.Member, error)
	// CreateMemberWithCode 会员、折扣码、投递任务在同一个事务内创建
	CreateMemberWithCode(ctx context.Context, limit int64, m domain.Member, code domain.DiscountCode, task domain.SendTask) (domain.Issuance, error)
	SetStatus(ctx context.Context, storeID, id int64, status domain.MemberStatus, limit int64) error
}

type memberRepository struct {
	dao dao.MemberDAO
}

func NewMemberRepository(d dao.MemberDAO) MemberRepository {
	return &memberRepository{dao: d}
}

func (r *memberRepository) CountActive(ctx context.Context, storeID int64) (int64, error) {
	return r.dao.CountActive(ctx, storeID)
}

func (r *memberRepository) FindByID(ctx context.Context, storeID, id int64) (domain.Member, error) {
	m, err := r.dao.FindByID(ctx, storeID, id)
	return toMemberDomain(m), err
}

func (r *memberRepository) FindByEmail(ctx context.Context, storeID int64, email string) (domain.Member, error) {
	m, err := r.dao.FindByEmail(ctx, storeID, email)
	return toMemberDomain(m), err
}

func (r *memberRepository) FindByIDs(ctx context.Context, storeID int64, ids []int64) ([]domain.Member, error) {
	ms, err := r.dao.FindByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.Member) domain.Member {
		return toMemberDomain(src)
	}), nil
}

func (r *memberRepository) CreateMember(ctx context.Context, limit int64, m domain.Member) (domain.Member, error) {
	res, err := r.dao.CreateWithinQuota(ctx, limit, toMemberEntity(m), nil, nil)
	return toMemberDomain(res), err
}

func (r *memberRepository) CreateMemberWithCode(ctx context.Context, limit int64, m domain.Member,
	code domain.DiscountCode, task domain.SendTask) (domain.Issuance, error) {
	c, t := toCodeEntity(code), toSendTaskEntity(task)
	res, err := r.dao.CreateWithinQuota(ctx, limit, toMemberEntity(m), &c, &t)
	if err != nil {
		return domain.Issuance{}, err
	}
	return domain.Issuance{
		Member: toMemberDomain(res),
		Code:   toCodeDomain(c),
		Task:   toSendTaskDomain(t),
	}, nil
}

func (r *memberRepository) SetStatus(ctx context.Context, storeID, id int64, status domain.MemberStatus, limit int64) error {
	return r.dao.SetStatus(ctx, storeID, id, string(status), limit)
}

func toMemberEntity(m domain.Member) dao.Member {
	return dao.Member{
		Id:      m.ID,
		StoreId: m.StoreID,
		Email:   m.Email,
		Name:    m.Name,
		Source:  string(m.Source),
		Status:  string(m.Status),
		Ctime:   m.Ctime,
		Utime:   m.Utime,
	}
}

func toMemberDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:      m.Id,
		StoreID: m.StoreId,
		Email:   m.Email,
		Name:    m.Name,
		Source:  domain.MemberSource(m.Source),
		Status:  domain.MemberStatus(m.Status),
		Ctime:   m.Ctime,
		Utime:   m.Utime,
	}
}
