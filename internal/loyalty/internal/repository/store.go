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
	"errors"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordNotFound  = dao.ErrRecordNotFound
	ErrSecretImmutable = dao.ErrSecretImmutable
	ErrStoreOwned      = dao.ErrStoreOwned
	ErrMemberExists    = dao.ErrMemberExists
	ErrDuplicatedCode  = dao.ErrDuplicatedCode
	ErrDuplicatedTask  = dao.ErrDuplicatedTask
	ErrQuotaExceeded   = dao.ErrQuotaExceeded
)

//go:generate mockgen -source=./store.go -package=repomocks -destination=./mocks/store.mock.go -typed StoreRepository
type StoreRepository interface {
	Connect(ctx context.Context, s domain.Store) (domain.Store, error)
	FindByID(ctx context.Context, id int64) (domain.Store, error)
	FindByDomain(ctx context.Context, shopDomain string) (domain.Store, error)
	FindByOwner(ctx context.Context, uid int64) (domain.Store, error)
}

type storeRepository struct {
	dao    dao.StoreDAO
	cache  cache.StoreCache
	logger *elog.Component
}

func NewStoreRepository(d dao.StoreDAO, c cache.StoreCache) StoreRepository {
	return &storeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *storeRepository) Connect(ctx context.Context, s domain.Store) (domain.Store, error) {
	res, err := r.dao.Upsert(ctx, r.toEntity(s))
	if err != nil {
		return domain.Store{}, err
	}
	if er := r.cache.Del(ctx, res.ShopDomain); er != nil {
		r.logger.Error("删除店铺缓存失败", elog.FieldErr(er), elog.String("domain", res.ShopDomain))
	}
	return r.toDomain(res), nil
}

func (r *storeRepository) FindByID(ctx context.Context, id int64) (domain.Store, error) {
	s, err := r.dao.FindByID(ctx, id)
	return r.toDomain(s), err
}

func (r *storeRepository) FindByDomain(ctx context.Context, shopDomain string) (domain.Store, error) {
	s, err := r.cache.Get(ctx, shopDomain)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, cache.ErrStoreNotFound) {
		r.logger.Error("读取店铺缓存失败", elog.FieldErr(err), elog.String("domain", shopDomain))
	}
	entity, err := r.dao.FindByDomain(ctx, shopDomain)
	if err != nil {
		return domain.Store{}, err
	}
	s = r.toDomain(entity)
	if er := r.cache.Set(ctx, s); er != nil {
		r.logger.Error("回写店铺缓存失败", elog.FieldErr(er), elog.String("domain", shopDomain))
	}
	return s, nil
}

func (r *storeRepository) FindByOwner(ctx context.Context, uid int64) (domain.Store, error) {
	s, err := r.dao.FindByOwner(ctx, uid)
	return r.toDomain(s), err
}

func (r *storeRepository) toEntity(s domain.Store) dao.Store {
	return dao.Store{
		Id:            s.ID,
		OwnerUid:      s.OwnerUID,
		Name:          s.Name,
		ShopDomain:    s.ShopDomain,
		WebhookSecret: s.WebhookSecret,
		Plan:          string(s.Plan),
		Status:        string(s.Status),
		Brand: sqlx.JsonColumn[dao.Brand]{
			Val: dao.Brand{
				Name:            s.Brand.Name,
				BackgroundColor: s.Brand.BackgroundColor,
				ForegroundColor: s.Brand.ForegroundColor,
			},
			Valid: true,
		},
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}

func (r *storeRepository) toDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:            s.Id,
		OwnerUID:      s.OwnerUid,
		Name:          s.Name,
		ShopDomain:    s.ShopDomain,
		WebhookSecret: s.WebhookSecret,
		Plan:          domain.Plan(s.Plan),
		Status:        domain.StoreStatus(s.Status),
		Brand: domain.Brand{
			Name:            s.Brand.Val.Name,
			BackgroundColor: s.Brand.Val.BackgroundColor,
			ForegroundColor: s.Brand.Val.ForegroundColor,
		},
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}
