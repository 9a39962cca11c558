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
	"time"

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./delivery.go -package=svcmocks -destination=./mocks/delivery.mock.go -typed DeliveryService
// DeliveryService 投递卡券并记录投递任务的状态
type DeliveryService interface {
	Deliver(ctx context.Context, store domain.Store, card domain.Card, is domain.Issuance) error
	// RetryFailed 重新投递失败以及长时间停留在 pending 的任务，返回成功的数量
	RetryFailed(ctx context.Context) (int, error)
}

type deliveryService struct {
	pass    PassIssuer
	tasks   repository.SendTaskRepository
	stores  repository.StoreRepository
	cards   repository.CardRepository
	members repository.MemberRepository
	codes   repository.CodeRepository
	cfg     config.DeliveryConfig
	logger  *elog.Component
}

func NewDeliveryService(pass PassIssuer,
	tasks repository.SendTaskRepository,
	stores repository.StoreRepository,
	cards repository.CardRepository,
	members repository.MemberRepository,
	codes repository.CodeRepository,
	cfg config.LoyaltyConfig) DeliveryService {
	return &deliveryService{
		pass:    pass,
		tasks:   tasks,
		stores:  stores,
		cards:   cards,
		members: members,
		codes:   codes,
		cfg:     cfg.Default().Delivery,
		logger:  elog.DefaultLogger,
	}
}

func (s *deliveryService) Deliver(ctx context.Context, store domain.Store, card domain.Card, is domain.Issuance) error {
	desc := s.pass.BuildPass(is.Member, is.Code, card, brandOf(store))
	url, err := s.pass.Deliver(ctx, is.Member, desc)
	if err != nil {
		if er := s.tasks.MarkFailed(ctx, is.Task.ID, err.Error()); er != nil {
			s.logger.Error("记录投递失败状态失败", elog.FieldErr(er), elog.Int64("taskId", is.Task.ID))
		}
		return err
	}
	if er := s.tasks.MarkSent(ctx, is.Task.ID, url); er != nil {
		s.logger.Error("记录投递成功状态失败", elog.FieldErr(er), elog.Int64("taskId", is.Task.ID))
	}
	return nil
}

func (s *deliveryService) RetryFailed(ctx context.Context) (int, error) {
	staleBefore := time.Now().Add(-s.cfg.PendingTimeoutDuration()).UnixMilli()
	tasks, err := s.tasks.FindRetryable(ctx, s.cfg.MaxRetries, s.cfg.BatchSize, staleBefore)
	if err != nil {
		return 0, err
	}
	delivered := 0
	for _, t := range tasks {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}
		err = s.retry(ctx, t)
		if err != nil {
			s.logger.Warn("重新投递卡券失败",
				elog.FieldErr(err),
				elog.Int64("taskId", t.ID),
				elog.Int("retryCount", t.RetryCount+1))
			continue
		}
		delivered++
	}
	return delivered, nil
}

func (s *deliveryService) retry(ctx context.Context, t domain.SendTask) error {
	is, store, err := s.load(ctx, t)
	if err == nil {
		err = s.deliverable(is)
	}
	var card domain.Card
	if err == nil {
		// 不可投递的任务不需要再查卡券
		card, err = s.cards.FindByID(ctx, t.StoreID, is.Code.CardID)
		if err != nil {
			err = fmt.Errorf("查询卡券失败: %w", err)
		}
	}
	if err != nil {
		if er := s.tasks.MarkFailed(ctx, t.ID, err.Error()); er != nil {
			s.logger.Error("记录投递失败状态失败", elog.FieldErr(er), elog.Int64("taskId", t.ID))
		}
		return err
	}
	return s.Deliver(ctx, store, card, is)
}

func (s *deliveryService) load(ctx context.Context, t domain.SendTask) (domain.Issuance, domain.Store, error) {
	is := domain.Issuance{Task: t}
	store, err := s.stores.FindByID(ctx, t.StoreID)
	if err != nil {
		return is, store, fmt.Errorf("查询店铺失败: %w", err)
	}
	is.Code, err = s.codes.FindByID(ctx, t.CodeID)
	if err != nil {
		return is, store, fmt.Errorf("查询折扣码失败: %w", err)
	}
	is.Member, err = s.members.FindByID(ctx, t.StoreID, t.MemberID)
	if err != nil {
		return is, store, fmt.Errorf("查询会员失败: %w", err)
	}
	return is, store, nil
}

func (s *deliveryService) deliverable(is domain.Issuance) error {
	code := is.Code
	if is.Member.Status == domain.MemberStatusBlocked {
		return fmt.Errorf("会员 %d 已被禁用", is.Member.ID)
	}
	if code.IsRedeemed {
		return fmt.Errorf("折扣码 %s 已核销", code.Code)
	}
	if code.Expired(time.Now()) {
		return fmt.Errorf("折扣码 %s 已过期", code.Code)
	}
	return nil
}

func brandOf(store domain.Store) domain.Brand {
	b := store.Brand
	if b.Name == "" {
		b.Name = store.Name
	}
	return b
}
