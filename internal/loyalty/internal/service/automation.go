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

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./automation.go -package=svcmocks -destination=./mocks/automation.mock.go -typed AutomationService
// AutomationService 管理自动化规则，并在事件发生时发放卡券
type AutomationService interface {
	Create(ctx context.Context, rule domain.AutomationRule) (int64, error)
	List(ctx context.Context, storeID int64) ([]domain.AutomationRule, error)
	SetActive(ctx context.Context, storeID, id int64, active bool) error
	// Dispatch 同一个事件重复投递时，每条规则最多发放一次
	Dispatch(ctx context.Context, evt domain.TriggerEvent) (int, error)
	// FireManual 对指定会员执行 manual 规则，每次调用都会重新发放
	FireManual(ctx context.Context, store domain.Store, ruleID int64, memberIDs []int64) (int, error)
}

type automationService struct {
	rules    repository.AutomationRepository
	stores   repository.StoreRepository
	cards    repository.CardRepository
	members  repository.MemberRepository
	codes    repository.CodeRepository
	quota    QuotaEnforcer
	issuer   CodeIssuer
	delivery DeliveryService
	logger   *elog.Component
}

func NewAutomationService(rules repository.AutomationRepository,
	stores repository.StoreRepository,
	cards repository.CardRepository,
	members repository.MemberRepository,
	codes repository.CodeRepository,
	quota QuotaEnforcer,
	issuer CodeIssuer,
	delivery DeliveryService) AutomationService {
	return &automationService{
		rules:    rules,
		stores:   stores,
		cards:    cards,
		members:  members,
		codes:    codes,
		quota:    quota,
		issuer:   issuer,
		delivery: delivery,
		logger:   elog.DefaultLogger,
	}
}

func (s *automationService) Create(ctx context.Context, rule domain.AutomationRule) (int64, error) {
	if !rule.TriggerType.Valid() {
		return 0, fmt.Errorf("%w: 未知的触发类型 %s", ErrInvalidInput, rule.TriggerType)
	}
	if rule.TriggerValue != nil {
		if rule.TriggerType != domain.TriggerOrderPaid {
			return 0, fmt.Errorf("%w: 只有 order_paid 支持金额下限", ErrInvalidInput)
		}
		if *rule.TriggerValue < 0 {
			return 0, fmt.Errorf("%w: 金额下限不能为负数", ErrInvalidInput)
		}
	}
	if _, err := s.cards.FindByID(ctx, rule.StoreID, rule.CardID); err != nil {
		return 0, notFound(err, ErrCardNotFound)
	}
	return s.rules.Create(ctx, rule)
}

func (s *automationService) List(ctx context.Context, storeID int64) ([]domain.AutomationRule, error) {
	return s.rules.FindByStore(ctx, storeID)
}

func (s *automationService) SetActive(ctx context.Context, storeID, id int64, active bool) error {
	return notFound(s.rules.SetActive(ctx, storeID, id, active), ErrRuleNotFound)
}

func (s *automationService) Dispatch(ctx context.Context, evt domain.TriggerEvent) (int, error) {
	if evt.Type == domain.TriggerManual {
		return 0, nil
	}
	rules, err := s.rules.FindActive(ctx, evt.StoreID, evt.Type)
	if err != nil {
		return 0, err
	}
	matched := make([]domain.AutomationRule, 0, len(rules))
	for _, r := range rules {
		if r.Matches(evt) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}
	store, err := s.stores.FindByID(ctx, evt.StoreID)
	if err != nil {
		return 0, notFound(err, ErrStoreNotFound)
	}
	member, ok, err := s.resolveMember(ctx, store, evt)
	if err != nil || !ok {
		return 0, err
	}
	fired := 0
	var errs []error
	for _, r := range matched {
		ok, err = s.fire(ctx, store, r, member, fmt.Sprintf("automation:%d:%s", r.ID, evt.Key))
		if err != nil {
			errs = append(errs, fmt.Errorf("规则 %d: %w", r.ID, err))
			continue
		}
		if ok {
			fired++
		}
	}
	return fired, errors.Join(errs...)
}

func (s *automationService) FireManual(ctx context.Context, store domain.Store, ruleID int64, memberIDs []int64) (int, error) {
	rule, err := s.rules.FindByID(ctx, store.ID, ruleID)
	if err != nil {
		return 0, notFound(err, ErrRuleNotFound)
	}
	if rule.TriggerType != domain.TriggerManual {
		return 0, ErrRuleNotManual
	}
	if !rule.IsActive {
		return 0, ErrRuleInactive
	}
	if len(memberIDs) == 0 {
		return 0, nil
	}
	members, err := s.members.FindByIDs(ctx, store.ID, memberIDs)
	if err != nil {
		return 0, err
	}
	batch := shortuuid.New()
	fired := 0
	var errs []error
	for _, m := range members {
		if m.Status != domain.MemberStatusActive {
			continue
		}
		ok, er := s.fire(ctx, store, rule, m, fmt.Sprintf("manual:%d:%s:%d", rule.ID, batch, m.ID))
		if er != nil {
			errs = append(errs, fmt.Errorf("会员 %d: %w", m.ID, er))
			continue
		}
		if ok {
			fired++
		}
	}
	return fired, errors.Join(errs...)
}

// resolveMember 事件里的买家还不是会员时，在配额允许的情况下自动创建
func (s *automationService) resolveMember(ctx context.Context, store domain.Store, evt domain.TriggerEvent) (domain.Member, bool, error) {
	var (
		m   domain.Member
		err error
	)
	email := domain.NormalizeEmail(evt.Email)
	switch {
	case evt.MemberID > 0:
		m, err = s.members.FindByID(ctx, store.ID, evt.MemberID)
	case domain.ValidEmail(email):
		m, err = s.members.FindByEmail(ctx, store.ID, email)
	default:
		return m, false, nil
	}
	if errors.Is(err, repository.ErrRecordNotFound) && domain.ValidEmail(email) {
		m, err = s.members.CreateMember(ctx, s.quota.Limit(store.Plan), domain.Member{
			StoreID: store.ID,
			Email:   email,
			Name:    evt.Name,
			Source:  domain.MemberSourceAutomation,
			Status:  domain.MemberStatusActive,
		})
		if errors.Is(err, repository.ErrMemberExists) {
			m, err = s.members.FindByEmail(ctx, store.ID, email)
		}
	}
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		s.logger.Warn("会员数量已达上限，跳过自动化发放",
			elog.Int64("storeId", store.ID), elog.String("event", evt.Key))
		return m, false, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return m, false, nil
	case err != nil:
		return m, false, err
	}
	return m, m.Status == domain.MemberStatusActive, nil
}

// fire 返回 false 表示该发放已经执行过或者卡券不可用
func (s *automationService) fire(ctx context.Context, store domain.Store, rule domain.AutomationRule, m domain.Member, key string) (bool, error) {
	card, err := s.cards.FindByID(ctx, store.ID, rule.CardID)
	if err != nil {
		return false, notFound(err, ErrCardNotFound)
	}
	if !card.Issuable() {
		s.logger.Warn("卡券已停用，跳过自动化发放",
			elog.Int64("ruleId", rule.ID), elog.Int64("cardId", card.ID))
		return false, nil
	}
	var is domain.Issuance
	for i := 0; ; i++ {
		code, err := s.issuer.Issue(ctx, CodePrefix(card.Name), card, m)
		if err != nil {
			return false, err
		}
		is, err = s.codes.CreateWithTask(ctx, code, domain.SendTask{
			StoreID:      store.ID,
			AutomationID: rule.ID,
			Key:          key,
			Status:       domain.SendTaskStatusPending,
		})
		if errors.Is(err, repository.ErrDuplicatedCode) && i < maxIssueAttempts {
			continue
		}
		if errors.Is(err, repository.ErrDuplicatedTask) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		break
	}
	is.Member = m
	// 投递失败由重试任务兜底
	if err = s.delivery.Deliver(ctx, store, card, is); err != nil {
		s.logger.Warn("自动化卡券投递失败",
			elog.FieldErr(err), elog.Int64("ruleId", rule.ID), elog.Int64("taskId", is.Task.ID))
	}
	return true, nil
}
