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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/dao"
)

//go:generate mockgen -source=./automation.go -package=repomocks -destination=./mocks/automation.mock.go -typed AutomationRepository
type AutomationRepository interface {
	Create(ctx context.Context, r domain.AutomationRule) (int64, error)
	FindByID(ctx context.Context, storeID, id int64) (domain.AutomationRule, error)
	FindByStore(ctx context.Context, storeID int64) ([]domain.AutomationRule, error)
	FindActive(ctx context.Context, storeID int64, trigger domain.TriggerType) ([]domain.AutomationRule, error)
	SetActive(ctx context.Context, storeID, id int64, active bool) error
}

type automationRepository struct {
	dao dao.AutomationDAO
}

func NewAutomationRepository(d dao.AutomationDAO) AutomationRepository {
	return &automationRepository{dao: d}
}

func (r *automationRepository) Create(ctx context.Context, rule domain.AutomationRule) (int64, error) {
	entity := dao.AutomationRule{
		StoreId:     rule.StoreID,
		CardId:      rule.CardID,
		TriggerType: string(rule.TriggerType),
		IsActive:    rule.IsActive,
	}
	if rule.TriggerValue != nil {
		entity.TriggerValue = sql.NullInt64{Int64: *rule.TriggerValue, Valid: true}
	}
	return r.dao.Create(ctx, entity)
}

func (r *automationRepository) FindByID(ctx context.Context, storeID, id int64) (domain.AutomationRule, error) {
	rule, err := r.dao.FindByID(ctx, storeID, id)
	return r.toDomain(rule), err
}

func (r *automationRepository) FindByStore(ctx context.Context, storeID int64) ([]domain.AutomationRule, error) {
	rules, err := r.dao.FindByStore(ctx, storeID)
	return r.toDomains(rules), err
}

func (r *automationRepository) FindActive(ctx context.Context, storeID int64, trigger domain.TriggerType) ([]domain.AutomationRule, error) {
	rules, err := r.dao.FindActive(ctx, storeID, string(trigger))
	return r.toDomains(rules), err
}

func (r *automationRepository) SetActive(ctx context.Context, storeID, id int64, active bool) error {
	return r.dao.UpdateActive(ctx, storeID, id, active)
}

func (r *automationRepository) toDomains(rules []dao.AutomationRule) []domain.AutomationRule {
	return slice.Map(rules, func(idx int, src dao.AutomationRule) domain.AutomationRule {
		return r.toDomain(src)
	})
}

func (r *automationRepository) toDomain(rule dao.AutomationRule) domain.AutomationRule {
	res := domain.AutomationRule{
		ID:          rule.Id,
		StoreID:     rule.StoreId,
		CardID:      rule.CardId,
		TriggerType: domain.TriggerType(rule.TriggerType),
		IsActive:    rule.IsActive,
		Ctime:       rule.Ctime,
		Utime:       rule.Utime,
	}
	if rule.TriggerValue.Valid {
		v := rule.TriggerValue.Int64
		res.TriggerValue = &v
	}
	return res
}
