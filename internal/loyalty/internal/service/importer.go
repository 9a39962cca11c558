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
	"time"

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./importer.go -package=svcmocks -destination=./mocks/importer.mock.go -typed ImportService
// ImportService 批量导入会员并发放卡券
type ImportService interface {
	// ImportAndIssue 整批超出配额时返回 *domain.QuotaExceededError 且不做任何写入，
	// 其余情况下单行的失败只体现在结果中
	ImportAndIssue(ctx context.Context, store domain.Store, cardID int64, rows []domain.ImportRow) (domain.ImportResult, error)
}

type rowStatus uint8

const (
	rowSuccess rowStatus = iota
	rowSkipped
	rowFailed
)

type rowOutcome struct {
	status rowStatus
	reason string
}

type importService struct {
	cards    repository.CardRepository
	members  repository.MemberRepository
	quota    QuotaEnforcer
	issuer   CodeIssuer
	delivery DeliveryService
	workers  int
	timeout  time.Duration
	maxRows  int
	logger   *elog.Component
}

func NewImportService(cards repository.CardRepository,
	members repository.MemberRepository,
	quota QuotaEnforcer,
	issuer CodeIssuer,
	delivery DeliveryService,
	cfg config.LoyaltyConfig) ImportService {
	cfg = cfg.Default()
	return &importService{
		cards:    cards,
		members:  members,
		quota:    quota,
		issuer:   issuer,
		delivery: delivery,
		workers:  cfg.Import.Workers,
		timeout:  cfg.Import.TimeoutDuration(),
		maxRows:  cfg.Import.MaxRows,
		logger:   elog.DefaultLogger,
	}
}

func (s *importService) ImportAndIssue(ctx context.Context, store domain.Store, cardID int64, rows []domain.ImportRow) (domain.ImportResult, error) {
	res := domain.ImportResult{Errors: []string{}}
	if len(rows) == 0 {
		return res, nil
	}
	if len(rows) > s.maxRows {
		return res, fmt.Errorf("%w: 最多 %d 行", ErrTooManyRows, s.maxRows)
	}
	card, err := s.cards.FindByID(ctx, store.ID, cardID)
	if err != nil {
		return res, notFound(err, ErrCardNotFound)
	}
	if !card.Issuable() {
		return res, ErrCardUnavailable
	}
	decision, err := s.quota.CheckImport(ctx, store, int64(len(rows)))
	if err != nil {
		return res, err
	}
	if err = decision.Err(); err != nil {
		return res, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	outcomes := make([]rowOutcome, len(rows))
	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for i := range rows {
		i := i
		eg.Go(func() error {
			outcomes[i] = s.importRow(ctx, store, card, decision.Limit, rows[i])
			return nil
		})
	}
	_ = eg.Wait()

	for i, o := range outcomes {
		switch o.status {
		case rowSuccess:
			res.Success++
		case rowSkipped:
			res.Skipped++
		case rowFailed:
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("第%d行(%s): %s", i+1, rows[i].Email, o.reason))
		}
	}
	s.logger.Info("导入会员完成",
		elog.Int64("storeId", store.ID),
		elog.Int64("cardId", card.ID),
		elog.Int("success", res.Success),
		elog.Int("failed", res.Failed),
		elog.Int("skipped", res.Skipped))
	return res, nil
}

func (s *importService) importRow(ctx context.Context, store domain.Store, card domain.Card, limit int64, row domain.ImportRow) rowOutcome {
	if ctx.Err() != nil {
		return rowOutcome{status: rowFailed, reason: "导入超时，未处理"}
	}
	email := domain.NormalizeEmail(row.Email)
	if !domain.ValidEmail(email) {
		return rowOutcome{status: rowFailed, reason: "邮箱格式不正确"}
	}
	_, err := s.members.FindByEmail(ctx, store.ID, email)
	if err == nil {
		return rowOutcome{status: rowSkipped}
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return s.failed(err)
	}
	m := domain.Member{
		StoreID: store.ID,
		Email:   email,
		Name:    strings.TrimSpace(row.Name),
		Source:  domain.MemberSourceImport,
		Status:  domain.MemberStatusActive,
	}
	is, err := s.persist(ctx, store, card, limit, m)
	switch {
	case errors.Is(err, repository.ErrMemberExists):
		return rowOutcome{status: rowSkipped}
	case err != nil:
		return s.failed(err)
	}
	if err = s.delivery.Deliver(ctx, store, card, is); err != nil {
		return rowOutcome{status: rowFailed, reason: "卡券投递失败: " + err.Error()}
	}
	return rowOutcome{status: rowSuccess}
}

// persist 折扣码在落库时冲突则重新生成
func (s *importService) persist(ctx context.Context, store domain.Store, card domain.Card, limit int64, m domain.Member) (domain.Issuance, error) {
	for i := 0; ; i++ {
		code, err := s.issuer.Issue(ctx, CodePrefix(card.Name), card, m)
		if err != nil {
			return domain.Issuance{}, err
		}
		task := domain.SendTask{
			StoreID: store.ID,
			Key:     fmt.Sprintf("import:%d:%s", store.ID, code.Code),
			Status:  domain.SendTaskStatusPending,
		}
		is, err := s.members.CreateMemberWithCode(ctx, limit, m, code, task)
		if errors.Is(err, repository.ErrDuplicatedCode) && i < maxIssueAttempts {
			continue
		}
		return is, err
	}
}

func (s *importService) failed(err error) rowOutcome {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		return rowOutcome{status: rowFailed, reason: "会员数量超出套餐限制"}
	case errors.Is(err, context.DeadlineExceeded):
		return rowOutcome{status: rowFailed, reason: "导入超时"}
	default:
		return rowOutcome{status: rowFailed, reason: err.Error()}
	}
}
