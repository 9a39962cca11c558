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

//go:generate mockgen -source=./send_task.go -package=repomocks -destination=./mocks/send_task.mock.go -typed SendTaskRepository
type SendTaskRepository interface {
	MarkSent(ctx context.Context, id int64, passURL string) error
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	FindRetryable(ctx context.Context, maxRetries, limit int, staleBefore int64) ([]domain.SendTask, error)
}

type sendTaskRepository struct {
	dao dao.SendTaskDAO
}

func NewSendTaskRepository(d dao.SendTaskDAO) SendTaskRepository {
	return &sendTaskRepository{dao: d}
}

func (r *sendTaskRepository) MarkSent(ctx context.Context, id int64, passURL string) error {
	return r.dao.MarkSent(ctx, id, passURL)
}

func (r *sendTaskRepository) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	return r.dao.MarkFailed(ctx, id, errMsg)
}

func (r *sendTaskRepository) FindRetryable(ctx context.Context, maxRetries, limit int, staleBefore int64) ([]domain.SendTask, error) {
	ts, err := r.dao.FindRetryable(ctx, maxRetries, limit, staleBefore)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.SendTask) domain.SendTask {
		return toSendTaskDomain(src)
	}), nil
}

func toSendTaskEntity(t domain.SendTask) dao.SendTask {
	return dao.SendTask{
		Id:           t.ID,
		StoreId:      t.StoreID,
		AutomationId: t.AutomationID,
		MemberId:     t.MemberID,
		CodeId:       t.CodeID,
		Key:          t.Key,
		Status:       string(t.Status),
		PassUrl:      t.PassURL,
		ErrorMessage: t.ErrorMessage,
		RetryCount:   t.RetryCount,
		SentAt:       t.SentAt,
	}
}

func toSendTaskDomain(t dao.SendTask) domain.SendTask {
	return domain.SendTask{
		ID:           t.Id,
		StoreID:      t.StoreId,
		AutomationID: t.AutomationId,
		MemberID:     t.MemberId,
		CodeID:       t.CodeId,
		Key:          t.Key,
		Status:       domain.SendTaskStatus(t.Status),
		PassURL:      t.PassUrl,
		ErrorMessage: t.ErrorMessage,
		RetryCount:   t.RetryCount,
		SentAt:       t.SentAt,
		Ctime:        t.Ctime,
		Utime:        t.Utime,
	}
}
