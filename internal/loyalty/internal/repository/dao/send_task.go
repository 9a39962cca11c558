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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type SendTaskDAO interface {
	MarkSent(ctx context.Context, id int64, passURL string) error
	// MarkFailed 同时累加重试次数
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	// FindRetryable 失败的任务，以及 utime 早于 staleBefore 仍处于 pending 的任务
	FindRetryable(ctx context.Context, maxRetries, limit int, staleBefore int64) ([]SendTask, error)
}

// maxErrLen 与 error_message 列的字符数一致
const maxErrLen = 1024

type GORMSendTaskDAO struct {
	db *egorm.Component
}

func NewGORMSendTaskDAO(db *egorm.Component) SendTaskDAO {
	return &GORMSendTaskDAO{db: db}
}

func (d *GORMSendTaskDAO) MarkSent(ctx context.Context, id int64, passURL string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&SendTask{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":        "sent",
			"pass_url":      passURL,
			"error_message": "",
			"sent_at":       now,
			"utime":         now,
		}).Error
}

func (d *GORMSendTaskDAO) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	errMsg = truncateRunes(errMsg, maxErrLen)
	return d.db.WithContext(ctx).Model(&SendTask{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":        "failed",
			"error_message": errMsg,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (d *GORMSendTaskDAO) FindRetryable(ctx context.Context, maxRetries, limit int, staleBefore int64) ([]SendTask, error) {
	var res []SendTask
	db := d.db.WithContext(ctx)
	err := db.Where("retry_count < ?", maxRetries).
		Where(db.Where("status = ?", "failed").
			Or("status = ? AND utime < ?", "pending", staleBefore)).
		Order("utime ASC").Limit(limit).Find(&res).Error
	return res, err
}

// truncateRunes 按字符截断，避免切开多字节字符
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
