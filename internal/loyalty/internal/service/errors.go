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
	"errors"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
)

var (
	ErrRecordNotFound  = repository.ErrRecordNotFound
	ErrSecretImmutable = repository.ErrSecretImmutable
	ErrStoreOwned      = repository.ErrStoreOwned
	ErrMemberExists    = repository.ErrMemberExists
	ErrQuotaExceeded   = domain.ErrQuotaExceeded

	ErrInvalidInput    = errors.New("参数错误")
	ErrStoreNotFound   = errors.New("店铺不存在")
	ErrCardNotFound    = errors.New("卡券不存在")
	ErrCardUnavailable = errors.New("卡券已停用")
	ErrMemberNotFound  = errors.New("会员不存在")
	ErrRuleNotFound    = errors.New("自动化规则不存在")
	ErrRuleNotManual   = errors.New("只能手动触发 manual 规则")
	ErrRuleInactive    = errors.New("自动化规则已停用")
	ErrCodeCollision   = errors.New("多次生成的折扣码均已存在")
	ErrTooManyRows     = errors.New("导入行数超出限制")

	ErrMissingWebhookHeaders = errors.New("缺少签名或店铺域名")
	ErrInvalidSignature      = errors.New("签名校验失败")
	ErrInvalidPayload        = errors.New("请求体格式错误")
)

// notFound 将存储层的 ErrRecordNotFound 转换为业务错误
func notFound(err, target error) error {
	if errors.Is(err, ErrRecordNotFound) {
		return target
	}
	return err
}
