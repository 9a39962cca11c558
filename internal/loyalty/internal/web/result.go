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

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/errs"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	storeNotConnectedResult = ginx.Result{
		Code: errs.StoreNotConnectedError.Code,
		Msg:  errs.StoreNotConnectedError.Msg,
	}
)

func result(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

// errorResult 把 service 的错误映射为 HTTP 状态码和业务错误码
func errorResult(err error) (int, ginx.Result) {
	var qe *domain.QuotaExceededError
	switch {
	case errors.As(err, &qe):
		res := result(errs.QuotaExceededError)
		res.Data = QuotaExceeded{
			CurrentCount:   qe.CurrentCount,
			AttemptedCount: qe.AttemptedCount,
			Limit:          qe.Limit,
		}
		return http.StatusForbidden, res
	case errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusForbidden, result(errs.QuotaExceededError)
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, ginx.Result{Code: errs.InvalidInputError.Code, Msg: err.Error()}
	case errors.Is(err, service.ErrTooManyRows):
		return http.StatusBadRequest, result(errs.TooManyRowsError)
	case errors.Is(err, service.ErrStoreNotFound):
		return http.StatusNotFound, result(errs.StoreNotFoundError)
	case errors.Is(err, service.ErrCardNotFound):
		return http.StatusNotFound, result(errs.CardNotFoundError)
	case errors.Is(err, service.ErrCardUnavailable):
		return http.StatusNotFound, result(errs.CardUnavailableError)
	case errors.Is(err, service.ErrMemberNotFound):
		return http.StatusNotFound, result(errs.MemberNotFoundError)
	case errors.Is(err, service.ErrRuleNotFound):
		return http.StatusNotFound, result(errs.RuleNotFoundError)
	case errors.Is(err, service.ErrMemberExists):
		return http.StatusConflict, result(errs.MemberExistsError)
	case errors.Is(err, service.ErrStoreOwned):
		return http.StatusConflict, result(errs.StoreOwnedError)
	case errors.Is(err, service.ErrSecretImmutable):
		return http.StatusConflict, result(errs.SecretImmutableError)
	case errors.Is(err, service.ErrRuleNotManual):
		return http.StatusConflict, result(errs.RuleNotManualError)
	case errors.Is(err, service.ErrRuleInactive):
		return http.StatusConflict, result(errs.RuleInactiveError)
	default:
		return http.StatusInternalServerError, systemErrorResult
	}
}

// writeError 业务错误直接写出对应的状态码，其余错误交给 ginx 返回 500 并记录日志
func writeError(ctx *ginx.Context, err error, msg string) (ginx.Result, error) {
	status, res := errorResult(err)
	if status == http.StatusInternalServerError {
		return res, fmt.Errorf("%s: %w", msg, err)
	}
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}
