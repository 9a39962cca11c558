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

package domain

import (
	"errors"
	"fmt"
)

var ErrQuotaExceeded = errors.New("会员数量超出套餐限制")

type QuotaExceededError struct {
	CurrentCount   int64
	AttemptedCount int64
	Limit          int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: 当前 %d，本次 %d，上限 %d", ErrQuotaExceeded.Error(), e.CurrentCount, e.AttemptedCount, e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

type QuotaDecision struct {
	Allowed        bool
	CurrentCount   int64
	AttemptedCount int64
	Limit          int64
}

func (d QuotaDecision) Err() error {
	if d.Allowed {
		return nil
	}
	return &QuotaExceededError{CurrentCount: d.CurrentCount, AttemptedCount: d.AttemptedCount, Limit: d.Limit}
}
