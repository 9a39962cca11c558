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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpireAt(t *testing.T) {
	issued := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, int64(0), ExpireAt(issued, 0))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli(), ExpireAt(issued, 30))
}

func TestDiscountCode_Expired(t *testing.T) {
	now := time.UnixMilli(10_000)
	assert.False(t, DiscountCode{}.Expired(now))
	assert.False(t, DiscountCode{ExpiresAt: 10_001}.Expired(now))
	assert.True(t, DiscountCode{ExpiresAt: 10_000}.Expired(now))
}

func TestQuotaDecision_Err(t *testing.T) {
	assert.NoError(t, QuotaDecision{Allowed: true}.Err())
	err := QuotaDecision{CurrentCount: 45, AttemptedCount: 10, Limit: 50}.Err()
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	var qe *QuotaExceededError
	assert.True(t, errors.As(err, &qe))
	assert.Equal(t, int64(45), qe.CurrentCount)
	assert.Equal(t, int64(10), qe.AttemptedCount)
	assert.Equal(t, int64(50), qe.Limit)
}
