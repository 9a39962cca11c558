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
	"crypto/rand"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
)

const (
	defaultCodePrefix = "GLOW"
	codePrefixLen     = 6
	codeRandomLen     = 8
	maxIssueAttempts  = 5
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

//go:generate mockgen -source=./code_issuer.go -package=svcmocks -destination=./mocks/code_issuer.mock.go -typed CodeIssuer
// CodeIssuer 生成折扣码但不落库
type CodeIssuer interface {
	Issue(ctx context.Context, prefix string, card domain.Card, member domain.Member) (domain.DiscountCode, error)
}

// CodePrefix 取卡券名称中前 6 个字母或数字并转为大写
func CodePrefix(name string) string {
	var sb strings.Builder
	n := 0
	for _, r := range name {
		if n == codePrefixLen {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(unicode.ToUpper(r))
			n++
		}
	}
	if n == 0 {
		return defaultCodePrefix
	}
	return sb.String()
}

type codeIssuer struct {
	codes       repository.CodeRepository
	random      func(n int) (string, error)
	now         func() time.Time
	maxAttempts int
}

func NewCodeIssuer(codes repository.CodeRepository) CodeIssuer {
	return &codeIssuer{
		codes:       codes,
		random:      randomToken,
		now:         time.Now,
		maxAttempts: maxIssueAttempts,
	}
}

func (c *codeIssuer) Issue(ctx context.Context, prefix string, card domain.Card, member domain.Member) (domain.DiscountCode, error) {
	if !card.Issuable() {
		return domain.DiscountCode{}, ErrCardUnavailable
	}
	if prefix == "" {
		prefix = defaultCodePrefix
	}
	for i := 0; i < c.maxAttempts; i++ {
		token, err := c.random(codeRandomLen)
		if err != nil {
			return domain.DiscountCode{}, err
		}
		code := prefix + "-" + token
		exists, err := c.codes.Exists(ctx, card.StoreID, code)
		if err != nil {
			return domain.DiscountCode{}, err
		}
		if exists {
			continue
		}
		issuedAt := c.now().UnixMilli()
		return domain.DiscountCode{
			StoreID:   card.StoreID,
			CardID:    card.ID,
			MemberID:  member.ID,
			Code:      code,
			IssuedAt:  issuedAt,
			ExpiresAt: domain.ExpireAt(issuedAt, card.ExpireDays),
		}, nil
	}
	return domain.DiscountCode{}, ErrCodeCollision
}

func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	size := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
