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

import "strings"

type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusBlocked MemberStatus = "blocked"
)

func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusBlocked
}

type MemberSource string

const (
	MemberSourceImport      MemberSource = "import"
	MemberSourceManual      MemberSource = "manual"
	MemberSourceShopifySync MemberSource = "shopify_sync"
	MemberSourceAutomation  MemberSource = "automation"
)

// Member 在同一个店铺内按 Email 唯一
type Member struct {
	ID      int64
	StoreID int64
	Email   string
	Name    string
	Source  MemberSource
	Status  MemberStatus
	Ctime   int64
	Utime   int64
}

// DisplayName 没有名字的时候使用邮箱前缀
func (m Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	local, _, _ := strings.Cut(m.Email, "@")
	return local
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail 只做最基本的检查
func ValidEmail(email string) bool {
	local, host, ok := strings.Cut(email, "@")
	return ok && local != "" && host != "" && !strings.ContainsAny(email, " \t\r\n")
}
