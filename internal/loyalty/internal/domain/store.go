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
	"strings"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanBase Plan = "base"
	PlanPro  Plan = "pro"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBase, PlanPro:
		return true
	}
	return false
}

type StoreStatus string

const (
	StoreStatusActive       StoreStatus = "active"
	StoreStatusPaused       StoreStatus = "paused"
	StoreStatusDisconnected StoreStatus = "disconnected"
)

// Store 商家在电商平台上的一个店铺
type Store struct {
	ID       int64
	OwnerUID int64
	Name     string
	// ShopDomain 已经规范化
	ShopDomain string
	// WebhookSecret 一旦设置不可修改
	WebhookSecret string
	Plan          Plan
	Status        StoreStatus
	Brand         Brand
	Ctime         int64
	Utime         int64
}

// NormalizeShopDomain 去掉协议、路径、端口与首尾空白，并转为小写
func NormalizeShopDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if i := strings.LastIndex(d, ":"); i >= 0 {
		d = d[:i]
	}
	return strings.TrimSuffix(d, ".")
}
