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
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
)

type ConnectStoreReq struct {
	ShopDomain    string  `json:"shopDomain"`
	Name          string  `json:"name"`
	WebhookSecret string  `json:"webhookSecret"`
	Plan          string  `json:"plan"`
	Brand         BrandVO `json:"brand"`
}

type BrandVO struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

// Store 不返回 webhook 密钥
type Store struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ShopDomain  string  `json:"shopDomain"`
	Plan        string  `json:"plan"`
	Status      string  `json:"status"`
	MemberLimit int64   `json:"memberLimit"`
	Brand       BrandVO `json:"brand"`
}

type CreateCardReq struct {
	Name          string `json:"name"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	ExpireDays    int    `json:"expireDays"`
}

type Card struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	ExpireDays    int    `json:"expireDays"`
	Status        string `json:"status"`
	Headline      string `json:"headline"`
	Ctime         int64  `json:"ctime"`
}

type SetStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type IDResp struct {
	ID int64 `json:"id"`
}

type ListCodesReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCodesResp struct {
	Total int64          `json:"total"`
	Codes []DiscountCode `json:"codes"`
}

type DiscountCode struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	CardID     int64  `json:"cardId"`
	MemberID   int64  `json:"memberId"`
	IsRedeemed bool   `json:"isRedeemed"`
	OrderID    string `json:"orderId"`
	OrderName  string `json:"orderName"`
	RedeemedAt int64  `json:"redeemedAt"`
	IssuedAt   int64  `json:"issuedAt"`
	ExpiresAt  int64  `json:"expiresAt"`
}

type AddMemberReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Member struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Status string `json:"status"`
}

type ImportReq struct {
	// CampaignID 即卡券 ID，十进制字符串
	CampaignID string         `json:"campaignId"`
	Members    []ImportMember `json:"members"`
}

type ImportMember struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ImportResp struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

type QuotaExceeded struct {
	CurrentCount   int64 `json:"currentCount"`
	AttemptedCount int64 `json:"attemptedCount"`
	Limit          int64 `json:"limit"`
}

type CreateRuleReq struct {
	CardID      int64  `json:"cardId"`
	TriggerType string `json:"triggerType"`
	// TriggerValue 订单金额下限，单位为分
	TriggerValue *int64 `json:"triggerValue,omitempty"`
}

type Rule struct {
	ID           int64  `json:"id"`
	CardID       int64  `json:"cardId"`
	TriggerType  string `json:"triggerType"`
	TriggerValue *int64 `json:"triggerValue,omitempty"`
	IsActive     bool   `json:"isActive"`
	Ctime        int64  `json:"ctime"`
}

type ToggleRuleReq struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

type FireRuleReq struct {
	ID        int64   `json:"id"`
	MemberIDs []int64 `json:"memberIds"`
}

type FireRuleResp struct {
	Fired int `json:"fired"`
	// Errors 执行失败的会员及原因
	Errors []string `json:"errors,omitempty"`
}

type RedemptionResp struct {
	UpdatedCodes []string `json:"updatedCodes"`
}

type CustomerSyncResp struct {
	MemberID int64 `json:"memberId"`
	Created  bool  `json:"created"`
}

func newCard(c domain.Card) Card {
	return Card{
		ID:            c.ID,
		Name:          c.Name,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		ExpireDays:    c.ExpireDays,
		Status:        string(c.Status),
		Headline:      c.Headline(),
		Ctime:         c.Ctime,
	}
}

func newDiscountCode(c domain.DiscountCode) DiscountCode {
	return DiscountCode{
		ID:         c.ID,
		Code:       c.Code,
		CardID:     c.CardID,
		MemberID:   c.MemberID,
		IsRedeemed: c.IsRedeemed,
		OrderID:    c.OrderID,
		OrderName:  c.OrderName,
		RedeemedAt: c.RedeemedAt,
		IssuedAt:   c.IssuedAt,
		ExpiresAt:  c.ExpiresAt,
	}
}

func newMember(m domain.Member) Member {
	return Member{
		ID:     m.ID,
		Email:  m.Email,
		Name:   m.Name,
		Source: string(m.Source),
		Status: string(m.Status),
	}
}

func newRule(r domain.AutomationRule) Rule {
	return Rule{
		ID:           r.ID,
		CardID:       r.CardID,
		TriggerType:  string(r.TriggerType),
		TriggerValue: r.TriggerValue,
		IsActive:     r.IsActive,
		Ctime:        r.Ctime,
	}
}
