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
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=./webhook.go -package=svcmocks -destination=./mocks/webhook.mock.go -typed WebhookGateway
// WebhookGateway 校验平台推送的请求，通过之后才能解析请求体
type WebhookGateway interface {
	// Verify 依次检查请求头、店铺与签名
	Verify(ctx context.Context, body []byte, signature, shopDomain string) (domain.Store, error)
	ParseOrderPaid(body []byte) (OrderPaidPayload, error)
	ParseCustomerCreated(body []byte) (CustomerPayload, error)
}

type webhookGateway struct {
	stores   repository.StoreRepository
	validate *validator.Validate
}

func NewWebhookGateway(stores repository.StoreRepository) WebhookGateway {
	return &webhookGateway{
		stores:   stores,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SignPayload base64(HMAC-SHA256(secret, body))
func SignPayload(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (g *webhookGateway) Verify(ctx context.Context, body []byte, signature, shopDomain string) (domain.Store, error) {
	shopDomain = domain.NormalizeShopDomain(shopDomain)
	if signature == "" || shopDomain == "" {
		return domain.Store{}, ErrMissingWebhookHeaders
	}
	store, err := g.stores.FindByDomain(ctx, shopDomain)
	if err != nil {
		return domain.Store{}, notFound(err, ErrStoreNotFound)
	}
	if store.Status == domain.StoreStatusDisconnected {
		return domain.Store{}, ErrStoreNotFound
	}
	if store.WebhookSecret == "" {
		return domain.Store{}, ErrInvalidSignature
	}
	expected := SignPayload(body, store.WebhookSecret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.Store{}, ErrInvalidSignature
	}
	return store, nil
}

type OrderPaidPayload struct {
	ID            json.Number           `json:"id" validate:"required,numeric"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	TotalPrice    string                `json:"total_price" validate:"omitempty,numeric"`
	Customer      *CustomerPayload      `json:"customer"`
	DiscountCodes []DiscountCodePayload `json:"discount_codes" validate:"dive"`
}

type DiscountCodePayload struct {
	Code string `json:"code" validate:"required"`
}

type CustomerPayload struct {
	ID        json.Number `json:"id" validate:"required,numeric"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
}

func (c CustomerPayload) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Redemption 金额转换为最小货币单位
func (p OrderPaidPayload) Redemption(storeID int64) (domain.Redemption, error) {
	r := domain.Redemption{
		StoreID:   storeID,
		OrderID:   p.ID.String(),
		OrderName: p.Name,
		Codes:     make([]string, 0, len(p.DiscountCodes)),
	}
	for _, c := range p.DiscountCodes {
		r.Codes = append(r.Codes, c.Code)
	}
	amount, err := p.TotalMinor()
	r.OrderAmount = amount
	return r, err
}

func (p OrderPaidPayload) TotalMinor() (int64, error) {
	if p.TotalPrice == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(p.TotalPrice)
	if err != nil {
		return 0, fmt.Errorf("%w: total_price %s", ErrInvalidPayload, p.TotalPrice)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// BuyerEmail 优先使用订单上的邮箱
func (p OrderPaidPayload) BuyerEmail() string {
	if p.Email != "" {
		return p.Email
	}
	if p.Customer != nil {
		return p.Customer.Email
	}
	return ""
}

func (g *webhookGateway) ParseOrderPaid(body []byte) (OrderPaidPayload, error) {
	var p OrderPaidPayload
	err := g.decode(body, &p)
	return p, err
}

func (g *webhookGateway) ParseCustomerCreated(body []byte) (CustomerPayload, error) {
	var p CustomerPayload
	err := g.decode(body, &p)
	return p, err
}

func (g *webhookGateway) decode(body []byte, val any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(val); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := g.validate.Struct(val); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
