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
	"io"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/errs"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/event"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	headerHmac       = "X-Shopify-Hmac-Sha256"
	headerShopDomain = "X-Shopify-Shop-Domain"
	maxWebhookBody   = 1 << 20
)

var _ ginx.Handler = &WebhookHandler{}

// WebhookHandler 接收电商平台的推送，不依赖登录态
type WebhookHandler struct {
	gateway  service.WebhookGateway
	ledger   service.RedemptionLedger
	members  service.MemberService
	producer event.TriggerEventProducer
	logger   *elog.Component
}

func NewWebhookHandler(gateway service.WebhookGateway,
	ledger service.RedemptionLedger,
	members service.MemberService,
	producer event.TriggerEventProducer) *WebhookHandler {
	return &WebhookHandler{
		gateway:  gateway,
		ledger:   ledger,
		members:  members,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/webhooks/shopify")
	g.POST("/orders-paid", ginx.W(h.OrdersPaid))
	g.POST("/orders-updated", ginx.W(h.OrdersUpdated))
	g.POST("/customers-create", ginx.W(h.CustomersCreate))
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WebhookHandler) OrdersPaid(ctx *ginx.Context) (ginx.Result, error) {
	store, payload, rd, res, err := h.redeem(ctx, topicOrdersPaid)
	if err != nil {
		return ginx.Result{}, err
	}
	customer := payload.Customer
	evt := domain.TriggerEvent{
		Type:       domain.TriggerOrderPaid,
		StoreID:    store.ID,
		Key:        "order_paid:" + rd.OrderID,
		OrderTotal: rd.OrderAmount,
		Email:      payload.BuyerEmail(),
	}
	if customer != nil {
		evt.Name = customer.FullName()
	}
	// 核销是幂等的，发送失败时让平台重试
	if err = h.producer.Produce(ctx.Request.Context(), evt); err != nil {
		return h.reject(ctx, topicOrdersPaid, http.StatusInternalServerError, systemErrorResult,
			fmt.Errorf("发送订单支付事件失败 orderId=%s: %w", rd.OrderID, err))
	}
	webhookCounter.WithLabelValues(topicOrdersPaid, "ok").Inc()
	return ginx.Result{Data: RedemptionResp{UpdatedCodes: res.UpdatedCodes}}, nil
}

// OrdersUpdated 订单更新时补记核销，不触发自动化规则
func (h *WebhookHandler) OrdersUpdated(ctx *ginx.Context) (ginx.Result, error) {
	_, _, _, res, err := h.redeem(ctx, topicOrdersUpdated)
	if err != nil {
		return ginx.Result{}, err
	}
	webhookCounter.WithLabelValues(topicOrdersUpdated, "ok").Inc()
	return ginx.Result{Data: RedemptionResp{UpdatedCodes: res.UpdatedCodes}}, nil
}

// redeem 校验并解析订单推送，核销其中的折扣码
func (h *WebhookHandler) redeem(ctx *ginx.Context, topic string) (domain.Store, service.OrderPaidPayload,
	domain.Redemption, domain.RedemptionResult, error) {
	var (
		payload service.OrderPaidPayload
		rd      domain.Redemption
		res     domain.RedemptionResult
	)
	store, body, err := h.verify(ctx, topic)
	if err != nil {
		return store, payload, rd, res, err
	}
	payload, err = h.gateway.ParseOrderPaid(body)
	if err == nil {
		rd, err = payload.Redemption(store.ID)
	}
	if err != nil {
		_, err = h.reject(ctx, topic, http.StatusBadRequest, result(errs.InvalidPayloadError), err)
		return store, payload, rd, res, err
	}
	res, err = h.ledger.ApplyRedemption(ctx.Request.Context(), rd)
	if err != nil {
		_, err = h.reject(ctx, topic, http.StatusInternalServerError, systemErrorResult,
			fmt.Errorf("核销折扣码失败 storeId=%d orderId=%s: %w", store.ID, rd.OrderID, err))
	}
	return store, payload, rd, res, err
}

func (h *WebhookHandler) CustomersCreate(ctx *ginx.Context) (ginx.Result, error) {
	store, body, err := h.verify(ctx, topicCustomersCreate)
	if err != nil {
		return ginx.Result{}, err
	}
	payload, err := h.gateway.ParseCustomerCreated(body)
	if err != nil {
		return h.reject(ctx, topicCustomersCreate, http.StatusBadRequest, result(errs.InvalidPayloadError), err)
	}
	if !domain.ValidEmail(domain.NormalizeEmail(payload.Email)) {
		webhookCounter.WithLabelValues(topicCustomersCreate, "skipped").Inc()
		return ginx.Result{Data: CustomerSyncResp{}}, nil
	}
	m, created, err := h.members.Sync(ctx.Request.Context(), store, payload.Email, payload.FullName())
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		// 重试也不会成功，直接确认
		h.logger.Warn("会员数量已达上限，忽略平台新客户",
			elog.Int64("storeId", store.ID), elog.String("customerId", payload.ID.String()))
		webhookCounter.WithLabelValues(topicCustomersCreate, "quota_exceeded").Inc()
		return ginx.Result{Data: CustomerSyncResp{}}, nil
	case err != nil:
		return h.reject(ctx, topicCustomersCreate, http.StatusInternalServerError, systemErrorResult,
			fmt.Errorf("同步平台客户失败 storeId=%d: %w", store.ID, err))
	}
	if created {
		err = h.producer.Produce(ctx.Request.Context(), domain.TriggerEvent{
			Type:     domain.TriggerCustomerCreated,
			StoreID:  store.ID,
			Key:      "customer_created:" + payload.ID.String(),
			MemberID: m.ID,
			Email:    m.Email,
			Name:     m.Name,
		})
		if err != nil {
			h.logger.Error("发送新客户事件失败", elog.FieldErr(err),
				elog.Int64("storeId", store.ID), elog.Int64("memberId", m.ID))
		}
	}
	webhookCounter.WithLabelValues(topicCustomersCreate, "ok").Inc()
	return ginx.Result{Data: CustomerSyncResp{MemberID: m.ID, Created: created}}, nil
}

// verify 校验失败时已经写好响应，调用方直接返回 error 即可
func (h *WebhookHandler) verify(ctx *ginx.Context, topic string) (domain.Store, []byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBody))
	if err != nil {
		_, err = h.reject(ctx, topic, http.StatusBadRequest, result(errs.InvalidPayloadError), err)
		return domain.Store{}, nil, err
	}
	store, err := h.gateway.Verify(ctx.Request.Context(), body,
		ctx.GetHeader(headerHmac), ctx.GetHeader(headerShopDomain))
	if err == nil {
		return store, body, nil
	}
	switch {
	case errors.Is(err, service.ErrMissingWebhookHeaders):
		_, err = h.reject(ctx, topic, http.StatusBadRequest, result(errs.MissingHeadersError), err)
	case errors.Is(err, service.ErrStoreNotFound):
		_, err = h.reject(ctx, topic, http.StatusNotFound, result(errs.StoreNotFoundError), err)
	case errors.Is(err, service.ErrInvalidSignature):
		_, err = h.reject(ctx, topic, http.StatusUnauthorized, result(errs.InvalidSignatureError), err)
	default:
		_, err = h.reject(ctx, topic, http.StatusInternalServerError, systemErrorResult, err)
	}
	return domain.Store{}, nil, err
}

func (h *WebhookHandler) reject(ctx *ginx.Context, topic string, status int, res ginx.Result, cause error) (ginx.Result, error) {
	webhookCounter.WithLabelValues(topic, strconv.Itoa(status)).Inc()
	if status >= http.StatusInternalServerError {
		h.logger.Error("处理平台 webhook 失败", elog.FieldErr(cause), elog.String("topic", topic))
	} else {
		h.logger.Warn("拒绝平台 webhook", elog.FieldErr(cause), elog.String("topic", topic),
			elog.String("shop", ctx.GetHeader(headerShopDomain)))
	}
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}
