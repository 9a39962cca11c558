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
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/errs"
	evtmocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/event/mocks"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	svcmocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/service/mocks"
	"github.com/ecodeclub/loyalty/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testShop      = "coffee.myshopify.com"
	testSignature = "c2lnbmF0dXJl"
)

type webhookMocks struct {
	gateway  *svcmocks.MockWebhookGateway
	ledger   *svcmocks.MockRedemptionLedger
	members  *svcmocks.MockMemberService
	producer *evtmocks.MockTriggerEventProducer
}

func newWebhookServer(ctrl *gomock.Controller, mock func(m webhookMocks)) *gin.Engine {
	m := webhookMocks{
		gateway:  svcmocks.NewMockWebhookGateway(ctrl),
		ledger:   svcmocks.NewMockRedemptionLedger(ctrl),
		members:  svcmocks.NewMockMemberService(ctrl),
		producer: evtmocks.NewMockTriggerEventProducer(ctrl),
	}
	mock(m)
	server := gin.New()
	NewWebhookHandler(m.gateway, m.ledger, m.members, m.producer).PublicRoutes(server)
	return server
}

func pushWebhook[T any](t *testing.T, server *gin.Engine, path string, body []byte) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(headerHmac, testSignature)
	req.Header.Set(headerShopDomain, testShop)
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestWebhookHandler_OrdersPaid(t *testing.T) {
	body := []byte(`{"id":1001}`)
	paid := service.OrderPaidPayload{
		ID:         "1001",
		Name:       "#1001",
		TotalPrice: "88.50",
		Customer: &service.CustomerPayload{
			ID:        "9",
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Lee",
		},
		DiscountCodes: []service.DiscountCodePayload{{Code: "COFFEE-AB12CD34"}},
	}
	redemption := domain.Redemption{
		StoreID:     connected.ID,
		Codes:       []string{"COFFEE-AB12CD34"},
		OrderID:     "1001",
		OrderName:   "#1001",
		OrderAmount: 8850,
	}
	verified := func(m webhookMocks) {
		m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).Return(connected, nil)
	}

	testCases := []struct {
		name     string
		mock     func(m webhookMocks)
		wantCode int
		wantResp test.Result[RedemptionResp]
	}{
		{
			name: "核销成功并发送事件",
			mock: func(m webhookMocks) {
				verified(m)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(paid, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), redemption).
					Return(domain.RedemptionResult{UpdatedCodes: []string{"COFFEE-AB12CD34"}}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), domain.TriggerEvent{
					Type:       domain.TriggerOrderPaid,
					StoreID:    connected.ID,
					Key:        "order_paid:1001",
					OrderTotal: 8850,
					Email:      "alice@example.com",
					Name:       "Alice Lee",
				}).Return(nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[RedemptionResp]{Data: RedemptionResp{UpdatedCodes: []string{"COFFEE-AB12CD34"}}},
		},
		{
			name: "重放返回相同结果",
			mock: func(m webhookMocks) {
				verified(m)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(paid, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), redemption).
					Return(domain.RedemptionResult{UpdatedCodes: []string{"COFFEE-AB12CD34"}}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[RedemptionResp]{Data: RedemptionResp{UpdatedCodes: []string{"COFFEE-AB12CD34"}}},
		},
		{
			name: "缺少请求头",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).
					Return(domain.Store{}, service.ErrMissingWebhookHeaders)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[RedemptionResp]{Code: errs.MissingHeadersError.Code, Msg: errs.MissingHeadersError.Msg},
		},
		{
			name: "签名错误",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).
					Return(domain.Store{}, service.ErrInvalidSignature)
			},
			wantCode: http.StatusUnauthorized,
			wantResp: test.Result[RedemptionResp]{Code: errs.InvalidSignatureError.Code, Msg: errs.InvalidSignatureError.Msg},
		},
		{
			name: "店铺未绑定",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).
					Return(domain.Store{}, service.ErrStoreNotFound)
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[RedemptionResp]{Code: errs.StoreNotFoundError.Code, Msg: errs.StoreNotFoundError.Msg},
		},
		{
			name: "查询店铺失败",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).
					Return(domain.Store{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[RedemptionResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
		{
			name: "请求体格式错误",
			mock: func(m webhookMocks) {
				verified(m)
				m.gateway.EXPECT().ParseOrderPaid(body).
					Return(service.OrderPaidPayload{}, service.ErrInvalidPayload)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[RedemptionResp]{Code: errs.InvalidPayloadError.Code, Msg: errs.InvalidPayloadError.Msg},
		},
		{
			name: "订单金额非法",
			mock: func(m webhookMocks) {
				verified(m)
				bad := paid
				bad.TotalPrice = "abc"
				m.gateway.EXPECT().ParseOrderPaid(body).Return(bad, nil)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[RedemptionResp]{Code: errs.InvalidPayloadError.Code, Msg: errs.InvalidPayloadError.Msg},
		},
		{
			name: "核销失败让平台重试",
			mock: func(m webhookMocks) {
				verified(m)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(paid, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), redemption).
					Return(domain.RedemptionResult{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[RedemptionResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
		{
			name: "发送事件失败让平台重试",
			mock: func(m webhookMocks) {
				verified(m)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(paid, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), redemption).
					Return(domain.RedemptionResult{UpdatedCodes: []string{"COFFEE-AB12CD34"}}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[RedemptionResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newWebhookServer(ctrl, tc.mock)
			recorder := pushWebhook[RedemptionResp](t, server, "/webhooks/shopify/orders-paid", body)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestWebhookHandler_OrdersUpdated(t *testing.T) {
	body := []byte(`{"id":1001}`)
	updated := service.OrderPaidPayload{
		ID:            "1001",
		Name:          "#1001",
		TotalPrice:    "12.00",
		DiscountCodes: []service.DiscountCodePayload{{Code: "coffee-ab12cd34"}},
	}
	testCases := []struct {
		name     string
		mock     func(m webhookMocks)
		wantCode int
		wantResp test.Result[RedemptionResp]
	}{
		{
			name: "补记核销且不发送事件",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).Return(connected, nil)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(updated, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), domain.Redemption{
					StoreID:     connected.ID,
					Codes:       []string{"coffee-ab12cd34"},
					OrderID:     "1001",
					OrderName:   "#1001",
					OrderAmount: 1200,
				}).Return(domain.RedemptionResult{UpdatedCodes: []string{"COFFEE-AB12CD34"}}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[RedemptionResp]{Data: RedemptionResp{UpdatedCodes: []string{"COFFEE-AB12CD34"}}},
		},
		{
			name: "签名错误",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).
					Return(domain.Store{}, service.ErrInvalidSignature)
			},
			wantCode: http.StatusUnauthorized,
			wantResp: test.Result[RedemptionResp]{Code: errs.InvalidSignatureError.Code, Msg: errs.InvalidSignatureError.Msg},
		},
		{
			name: "核销失败让平台重试",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).Return(connected, nil)
				m.gateway.EXPECT().ParseOrderPaid(body).Return(updated, nil)
				m.ledger.EXPECT().ApplyRedemption(gomock.Any(), gomock.Any()).
					Return(domain.RedemptionResult{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[RedemptionResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newWebhookServer(ctrl, tc.mock)
			recorder := pushWebhook[RedemptionResp](t, server, "/webhooks/shopify/orders-updated", body)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestWebhookHandler_CustomersCreate(t *testing.T) {
	body := []byte(`{"id":9}`)
	customer := service.CustomerPayload{
		ID:        "9",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Lee",
	}
	member := domain.Member{
		ID:      5,
		StoreID: connected.ID,
		Email:   "alice@example.com",
		Name:    "Alice Lee",
		Source:  domain.MemberSourceShopifySync,
		Status:  domain.MemberStatusActive,
	}
	parsed := func(c service.CustomerPayload) func(m webhookMocks) {
		return func(m webhookMocks) {
			m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).Return(connected, nil)
			m.gateway.EXPECT().ParseCustomerCreated(body).Return(c, nil)
		}
	}

	testCases := []struct {
		name     string
		mock     func(m webhookMocks)
		wantCode int
		wantResp test.Result[CustomerSyncResp]
	}{
		{
			name: "新会员并发送事件",
			mock: func(m webhookMocks) {
				parsed(customer)(m)
				m.members.EXPECT().Sync(gomock.Any(), connected, "alice@example.com", "Alice Lee").
					Return(member, true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), domain.TriggerEvent{
					Type:     domain.TriggerCustomerCreated,
					StoreID:  connected.ID,
					Key:      "customer_created:9",
					MemberID: 5,
					Email:    "alice@example.com",
					Name:     "Alice Lee",
				}).Return(nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CustomerSyncResp]{Data: CustomerSyncResp{MemberID: 5, Created: true}},
		},
		{
			name: "会员已存在不发送事件",
			mock: func(m webhookMocks) {
				parsed(customer)(m)
				m.members.EXPECT().Sync(gomock.Any(), connected, "alice@example.com", "Alice Lee").
					Return(member, false, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CustomerSyncResp]{Data: CustomerSyncResp{MemberID: 5}},
		},
		{
			name:     "没有邮箱直接确认",
			mock:     parsed(service.CustomerPayload{ID: "10", FirstName: "Bob"}),
			wantCode: http.StatusOK,
			wantResp: test.Result[CustomerSyncResp]{},
		},
		{
			name: "超出套餐上限直接确认",
			mock: func(m webhookMocks) {
				parsed(customer)(m)
				m.members.EXPECT().Sync(gomock.Any(), connected, "alice@example.com", "Alice Lee").
					Return(domain.Member{}, false, &domain.QuotaExceededError{CurrentCount: 100, AttemptedCount: 1, Limit: 100})
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CustomerSyncResp]{},
		},
		{
			name: "同步失败让平台重试",
			mock: func(m webhookMocks) {
				parsed(customer)(m)
				m.members.EXPECT().Sync(gomock.Any(), connected, "alice@example.com", "Alice Lee").
					Return(domain.Member{}, false, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[CustomerSyncResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
		{
			name: "发送事件失败不影响确认",
			mock: func(m webhookMocks) {
				parsed(customer)(m)
				m.members.EXPECT().Sync(gomock.Any(), connected, "alice@example.com", "Alice Lee").
					Return(member, true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CustomerSyncResp]{Data: CustomerSyncResp{MemberID: 5, Created: true}},
		},
		{
			name: "请求体格式错误",
			mock: func(m webhookMocks) {
				m.gateway.EXPECT().Verify(gomock.Any(), body, testSignature, testShop).Return(connected, nil)
				m.gateway.EXPECT().ParseCustomerCreated(body).
					Return(service.CustomerPayload{}, service.ErrInvalidPayload)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[CustomerSyncResp]{Code: errs.InvalidPayloadError.Code, Msg: errs.InvalidPayloadError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newWebhookServer(ctrl, tc.mock)
			recorder := pushWebhook[CustomerSyncResp](t, server, "/webhooks/shopify/customers-create", body)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
