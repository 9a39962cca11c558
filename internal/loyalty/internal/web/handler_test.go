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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/errs"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	svcmocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/service/mocks"
	"github.com/ecodeclub/loyalty/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ownerUID int64 = 123

var connected = domain.Store{
	ID:         1,
	OwnerUID:   ownerUID,
	Name:       "咖啡店",
	ShopDomain: "coffee.myshopify.com",
	Plan:       domain.PlanFree,
	Status:     domain.StoreStatusActive,
}

type handlerMocks struct {
	stores      *svcmocks.MockStoreService
	cards       *svcmocks.MockCardService
	members     *svcmocks.MockMemberService
	importer    *svcmocks.MockImportService
	automations *svcmocks.MockAutomationService
	quota       *svcmocks.MockQuotaEnforcer
}

func newTestServer(ctrl *gomock.Controller, mock func(m handlerMocks)) *gin.Engine {
	m := handlerMocks{
		stores:      svcmocks.NewMockStoreService(ctrl),
		cards:       svcmocks.NewMockCardService(ctrl),
		members:     svcmocks.NewMockMemberService(ctrl),
		importer:    svcmocks.NewMockImportService(ctrl),
		automations: svcmocks.NewMockAutomationService(ctrl),
		quota:       svcmocks.NewMockQuotaEnforcer(ctrl),
	}
	mock(m)
	hdl := NewHandler(m.stores, m.cards, m.members, m.importer, m.automations, m.quota)
	server := gin.New()
	server.Use(test.LoginAs(ownerUID))
	hdl.PrivateRoutes(server)
	return server
}

func post[T any](t *testing.T, server *gin.Engine, path string, body any) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func expectStore(m handlerMocks) {
	m.stores.EXPECT().FindByOwner(gomock.Any(), ownerUID).Return(connected, nil)
}

func TestHandler_ConnectStore(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		req      ConnectStoreReq
		wantCode int
		wantResp test.Result[Store]
	}{
		{
			name: "绑定成功",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().Connect(gomock.Any(), domain.Store{
					OwnerUID:      ownerUID,
					Name:          "咖啡店",
					ShopDomain:    "Coffee.myshopify.com",
					WebhookSecret: "secret",
					Plan:          domain.PlanBase,
					Brand:         domain.Brand{Name: "Coffee", BackgroundColor: "#000000"},
				}).Return(domain.Store{
					ID:         1,
					OwnerUID:   ownerUID,
					Name:       "咖啡店",
					ShopDomain: "coffee.myshopify.com",
					Plan:       domain.PlanBase,
					Status:     domain.StoreStatusActive,
					Brand:      domain.Brand{Name: "Coffee", BackgroundColor: "#000000"},
				}, nil)
				m.quota.EXPECT().Limit(domain.PlanBase).Return(int64(1000))
			},
			req: ConnectStoreReq{
				ShopDomain:    "Coffee.myshopify.com",
				Name:          "咖啡店",
				WebhookSecret: "secret",
				Plan:          "base",
				Brand:         BrandVO{Name: "Coffee", BackgroundColor: "#000000"},
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Store]{Data: Store{
				ID:          1,
				Name:        "咖啡店",
				ShopDomain:  "coffee.myshopify.com",
				Plan:        "base",
				Status:      "active",
				MemberLimit: 1000,
				Brand:       BrandVO{Name: "Coffee", BackgroundColor: "#000000"},
			}},
		},
		{
			name: "店铺已被其他商家绑定",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().Connect(gomock.Any(), gomock.Any()).
					Return(domain.Store{}, service.ErrStoreOwned)
			},
			req:      ConnectStoreReq{ShopDomain: "coffee.myshopify.com", Name: "咖啡店"},
			wantCode: http.StatusConflict,
			wantResp: test.Result[Store]{Code: errs.StoreOwnedError.Code, Msg: errs.StoreOwnedError.Msg},
		},
		{
			name: "参数错误携带具体原因",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().Connect(gomock.Any(), gomock.Any()).
					Return(domain.Store{}, fmt.Errorf("%w: 店铺域名为空", service.ErrInvalidInput))
			},
			req:      ConnectStoreReq{Name: "咖啡店"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Store]{Code: errs.InvalidInputError.Code, Msg: "参数错误: 店铺域名为空"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[Store](t, server, "/store/connect", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_StoreNotConnected(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name: "尚未绑定店铺",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().FindByOwner(gomock.Any(), ownerUID).
					Return(domain.Store{}, service.ErrStoreNotFound)
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[any]{Code: errs.StoreNotConnectedError.Code, Msg: errs.StoreNotConnectedError.Msg},
		},
		{
			name: "查询店铺失败",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().FindByOwner(gomock.Any(), ownerUID).
					Return(domain.Store{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[any]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[any](t, server, "/card/list", nil)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_CreateCard(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		req      CreateCardReq
		wantCode int
		wantResp test.Result[IDResp]
	}{
		{
			name: "创建成功",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.cards.EXPECT().Create(gomock.Any(), domain.Card{
					StoreID:       connected.ID,
					Name:          "新客立减",
					DiscountType:  domain.DiscountTypePercentage,
					DiscountValue: 20,
					ExpireDays:    30,
				}).Return(int64(7), nil)
			},
			req: CreateCardReq{
				Name:          "新客立减",
				DiscountType:  "percentage",
				DiscountValue: 20,
				ExpireDays:    30,
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[IDResp]{Data: IDResp{ID: 7}},
		},
		{
			name: "折扣值非法",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.cards.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("%w: 百分比需在 1-100 之间", service.ErrInvalidInput))
			},
			req: CreateCardReq{
				Name:          "新客立减",
				DiscountType:  "percentage",
				DiscountValue: 120,
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[IDResp]{Code: errs.InvalidInputError.Code, Msg: "参数错误: 百分比需在 1-100 之间"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[IDResp](t, server, "/card/create", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_ListCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestServer(ctrl, func(m handlerMocks) {
		expectStore(m)
		m.cards.EXPECT().List(gomock.Any(), connected.ID).Return([]domain.Card{
			{ID: 1, Name: "九折", DiscountType: domain.DiscountTypePercentage, DiscountValue: 10, Status: domain.CardStatusActive, Ctime: 100},
			{ID: 2, Name: "立减", DiscountType: domain.DiscountTypeFixedAmount, DiscountValue: 550, ExpireDays: 7, Status: domain.CardStatusInactive, Ctime: 200},
		}, nil)
	})
	recorder := post[[]Card](t, server, "/card/list", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []Card{
		{ID: 1, Name: "九折", DiscountType: "percentage", DiscountValue: 10, Status: "active", Headline: "10% OFF", Ctime: 100},
		{ID: 2, Name: "立减", DiscountType: "fixed_amount", DiscountValue: 550, ExpireDays: 7, Status: "inactive", Headline: "$5.50 OFF", Ctime: 200},
	}, recorder.MustScan().Data)
}

func TestHandler_ListCodes(t *testing.T) {
	testCases := []struct {
		name       string
		req        ListCodesReq
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "默认分页",
			req:        ListCodesReq{},
			wantOffset: 0,
			wantLimit:  defaultPageSize,
		},
		{
			name:       "超出最大分页",
			req:        ListCodesReq{Offset: 40, Limit: 1000},
			wantOffset: 40,
			wantLimit:  maxPageSize,
		},
		{
			name:       "负数偏移量",
			req:        ListCodesReq{Offset: -5, Limit: 10},
			wantOffset: 0,
			wantLimit:  10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, func(m handlerMocks) {
				expectStore(m)
				m.cards.EXPECT().ListCodes(gomock.Any(), connected.ID, tc.wantOffset, tc.wantLimit).
					Return([]domain.DiscountCode{
						{ID: 3, Code: "COFFEE-AB12CD34", CardID: 1, MemberID: 9, IssuedAt: 100},
					}, int64(41), nil)
			})
			recorder := post[ListCodesResp](t, server, "/code/list", tc.req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, ListCodesResp{
				Total: 41,
				Codes: []DiscountCode{{ID: 3, Code: "COFFEE-AB12CD34", CardID: 1, MemberID: 9, IssuedAt: 100}},
			}, recorder.MustScan().Data)
		})
	}
}

func TestHandler_AddMember(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		req      AddMemberReq
		wantCode int
		wantResp test.Result[Member]
	}{
		{
			name: "添加成功",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.members.EXPECT().Add(gomock.Any(), connected, "a@example.com", "Alice").
					Return(domain.Member{
						ID:      5,
						StoreID: connected.ID,
						Email:   "a@example.com",
						Name:    "Alice",
						Source:  domain.MemberSourceManual,
						Status:  domain.MemberStatusActive,
					}, nil)
			},
			req:      AddMemberReq{Email: "a@example.com", Name: "Alice"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Member]{Data: Member{
				ID: 5, Email: "a@example.com", Name: "Alice", Source: "manual", Status: "active",
			}},
		},
		{
			name: "会员已存在",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.members.EXPECT().Add(gomock.Any(), connected, "a@example.com", "").
					Return(domain.Member{}, service.ErrMemberExists)
			},
			req:      AddMemberReq{Email: "a@example.com"},
			wantCode: http.StatusConflict,
			wantResp: test.Result[Member]{Code: errs.MemberExistsError.Code, Msg: errs.MemberExistsError.Msg},
		},
		{
			name: "邮箱格式错误",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.members.EXPECT().Add(gomock.Any(), connected, "bad", "").
					Return(domain.Member{}, fmt.Errorf("%w: 邮箱格式不正确", service.ErrInvalidInput))
			},
			req:      AddMemberReq{Email: "bad"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Member]{Code: errs.InvalidInputError.Code, Msg: "参数错误: 邮箱格式不正确"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[Member](t, server, "/member/add", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_MemberQuotaExceeded(t *testing.T) {
	quotaErr := fmt.Errorf("创建会员失败: %w",
		&domain.QuotaExceededError{CurrentCount: 100, AttemptedCount: 1, Limit: 100})
	testCases := []struct {
		name string
		mock func(m handlerMocks)
		path string
		req  any
	}{
		{
			name: "添加会员",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.members.EXPECT().Add(gomock.Any(), connected, "b@example.com", "").
					Return(domain.Member{}, quotaErr)
			},
			path: "/member/add",
			req:  AddMemberReq{Email: "b@example.com"},
		},
		{
			name: "重新启用会员",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.members.EXPECT().SetStatus(gomock.Any(), connected, int64(5), domain.MemberStatusActive).
					Return(quotaErr)
			},
			path: "/member/status",
			req:  SetStatusReq{ID: 5, Status: "active"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[QuotaExceeded](t, server, tc.path, tc.req)
			require.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Equal(t, test.Result[QuotaExceeded]{
				Code: errs.QuotaExceededError.Code,
				Msg:  errs.QuotaExceededError.Msg,
				Data: QuotaExceeded{CurrentCount: 100, AttemptedCount: 1, Limit: 100},
			}, recorder.MustScan())
		})
	}
}

func TestHandler_ImportAndSend(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(m handlerMocks)
		req        ImportReq
		wantCode   int
		wantImport test.Result[ImportResp]
		// 403 时 Data 为 QuotaExceeded
		wantQuota test.Result[QuotaExceeded]
	}{
		{
			name: "导入成功",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(7), []domain.ImportRow{
					{Email: "a@example.com", Name: "Alice"},
					{Email: "bad"},
				}).Return(domain.ImportResult{
					Success: 1,
					Failed:  1,
					Errors:  []string{"第2行(bad): 邮箱格式错误"},
				}, nil)
			},
			req: ImportReq{CampaignID: "7", Members: []ImportMember{
				{Email: "a@example.com", Name: "Alice"},
				{Email: "bad"},
			}},
			wantCode: http.StatusOK,
			wantImport: test.Result[ImportResp]{Data: ImportResp{
				Success: 1,
				Failed:  1,
				Errors:  []string{"第2行(bad): 邮箱格式错误"},
			}},
		},
		{
			name: "超出套餐上限返回 403",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(7), gomock.Any()).
					Return(domain.ImportResult{}, fmt.Errorf("导入前校验失败: %w",
						&domain.QuotaExceededError{CurrentCount: 95, AttemptedCount: 10, Limit: 100}))
			},
			req: ImportReq{CampaignID: "7", Members: []ImportMember{{Email: "a@example.com"}}},
			wantCode: http.StatusForbidden,
			wantQuota: test.Result[QuotaExceeded]{
				Code: errs.QuotaExceededError.Code,
				Msg:  errs.QuotaExceededError.Msg,
				Data: QuotaExceeded{CurrentCount: 95, AttemptedCount: 10, Limit: 100},
			},
		},
		{
			name: "导入行数超出限制",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(7), gomock.Any()).
					Return(domain.ImportResult{}, service.ErrTooManyRows)
			},
			req:      ImportReq{CampaignID: "7"},
			wantCode: http.StatusBadRequest,
			wantImport: test.Result[ImportResp]{
				Code: errs.TooManyRowsError.Code,
				Msg:  errs.TooManyRowsError.Msg,
			},
		},
		{
			name: "卡券已停用",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(7), gomock.Any()).
					Return(domain.ImportResult{}, service.ErrCardUnavailable)
			},
			req:      ImportReq{CampaignID: "7"},
			wantCode: http.StatusNotFound,
			wantImport: test.Result[ImportResp]{
				Code: errs.CardUnavailableError.Code,
				Msg:  errs.CardUnavailableError.Msg,
			},
		},
		{
			name: "卡券不存在",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(404), gomock.Any()).
					Return(domain.ImportResult{}, fmt.Errorf("查询卡券失败: %w", service.ErrCardNotFound))
			},
			req:      ImportReq{CampaignID: "404"},
			wantCode: http.StatusNotFound,
			wantImport: test.Result[ImportResp]{
				Code: errs.CardNotFoundError.Code,
				Msg:  errs.CardNotFoundError.Msg,
			},
		},
		{
			name: "店铺未绑定",
			mock: func(m handlerMocks) {
				m.stores.EXPECT().FindByOwner(gomock.Any(), ownerUID).
					Return(domain.Store{}, service.ErrStoreNotFound)
			},
			req:      ImportReq{CampaignID: "7"},
			wantCode: http.StatusNotFound,
			wantImport: test.Result[ImportResp]{
				Code: errs.StoreNotConnectedError.Code,
				Msg:  errs.StoreNotConnectedError.Msg,
			},
		},
		{
			name: "campaignId 不是数字",
			mock: func(m handlerMocks) {
				expectStore(m)
			},
			req:      ImportReq{CampaignID: "c7f3-uuid"},
			wantCode: http.StatusBadRequest,
			wantImport: test.Result[ImportResp]{
				Code: errs.InvalidInputError.Code,
				Msg:  "参数错误: campaignId 格式不正确",
			},
		},
		{
			name: "导入失败",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(7), gomock.Any()).
					Return(domain.ImportResult{}, errors.New("mock db error"))
			},
			req:      ImportReq{CampaignID: "7"},
			wantCode: http.StatusInternalServerError,
			wantImport: test.Result[ImportResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			if tc.wantCode == http.StatusForbidden {
				recorder := post[QuotaExceeded](t, server, "/campaign/import-and-send", tc.req)
				require.Equal(t, tc.wantCode, recorder.Code)
				assert.Equal(t, tc.wantQuota, recorder.MustScan())
				return
			}
			recorder := post[ImportResp](t, server, "/campaign/import-and-send", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantImport, recorder.MustScan())
		})
	}
}

func TestHandler_ImportAndSend_StringCampaignID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestServer(ctrl, func(m handlerMocks) {
		expectStore(m)
		m.importer.EXPECT().ImportAndIssue(gomock.Any(), connected, int64(12), []domain.ImportRow{
			{Email: "a@example.com", Name: "Alice"},
		}).Return(domain.ImportResult{Success: 1}, nil)
	})
	recorder := post[ImportResp](t, server, "/campaign/import-and-send", map[string]any{
		"campaignId": "12",
		"members":    []map[string]string{{"email": "a@example.com", "name": "Alice"}},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ImportResp{Success: 1}, recorder.MustScan().Data)
}

func TestHandler_CreateRule(t *testing.T) {
	threshold := int64(5000)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestServer(ctrl, func(m handlerMocks) {
		expectStore(m)
		m.automations.EXPECT().Create(gomock.Any(), domain.AutomationRule{
			StoreID:      connected.ID,
			CardID:       7,
			TriggerType:  domain.TriggerOrderPaid,
			TriggerValue: &threshold,
			IsActive:     true,
		}).Return(int64(11), nil)
	})
	recorder := post[IDResp](t, server, "/automation/create", CreateRuleReq{
		CardID:       7,
		TriggerType:  "order_paid",
		TriggerValue: &threshold,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, IDResp{ID: 11}, recorder.MustScan().Data)
}

func TestHandler_FireRule(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		wantCode int
		wantResp test.Result[FireRuleResp]
	}{
		{
			name: "全部成功",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.automations.EXPECT().FireManual(gomock.Any(), connected, int64(11), []int64{1, 2}).
					Return(2, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[FireRuleResp]{Data: FireRuleResp{Fired: 2}},
		},
		{
			name: "部分成功",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.automations.EXPECT().FireManual(gomock.Any(), connected, int64(11), []int64{1, 2}).
					Return(1, errors.Join(errors.New("会员 2: 发送邮件失败")))
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[FireRuleResp]{Data: FireRuleResp{
				Fired:  1,
				Errors: []string{"会员 2: 发送邮件失败"},
			}},
		},
		{
			name: "全部失败",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.automations.EXPECT().FireManual(gomock.Any(), connected, int64(11), []int64{1, 2}).
					Return(0, errors.Join(errors.New("会员 1: 发送邮件失败"), errors.New("会员 2: 发送邮件失败")))
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[FireRuleResp]{Data: FireRuleResp{
				Errors: []string{"会员 1: 发送邮件失败", "会员 2: 发送邮件失败"},
			}},
		},
		{
			name: "规则不存在",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.automations.EXPECT().FireManual(gomock.Any(), connected, int64(11), []int64{1, 2}).
					Return(0, service.ErrRuleNotFound)
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[FireRuleResp]{Code: errs.RuleNotFoundError.Code, Msg: errs.RuleNotFoundError.Msg},
		},
		{
			name: "不是手动规则",
			mock: func(m handlerMocks) {
				expectStore(m)
				m.automations.EXPECT().FireManual(gomock.Any(), connected, int64(11), []int64{1, 2}).
					Return(0, service.ErrRuleNotManual)
			},
			wantCode: http.StatusConflict,
			wantResp: test.Result[FireRuleResp]{Code: errs.RuleNotManualError.Code, Msg: errs.RuleNotManualError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(ctrl, tc.mock)
			recorder := post[FireRuleResp](t, server, "/automation/fire",
				FireRuleReq{ID: 11, MemberIDs: []int64{1, 2}})
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
