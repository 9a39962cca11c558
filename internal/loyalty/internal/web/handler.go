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
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var _ ginx.Handler = &Handler{}

// Handler 商家后台，所有接口都需要登录
type Handler struct {
	stores      service.StoreService
	cards       service.CardService
	members     service.MemberService
	importer    service.ImportService
	automations service.AutomationService
	quota       service.QuotaEnforcer
}

func NewHandler(stores service.StoreService,
	cards service.CardService,
	members service.MemberService,
	importer service.ImportService,
	automations service.AutomationService,
	quota service.QuotaEnforcer) *Handler {
	return &Handler{
		stores:      stores,
		cards:       cards,
		members:     members,
		importer:    importer,
		automations: automations,
		quota:       quota,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	s := server.Group("/store")
	s.POST("/connect", ginx.BS[ConnectStoreReq](h.ConnectStore))
	s.POST("/detail", ginx.S(h.StoreDetail))

	c := server.Group("/card")
	c.POST("/create", ginx.BS[CreateCardReq](h.CreateCard))
	c.POST("/list", ginx.S(h.ListCards))
	c.POST("/status", ginx.BS[SetStatusReq](h.SetCardStatus))

	server.POST("/code/list", ginx.BS[ListCodesReq](h.ListCodes))

	m := server.Group("/member")
	m.POST("/add", ginx.BS[AddMemberReq](h.AddMember))
	m.POST("/status", ginx.BS[SetStatusReq](h.SetMemberStatus))

	server.POST("/campaign/import-and-send", ginx.BS[ImportReq](h.ImportAndSend))

	a := server.Group("/automation")
	a.POST("/create", ginx.BS[CreateRuleReq](h.CreateRule))
	a.POST("/list", ginx.S(h.ListRules))
	a.POST("/toggle", ginx.BS[ToggleRuleReq](h.ToggleRule))
	a.POST("/fire", ginx.BS[FireRuleReq](h.FireRule))
}

func (h *Handler) ConnectStore(ctx *ginx.Context, req ConnectStoreReq, sess session.Session) (ginx.Result, error) {
	s, err := h.stores.Connect(ctx.Request.Context(), domain.Store{
		OwnerUID:      sess.Claims().Uid,
		Name:          req.Name,
		ShopDomain:    req.ShopDomain,
		WebhookSecret: req.WebhookSecret,
		Plan:          domain.Plan(req.Plan),
		Brand: domain.Brand{
			Name:            req.Brand.Name,
			BackgroundColor: req.Brand.BackgroundColor,
			ForegroundColor: req.Brand.ForegroundColor,
		},
	})
	if err != nil {
		return writeError(ctx, err, "绑定店铺失败")
	}
	return ginx.Result{Data: h.toStoreVO(s)}, nil
}

func (h *Handler) StoreDetail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	return ginx.Result{Data: h.toStoreVO(s)}, nil
}

func (h *Handler) CreateCard(ctx *ginx.Context, req CreateCardReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	id, err := h.cards.Create(ctx.Request.Context(), domain.Card{
		StoreID:       s.ID,
		Name:          req.Name,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		ExpireDays:    req.ExpireDays,
	})
	if err != nil {
		return writeError(ctx, err, "创建卡券失败")
	}
	return ginx.Result{Data: IDResp{ID: id}}, nil
}

func (h *Handler) ListCards(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	cs, err := h.cards.List(ctx.Request.Context(), s.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询卡券失败: %w", err)
	}
	return ginx.Result{Data: slice.Map(cs, func(idx int, src domain.Card) Card {
		return newCard(src)
	})}, nil
}

func (h *Handler) SetCardStatus(ctx *ginx.Context, req SetStatusReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	err = h.cards.SetStatus(ctx.Request.Context(), s.ID, req.ID, domain.CardStatus(req.Status))
	if err != nil {
		return writeError(ctx, err, "修改卡券状态失败")
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListCodes(ctx *ginx.Context, req ListCodesReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	codes, total, err := h.cards.ListCodes(ctx.Request.Context(), s.ID, max(req.Offset, 0), limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询折扣码失败: %w", err)
	}
	return ginx.Result{Data: ListCodesResp{
		Total: total,
		Codes: slice.Map(codes, func(idx int, src domain.DiscountCode) DiscountCode {
			return newDiscountCode(src)
		}),
	}}, nil
}

func (h *Handler) AddMember(ctx *ginx.Context, req AddMemberReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	m, err := h.members.Add(ctx.Request.Context(), s, req.Email, req.Name)
	if err != nil {
		return writeError(ctx, err, "添加会员失败")
	}
	return ginx.Result{Data: newMember(m)}, nil
}

func (h *Handler) SetMemberStatus(ctx *ginx.Context, req SetStatusReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	err = h.members.SetStatus(ctx.Request.Context(), s, req.ID, domain.MemberStatus(req.Status))
	if err != nil {
		return writeError(ctx, err, "修改会员状态失败")
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ImportAndSend(ctx *ginx.Context, req ImportReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	campaignID, err := strconv.ParseInt(strings.TrimSpace(req.CampaignID), 10, 64)
	if err != nil || campaignID <= 0 {
		return writeError(ctx, fmt.Errorf("%w: campaignId 格式不正确", service.ErrInvalidInput), "导入会员失败")
	}
	rows := slice.Map(req.Members, func(idx int, src ImportMember) domain.ImportRow {
		return domain.ImportRow{Email: src.Email, Name: src.Name}
	})
	r, err := h.importer.ImportAndIssue(ctx.Request.Context(), s, campaignID, rows)
	if err != nil {
		return writeError(ctx, err, "导入会员失败")
	}
	return ginx.Result{Data: ImportResp{
		Success: r.Success,
		Failed:  r.Failed,
		Skipped: r.Skipped,
		Errors:  r.Errors,
	}}, nil
}

func (h *Handler) CreateRule(ctx *ginx.Context, req CreateRuleReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	id, err := h.automations.Create(ctx.Request.Context(), domain.AutomationRule{
		StoreID:      s.ID,
		CardID:       req.CardID,
		TriggerType:  domain.TriggerType(req.TriggerType),
		TriggerValue: req.TriggerValue,
		IsActive:     true,
	})
	if err != nil {
		return writeError(ctx, err, "创建自动化规则失败")
	}
	return ginx.Result{Data: IDResp{ID: id}}, nil
}

func (h *Handler) ListRules(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	rules, err := h.automations.List(ctx.Request.Context(), s.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询自动化规则失败: %w", err)
	}
	return ginx.Result{Data: slice.Map(rules, func(idx int, src domain.AutomationRule) Rule {
		return newRule(src)
	})}, nil
}

func (h *Handler) ToggleRule(ctx *ginx.Context, req ToggleRuleReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	if err = h.automations.SetActive(ctx.Request.Context(), s.ID, req.ID, req.Active); err != nil {
		return writeError(ctx, err, "修改自动化规则失败")
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) FireRule(ctx *ginx.Context, req FireRuleReq, sess session.Session) (ginx.Result, error) {
	s, res, err := h.store(ctx, sess)
	if err != nil {
		return res, err
	}
	fired, err := h.automations.FireManual(ctx.Request.Context(), s, req.ID, req.MemberIDs)
	// 逐个会员的失败被合并返回，成功的部分照常响应
	var failures interface{ Unwrap() []error }
	if errors.As(err, &failures) {
		elog.DefaultLogger.Warn("部分会员执行自动化规则失败", elog.FieldErr(err),
			elog.Int64("ruleId", req.ID), elog.Int64("fired", int64(fired)))
		reasons := slice.Map(failures.Unwrap(), func(idx int, src error) string {
			return src.Error()
		})
		return ginx.Result{Data: FireRuleResp{Fired: fired, Errors: reasons}}, nil
	}
	if err != nil {
		return writeError(ctx, err, "执行自动化规则失败")
	}
	return ginx.Result{Data: FireRuleResp{Fired: fired}}, nil
}

func (h *Handler) store(ctx *ginx.Context, sess session.Session) (domain.Store, ginx.Result, error) {
	s, err := h.stores.FindByOwner(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrStoreNotFound) {
		ctx.JSON(http.StatusNotFound, storeNotConnectedResult)
		return s, ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return s, systemErrorResult, fmt.Errorf("查询店铺失败: %w", err)
	}
	return s, ginx.Result{}, nil
}

func (h *Handler) toStoreVO(s domain.Store) Store {
	return Store{
		ID:          s.ID,
		Name:        s.Name,
		ShopDomain:  s.ShopDomain,
		Plan:        string(s.Plan),
		Status:      string(s.Status),
		MemberLimit: h.quota.Limit(s.Plan),
		Brand: BrandVO{
			Name:            s.Brand.Name,
			BackgroundColor: s.Brand.BackgroundColor,
			ForegroundColor: s.Brand.ForegroundColor,
		},
	}
}
