// Copyright 2024 ecodeclub
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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/errs"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
	g.POST("/status", ginx.BS[SNReq](h.Status))
	g.POST("/cancel", ginx.BS[SNReq](h.Cancel))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	o, err := h.svc.Create(ctx.Request.Context(), uid, req.Address.toDomain(), req.CouponCode)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, err
	case errors.Is(err, product.ErrInsufficientStock):
		return insufficientStockResult, err
	case errors.Is(err, coupon.ErrCouponNotFound),
		errors.Is(err, coupon.ErrCouponNotUsable),
		errors.Is(err, coupon.ErrCouponExhausted):
		return ginx.Result{Code: errs.CouponNotUsable.Code, Msg: errs.CouponNotUsable.Msg}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Orders: slice.Map(os, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// Status 轮询用的轻量状态查询,不返回明细
func (h *Handler) Status(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: StatusResp{
		Status:        o.Status.ToUint8(),
		PaymentStatus: o.PaymentStatus.ToUint8(),
	}}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if errors.Is(err, domain.ErrOrderNotCancellable) {
		return notCancellableResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
