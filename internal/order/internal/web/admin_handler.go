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
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/update-status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/refund", ginx.B[RefundReq](h.Refund))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.ID, domain.Status(req.Status))
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if errors.Is(err, domain.ErrInvalidTransition) {
		return invalidTransitionResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Refund(ctx *ginx.Context, req RefundReq) (ginx.Result, error) {
	err := h.svc.Refund(ctx.Request.Context(), req.ID, req.Amount, req.Reason)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if errors.Is(err, domain.ErrRefundNotAllowed) {
		return refundNotAllowedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
