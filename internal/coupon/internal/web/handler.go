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

	"github.com/ecodeclub/emall/internal/coupon/internal/domain"
	"github.com/ecodeclub/emall/internal/coupon/internal/errs"
	"github.com/ecodeclub/emall/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/coupon/internal/service"
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
	server.POST("/coupon/validate", ginx.BS[ValidateReq](h.Validate))
}

func (h *Handler) Validate(ctx *ginx.Context, req ValidateReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	c, discount, err := h.svc.Validate(ctx.Request.Context(), uid, req.Code, req.Subtotal)
	if errors.Is(err, dao.ErrCouponNotFound) {
		return couponNotFoundResult, err
	}
	// 不可用原因直接透出给买家
	if errors.Is(err, domain.ErrCouponNotUsable) {
		return ginx.Result{Code: errs.CouponNotUsable.Code, Msg: err.Error()}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ValidateResp{Coupon: newCoupon(c), Discount: discount}}, nil
}
