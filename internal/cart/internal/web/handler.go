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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 匿名用户也可以使用购物车
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/add", ginx.B[AddReq](h.Add))
	g.POST("/update", ginx.B[UpdateReq](h.Update))
	g.POST("/remove", ginx.B[RemoveReq](h.Remove))
	g.POST("/clear", ginx.B[ClearReq](h.Clear))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/cart/merge", ginx.BS[MergeReq](h.Merge))
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	owner, cartSN := h.resolveOwner(ctx, req.CartSN)
	c, err := h.svc.Detail(ctx.Request.Context(), owner)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCartResp(c, cartSN)}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req AddReq) (ginx.Result, error) {
	owner, cartSN := h.resolveOwner(ctx, req.CartSN)
	c, err := h.svc.Add(ctx.Request.Context(), owner, req.ProductSN, req.Quantity, req.Attrs)
	if errors.Is(err, service.ErrInvalidQuantity) {
		return invalidQuantityResult, err
	}
	if errors.Is(err, service.ErrProductUnavailable) {
		return productInvalidResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCartResp(c, cartSN)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq) (ginx.Result, error) {
	owner, cartSN := h.resolveOwner(ctx, req.CartSN)
	c, err := h.svc.UpdateQuantity(ctx.Request.Context(), owner, req.ItemID, req.Quantity)
	if errors.Is(err, service.ErrInvalidQuantity) {
		return invalidQuantityResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCartResp(c, cartSN)}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveReq) (ginx.Result, error) {
	owner, cartSN := h.resolveOwner(ctx, req.CartSN)
	c, err := h.svc.Remove(ctx.Request.Context(), owner, req.ItemID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCartResp(c, cartSN)}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, req ClearReq) (ginx.Result, error) {
	owner, _ := h.resolveOwner(ctx, req.CartSN)
	if err := h.svc.Clear(ctx.Request.Context(), owner); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Merge(ctx *ginx.Context, req MergeReq, sess session.Session) (ginx.Result, error) {
	if req.CartSN == "" {
		return ginx.Result{}, nil
	}
	uid := sess.Claims().Uid
	err := h.svc.Merge(ctx.Request.Context(), domain.GuestOwner(req.CartSN), domain.UserOwner(uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// resolveOwner 已登录用户使用uid,匿名用户使用客户端携带的cartSN,
// 首次访问时生成新的cartSN由客户端保存
func (h *Handler) resolveOwner(ctx *ginx.Context, cartSN string) (domain.Owner, string) {
	sess, err := session.Get(ctx)
	if err == nil {
		return domain.UserOwner(sess.Claims().Uid), ""
	}
	if cartSN == "" {
		cartSN = shortuuid.New()
	}
	return domain.GuestOwner(cartSN), cartSN
}
