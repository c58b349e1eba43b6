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
	"github.com/ecodeclub/emall/internal/review/internal/domain"
	"github.com/ecodeclub/emall/internal/review/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/review/internal/service"
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
	g := server.Group("/review")
	g.POST("/list", ginx.B[AdminListReq](h.List))
	g.POST("/approve", ginx.B[IDReq](h.Approve))
	g.POST("/reject", ginx.B[IDReq](h.Reject))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReq) (ginx.Result, error) {
	rs, total, err := h.svc.List(ctx.Request.Context(), domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Reviews: slice.Map(rs, func(idx int, src domain.Review) Review {
				return newReview(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Approve(ctx.Request.Context(), req.ID)
	if errors.Is(err, dao.ErrReviewNotFound) {
		return reviewNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.Reject(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
