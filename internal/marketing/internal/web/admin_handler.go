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
	"github.com/ecodeclub/emall/internal/marketing/internal/domain"
	"github.com/ecodeclub/emall/internal/marketing/internal/errs"
	"github.com/ecodeclub/emall/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/marketing/internal/service"
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
	g := server.Group("/campaign")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/send", ginx.B[IDReq](h.Send))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Campaign.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Campaigns: slice.Map(cs, func(idx int, src domain.Campaign) Campaign {
				return newCampaign(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, dao.ErrCampaignNotFound) {
		return campaignNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCampaign(c)}, nil
}

func (h *AdminHandler) Send(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	c, err := h.svc.Send(ctx.Request.Context(), req.ID)
	switch {
	case errors.Is(err, dao.ErrCampaignNotFound):
		return campaignNotFoundResult, err
	case errors.Is(err, domain.ErrCampaignNotSendable),
		errors.Is(err, dao.ErrCampaignNotSendable):
		return ginx.Result{
			Code: errs.CampaignNotSendable.Code,
			Msg:  errs.CampaignNotSendable.Msg,
		}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCampaign(c)}, nil
}
