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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[ProductSaveReq](h.Save))
	g.POST("/publish", ginx.B[IDReq](h.Publish))
	g.POST("/off-shelf", ginx.B[IDReq](h.OffShelf))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	server.POST("/category/save", ginx.B[CategorySaveReq](h.SaveCategory))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ProductSaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Product.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ProductSaveResp{ID: id}}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.Publish(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) OffShelf(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.OffShelf(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req CategorySaveReq) (ginx.Result, error) {
	id, err := h.svc.SaveCategory(ctx.Request.Context(), domain.Category{
		ID:   req.Category.ID,
		SN:   req.Category.SN,
		Name: req.Category.Name,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
