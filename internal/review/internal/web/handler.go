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
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/review/internal/domain"
	"github.com/ecodeclub/emall/internal/review/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/review/internal/service"
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

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/review/list", ginx.B[ListReq](h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/review/save", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Submit(ctx.Request.Context(), domain.Review{
		ProductSN: req.ProductSN,
		Uid:       sess.Claims().Uid,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		return invalidRatingResult, err
	case errors.Is(err, product.ErrProductNotFound):
		return productNotFoundResult, err
	case errors.Is(err, dao.ErrDuplicateReview):
		return duplicateReviewResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SubmitResp{ID: id}}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	rs, total, err := h.svc.ListByProduct(ctx.Request.Context(), req.ProductSN, req.Offset, req.Limit)
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
