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
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/newsletter", ginx.BS[NewsletterReq](h.Newsletter))
	users.POST("/address/save", ginx.BS[AddressSaveReq](h.SaveAddress))
	users.GET("/address/list", ginx.S(h.ListAddresses))
	users.POST("/address/delete", ginx.BS[IDReq](h.DeleteAddress))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.svc.Register(ctx.Request.Context(), req.Email, req.Password, req.Name)
	if errors.Is(err, service.ErrDuplicateEmail) {
		return duplicateEmailResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册即登录
	if err = h.buildSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredential) {
		return invalidCredentialResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	if err = h.buildSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) error {
	role := "member"
	if u.Role.IsAdmin() {
		role = "admin"
	}
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": role,
		}).Build()
	return err
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:    sess.Claims().Uid,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Newsletter(ctx *ginx.Context, req NewsletterReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetNewsletter(ctx.Request.Context(), sess.Claims().Uid, req.Subscribed)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveAddress(ctx *ginx.Context, req AddressSaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveAddress(ctx.Request.Context(), req.Address.toDomain(sess.Claims().Uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *Handler) ListAddresses(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.ListAddresses(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AddressListResp{
			Addresses: slice.Map(as, func(idx int, src domain.Address) Address {
				return newAddress(src)
			}),
		},
	}, nil
}

func (h *Handler) DeleteAddress(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteAddress(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
