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
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/ecodeclub/emall/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/payment/internal/service"
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

// PublicRoutes sslcommerz的IPN由网关服务器回调,不带会话
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/payment/sslcommerz/ipn", ginx.B[IPNReq](h.SSLCommerzIPN))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.GET("/channels", ginx.W(h.Channels))
	g.POST("/stripe/create-intent", ginx.BS[OrderSNReq](h.CreateStripeIntent))
	g.POST("/stripe/confirm", ginx.BS[PaymentSNReq](h.ConfirmStripeIntent))
	g.POST("/paypal/create-order", ginx.BS[OrderSNReq](h.CreatePayPalOrder))
	g.POST("/paypal/capture", ginx.BS[PaymentSNReq](h.CapturePayPalOrder))
	g.POST("/sslcommerz/init", ginx.BS[OrderSNReq](h.InitSSLCommerz))
}

func (h *Handler) Channels(ctx *ginx.Context) (ginx.Result, error) {
	channels := h.svc.Channels(ctx.Request.Context())
	return ginx.Result{
		Data: ChannelsResp{
			Channels: slice.Map(channels, func(idx int, src domain.Channel) Channel {
				return Channel{
					Type: src.Type.ToUint8(),
					Name: src.Type.Name(),
					Desc: src.Desc,
				}
			}),
		},
	}, nil
}

func (h *Handler) CreateStripeIntent(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	intent, err := h.svc.CreateStripeIntent(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if errors.Is(err, order.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StripeIntentResp{
			PaymentSN:    intent.PaymentSN,
			ClientSecret: intent.ClientSecret,
		},
	}, nil
}

func (h *Handler) ConfirmStripeIntent(ctx *ginx.Context, req PaymentSNReq, sess session.Session) (ginx.Result, error) {
	status, err := h.svc.ConfirmStripeIntent(ctx.Request.Context(), sess.Claims().Uid, req.PaymentSN)
	if errors.Is(err, dao.ErrPaymentNotFound) {
		return paymentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ConfirmResp{Paid: status == domain.PaymentStatusPaidSuccess},
	}, nil
}

func (h *Handler) CreatePayPalOrder(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	po, err := h.svc.CreatePayPalOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if errors.Is(err, order.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PayPalOrderResp{
			PaymentSN:  po.PaymentSN,
			ApproveURL: po.ApproveURL,
		},
	}, nil
}

func (h *Handler) CapturePayPalOrder(ctx *ginx.Context, req PaymentSNReq, sess session.Session) (ginx.Result, error) {
	status, err := h.svc.CapturePayPalOrder(ctx.Request.Context(), sess.Claims().Uid, req.PaymentSN)
	if errors.Is(err, dao.ErrPaymentNotFound) {
		return paymentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ConfirmResp{Paid: status == domain.PaymentStatusPaidSuccess},
	}, nil
}

func (h *Handler) InitSSLCommerz(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.InitSSLCommerzSession(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if errors.Is(err, order.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SSLCommerzResp{
			PaymentSN:  res.PaymentSN,
			GatewayURL: res.GatewayURL,
		},
	}, nil
}

func (h *Handler) SSLCommerzIPN(ctx *ginx.Context, req IPNReq) (ginx.Result, error) {
	err := h.svc.ValidateSSLCommerzTxn(ctx.Request.Context(), req.ValID)
	if errors.Is(err, dao.ErrPaymentNotFound) {
		return paymentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
