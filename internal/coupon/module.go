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

package coupon

import (
	"github.com/ecodeclub/emall/internal/coupon/internal/domain"
	"github.com/ecodeclub/emall/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/coupon/internal/service"
	"github.com/ecodeclub/emall/internal/coupon/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	AdminService = service.AdminService
	Coupon       = domain.Coupon
	DiscountType = domain.DiscountType
	Status       = domain.Status
	// DAO 供订单模块在下单事务中核销优惠券
	DAO = dao.CouponDAO
)

const (
	DiscountTypePercentage = domain.DiscountTypePercentage
	DiscountTypeFixed      = domain.DiscountTypeFixed
	StatusDisabled         = domain.StatusDisabled
	StatusEnabled          = domain.StatusEnabled
)

var (
	ErrCouponNotFound  = dao.ErrCouponNotFound
	ErrCouponExhausted = dao.ErrCouponExhausted
	ErrCouponNotUsable = domain.ErrCouponNotUsable
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	AdminSvc AdminService
	DAO      DAO
}
