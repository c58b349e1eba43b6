//go:build wireinject

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

package ioc

import (
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/marketing"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/payment"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/review"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ,
	InitSnowflakeGenerator, InitEmailService, InitEmailFrom)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		coupon.InitModule,
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		review.InitModule,
		wire.FieldsOf(new(*review.Module), "Hdl", "AdminHdl"),
		marketing.InitModule,
		wire.FieldsOf(new(*marketing.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
