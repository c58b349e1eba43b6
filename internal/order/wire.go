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

//go:build wireinject

package order

import (
	"context"
	"sync"

	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ,
	productModule *product.Module,
	couponModule *coupon.Module,
	cartModule *cart.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		sequencenumber.NewGenerator,
		InitProducer,
		repository.NewOrderRepository,
		service.NewService,
		service.NewAdminService,
		web.NewHandler,
		web.NewAdminHandler,
		InitConsumer,
		wire.FieldsOf(new(*product.Module), "DAO", "Svc"),
		wire.FieldsOf(new(*coupon.Module), "DAO", "Svc"),
		wire.FieldsOf(new(*cart.Module), "DAO", "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitProducer(q mq.MQ) event.OrderEventProducer {
	producer, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func InitConsumer(svc service.Service, q mq.MQ) *event.PaymentEventConsumer {
	consumer, err := event.NewPaymentEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component,
	productDAO product.DAO,
	couponDAO coupon.DAO,
	cartDAO cart.DAO) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db, productDAO, couponDAO, cartDAO)
}
