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

package payment

import (
	"sync"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/payment/internal/event"
	"github.com/ecodeclub/emall/internal/payment/internal/repository"
	"github.com/ecodeclub/emall/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/payment/internal/service"
	"github.com/ecodeclub/emall/internal/payment/internal/web"
	"github.com/ecodeclub/emall/internal/payment/ioc"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, orderModule *order.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		InitProducer,
		InitCurrency,
		ioc.InitStripeGateway,
		ioc.InitPayPalGateway,
		ioc.InitSSLCommerzGateway,
		sequencenumber.NewGenerator,
		repository.NewPaymentRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitProducer(q mq.MQ) event.Producer {
	producer, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func InitCurrency() string {
	currency := econf.GetString("payment.currency")
	if currency == "" {
		currency = "usd"
	}
	return currency
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}
