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
	"github.com/ecodeclub/emall/internal/payment/internal/service"
	"github.com/ecodeclub/emall/internal/payment/internal/service/stripe"
	"github.com/gotomicro/ego/core/econf"
	stripeclient "github.com/stripe/stripe-go/v79/client"
)

func InitStripeGateway() service.StripeGateway {
	type Config struct {
		SecretKey string `yaml:"secretKey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("payment.stripe", &cfg)
	if err != nil {
		panic(err)
	}
	sc := &stripeclient.API{}
	sc.Init(cfg.SecretKey, nil)
	return stripe.NewPaymentService(sc.PaymentIntents)
}
