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
	paypalsvc "github.com/ecodeclub/emall/internal/payment/internal/service/paypal"

	"github.com/ecodeclub/emall/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/econf"
	"github.com/plutov/paypal/v4"
)

func InitPayPalGateway() service.PayPalGateway {
	type Config struct {
		ClientID  string `yaml:"clientID"`
		Secret    string `yaml:"secret"`
		Live      bool   `yaml:"live"`
		ReturnURL string `yaml:"returnURL"`
		CancelURL string `yaml:"cancelURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("payment.paypal", &cfg)
	if err != nil {
		panic(err)
	}
	base := paypal.APIBaseSandBox
	if cfg.Live {
		base = paypal.APIBaseLive
	}
	client, err := paypal.NewClient(cfg.ClientID, cfg.Secret, base)
	if err != nil {
		panic(err)
	}
	return paypalsvc.NewPaymentService(client, cfg.ReturnURL, cfg.CancelURL)
}
