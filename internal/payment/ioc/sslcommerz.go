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
	"time"

	"github.com/ecodeclub/emall/internal/payment/internal/service"
	"github.com/ecodeclub/emall/internal/payment/internal/service/sslcommerz"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
)

func InitSSLCommerzGateway() service.SSLCommerzGateway {
	type Config struct {
		BaseURL    string `yaml:"baseURL"`
		StoreID    string `yaml:"storeID"`
		StorePass  string `yaml:"storePass"`
		SuccessURL string `yaml:"successURL"`
		FailURL    string `yaml:"failURL"`
		CancelURL  string `yaml:"cancelURL"`
		IPNURL     string `yaml:"ipnURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("payment.sslcommerz", &cfg)
	if err != nil {
		panic(err)
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second)
	return sslcommerz.NewPaymentService(client,
		cfg.StoreID, cfg.StorePass,
		cfg.SuccessURL, cfg.FailURL, cfg.CancelURL, cfg.IPNURL)
}
