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

package sslcommerz

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/go-resty/resty/v2"
)

// PaymentService 对接sslcommerz的session和校验接口,
// 网关没有官方Go SDK,直接走HTTP
type PaymentService struct {
	client     *resty.Client
	storeID    string
	storePass  string
	successURL string
	failURL    string
	cancelURL  string
	ipnURL     string
}

func NewPaymentService(client *resty.Client, storeID, storePass,
	successURL, failURL, cancelURL, ipnURL string) *PaymentService {
	return &PaymentService{
		client:     client,
		storeID:    storeID,
		storePass:  storePass,
		successURL: successURL,
		failURL:    failURL,
		cancelURL:  cancelURL,
		ipnURL:     ipnURL,
	}
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type validationResponse struct {
	Status  string `json:"status"`
	TranID  string `json:"tran_id"`
	Amount  string `json:"amount"`
	ValID   string `json:"val_id"`
	BankTxn string `json:"bank_tran_id"`
}

// InitSession 创建收银台会话,返回买家跳转的网关页面地址
func (s *PaymentService) InitSession(ctx context.Context, pmt domain.Payment) (string, error) {
	var res sessionResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"store_id":     s.storeID,
			"store_passwd": s.storePass,
			"total_amount": centsToDecimal(pmt.Amount),
			"currency":     strings.ToUpper(pmt.Currency),
			"tran_id":      pmt.SN,
			"success_url":  s.successURL,
			"fail_url":     s.failURL,
			"cancel_url":   s.cancelURL,
			"ipn_url":      s.ipnURL,
			"product_name": pmt.OrderSN,
			// session接口的必填字段,具体值由买家在网关页面填写
			"product_category": "general",
			"product_profile":  "general",
			"shipping_method":  "NO",
			"cus_name":         "customer",
			"cus_email":        "customer@example.com",
			"cus_add1":         "N/A",
			"cus_city":         "N/A",
			"cus_country":      "N/A",
			"cus_phone":        "N/A",
		}).
		SetResult(&res).
		Post("/gwprocess/v4/api.php")
	if err != nil {
		return "", fmt.Errorf("创建sslcommerz会话失败: %w", err)
	}
	if resp.IsError() || res.Status != "SUCCESS" {
		return "", fmt.Errorf("创建sslcommerz会话失败: %s", res.FailedReason)
	}
	return res.GatewayPageURL, nil
}

// Validate 用网关回调带来的val_id做服务端二次校验
func (s *PaymentService) Validate(ctx context.Context, valID string) (bool, string, error) {
	var res validationResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"val_id":       valID,
			"store_id":     s.storeID,
			"store_passwd": s.storePass,
			"format":       "json",
		}).
		SetResult(&res).
		Get("/validator/api/validationserverAPI.php")
	if err != nil {
		return false, "", fmt.Errorf("校验sslcommerz交易失败: %w", err)
	}
	if resp.IsError() {
		return false, "", fmt.Errorf("校验sslcommerz交易失败: http %d", resp.StatusCode())
	}
	valid := res.Status == "VALID" || res.Status == "VALIDATED"
	return valid, res.TranID, nil
}

func centsToDecimal(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
