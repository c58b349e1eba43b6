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

package paypal

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/plutov/paypal/v4"
)

//go:generate mockgen -source=./paypal.go -package=paypalmocks -destination=./mocks/paypal.mock.go -typed OrderAPI
type OrderAPI interface {
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest,
		payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string,
		captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

type PaymentService struct {
	api       OrderAPI
	returnURL string
	cancelURL string
}

func NewPaymentService(api OrderAPI, returnURL, cancelURL string) *PaymentService {
	return &PaymentService{api: api, returnURL: returnURL, cancelURL: cancelURL}
}

// CreateOrder 创建paypal订单,返回网关订单号和买家审批链接
func (s *PaymentService) CreateOrder(ctx context.Context, pmt domain.Payment) (string, string, error) {
	order, err := s.api.CreateOrder(ctx, paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: pmt.SN,
				CustomID:    pmt.OrderSN,
				Amount: &paypal.PurchaseUnitAmount{
					Currency: strings.ToUpper(pmt.Currency),
					Value:    centsToDecimal(pmt.Amount),
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: s.returnURL,
			CancelURL: s.cancelURL,
		})
	if err != nil {
		return "", "", fmt.Errorf("创建paypal订单失败: %w", err)
	}
	var approveURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
			break
		}
	}
	return order.ID, approveURL, nil
}

// CaptureOrder 买家审批后捕获付款
func (s *PaymentService) CaptureOrder(ctx context.Context, providerOrderID string) (bool, error) {
	resp, err := s.api.CaptureOrder(ctx, providerOrderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return false, fmt.Errorf("捕获paypal订单失败: %w", err)
	}
	return resp.Status == "COMPLETED", nil
}

// centsToDecimal paypal金额是字符串表示的小数
func centsToDecimal(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
