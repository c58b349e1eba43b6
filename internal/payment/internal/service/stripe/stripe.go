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

package stripe

import (
	"context"
	"fmt"

	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/stripe/stripe-go/v79"
)

//go:generate mockgen -source=./stripe.go -package=stripemocks -destination=./mocks/stripe.mock.go -typed IntentAPI
type IntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type PaymentService struct {
	api IntentAPI

	intentStatusToPaymentStatus map[stripe.PaymentIntentStatus]domain.PaymentStatus
}

func NewPaymentService(api IntentAPI) *PaymentService {
	return &PaymentService{
		api: api,
		intentStatusToPaymentStatus: map[stripe.PaymentIntentStatus]domain.PaymentStatus{
			stripe.PaymentIntentStatusSucceeded:            domain.PaymentStatusPaidSuccess,
			stripe.PaymentIntentStatusProcessing:           domain.PaymentStatusProcessing,
			stripe.PaymentIntentStatusRequiresAction:       domain.PaymentStatusProcessing,
			stripe.PaymentIntentStatusRequiresConfirmation:  domain.PaymentStatusUnpaid,
			stripe.PaymentIntentStatusRequiresPaymentMethod: domain.PaymentStatusUnpaid,
			stripe.PaymentIntentStatusRequiresCapture:       domain.PaymentStatusProcessing,
			stripe.PaymentIntentStatusCanceled:              domain.PaymentStatusPaidFailed,
		},
	}
}

// CreateIntent 创建支付意图,返回intent id和前端确认用的client secret
func (s *PaymentService) CreateIntent(ctx context.Context, pmt domain.Payment) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(pmt.Amount),
		Currency: stripe.String(pmt.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_sn", pmt.OrderSN)
	params.AddMetadata("payment_sn", pmt.SN)
	intent, err := s.api.New(params)
	if err != nil {
		return "", "", fmt.Errorf("创建stripe支付意图失败: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}

// QueryIntent 查询支付意图的当前状态
func (s *PaymentService) QueryIntent(ctx context.Context, intentID string) (domain.PaymentStatus, error) {
	intent, err := s.api.Get(intentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return 0, fmt.Errorf("查询stripe支付意图失败: %w", err)
	}
	status, ok := s.intentStatusToPaymentStatus[intent.Status]
	if !ok {
		return 0, fmt.Errorf("未知的stripe支付意图状态: %s", intent.Status)
	}
	return status, nil
}
