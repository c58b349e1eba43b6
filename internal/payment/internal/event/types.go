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

package event

import "context"

type Producer interface {
	ProducePaymentEvent(ctx context.Context, evt PaymentEvent) error
}

// PaymentEvent 支付结果,订单模块消费后更新订单状态
type PaymentEvent struct {
	OrderSN   string `json:"orderSN"`
	PaymentSN string `json:"paymentSN"`
	Channel   string `json:"channel"`
	Paid      bool   `json:"paid"`
}

func (PaymentEvent) Topic() string {
	return "payment_events"
}
