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

const (
	OrderEventName   = "order_events"
	PaymentEventName = "payment_events"
)

// OrderEvent 下单成功后发出,营销模块消费后发送确认邮件
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	Total   int64  `json:"total"`
}

// PaymentEvent 支付模块发出的支付结果
type PaymentEvent struct {
	OrderSN   string `json:"orderSN"`
	PaymentSN string `json:"paymentSN"`
	Channel   string `json:"channel"`
	// Paid 支付成功为true,失败为false
	Paid bool `json:"paid"`
}
