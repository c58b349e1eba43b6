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
	// OrderEventName 订单模块发布的下单成功事件
	OrderEventName = "order_events"
	// UserRegistrationEventName 用户模块发布的注册成功事件
	UserRegistrationEventName = "user_registration_events"
)

// OrderEvent 字段和订单模块发布端保持一致
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	Total   int64  `json:"total"`
}

// RegistrationEvent 字段和用户模块发布端保持一致
type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
