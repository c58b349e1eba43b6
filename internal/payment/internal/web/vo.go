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

package web

type OrderSNReq struct {
	OrderSN string `json:"orderSN"`
}

type PaymentSNReq struct {
	PaymentSN string `json:"paymentSN"`
}

// IPNReq sslcommerz回调是表单编码
type IPNReq struct {
	ValID  string `form:"val_id" json:"val_id"`
	TranID string `form:"tran_id" json:"tran_id"`
	Status string `form:"status" json:"status"`
}

type Channel struct {
	Type uint8  `json:"type"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type ChannelsResp struct {
	Channels []Channel `json:"channels"`
}

type StripeIntentResp struct {
	PaymentSN    string `json:"paymentSN"`
	ClientSecret string `json:"clientSecret"`
}

type ConfirmResp struct {
	Paid bool `json:"paid"`
}

type PayPalOrderResp struct {
	PaymentSN  string `json:"paymentSN"`
	ApproveURL string `json:"approveURL"`
}

type SSLCommerzResp struct {
	PaymentSN  string `json:"paymentSN"`
	GatewayURL string `json:"gatewayURL"`
}
