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

package domain

type ChannelType uint8

func (t ChannelType) ToUint8() uint8 {
	return uint8(t)
}

const (
	ChannelTypeStripe ChannelType = iota + 1
	ChannelTypePayPal
	ChannelTypeSSLCommerz
)

func (t ChannelType) Name() string {
	switch t {
	case ChannelTypeStripe:
		return "stripe"
	case ChannelTypePayPal:
		return "paypal"
	case ChannelTypeSSLCommerz:
		return "sslcommerz"
	default:
		return "unknown"
	}
}

type Channel struct {
	Type ChannelType
	Desc string
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnpaid PaymentStatus = iota + 1
	PaymentStatusProcessing
	PaymentStatusPaidSuccess
	PaymentStatusPaidFailed
	PaymentStatusRefunded
)

type Payment struct {
	ID      int64
	SN      string
	OrderSN string
	BuyerID int64
	Channel ChannelType
	// Amount 支付金额,单位为分
	Amount   int64
	Currency string
	Status   PaymentStatus
	// ProviderTxnID 支付网关侧的交易标识:
	// stripe的intent id、paypal的order id、sslcommerz的val_id
	ProviderTxnID string
	PaidAt        int64
	Ctime         int64
	Utime         int64
}

// StripeIntent 前端确认支付所需的凭据
type StripeIntent struct {
	PaymentSN    string
	IntentID     string
	ClientSecret string
}

// PayPalOrder 前端跳转审批所需的信息
type PayPalOrder struct {
	PaymentSN       string
	ProviderOrderID string
	ApproveURL      string
}

// SSLCommerzSession 网关收银台会话
type SSLCommerzSession struct {
	PaymentSN  string
	GatewayURL string
}
