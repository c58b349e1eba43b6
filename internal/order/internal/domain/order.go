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

import "errors"

var (
	ErrOrderNotCancellable = errors.New("订单当前状态不可取消")
	ErrInvalidTransition   = errors.New("订单状态流转非法")
	ErrRefundNotAllowed    = errors.New("订单当前支付状态不可退款")
)

const (
	// ShippingFee 固定运费,单位为分
	ShippingFee int64 = 5000
	// TaxRatePercent 税率,按小计的百分比
	TaxRatePercent int64 = 10
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending    Status = 1
	StatusConfirmed  Status = 2
	StatusProcessing Status = 3
	StatusShipped    Status = 4
	StatusDelivered  Status = 5
	StatusCancelled  Status = 6
	StatusReturned   Status = 7
)

// transitions 管理后台允许的状态流转
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusReturned},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending           PaymentStatus = 1
	PaymentStatusPaid              PaymentStatus = 2
	PaymentStatusFailed            PaymentStatus = 3
	PaymentStatusRefunded          PaymentStatus = 4
	PaymentStatusPartiallyRefunded PaymentStatus = 5
	PaymentStatusRefundPending     PaymentStatus = 6
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Items   []OrderItem
	// 金额单位均为分
	Subtotal    int64
	ShippingFee int64
	Tax         int64
	Discount    int64
	Total       int64
	// 优惠券快照
	CouponID   int64
	CouponCode string

	Status        Status
	PaymentStatus PaymentStatus
	// PaymentChannel 支付渠道 stripe/paypal/sslcommerz
	PaymentChannel string
	PaymentSN      string

	Address Address

	RefundAmount int64
	RefundReason string

	ClosedAt int64
	Ctime    int64
	Utime    int64
}

// CalculateAmounts 依据订单项计算小计、运费、税费和实付总价。
// 单价以下单时刻的商品价格为准,此后不再随商品价格变化。
func (o *Order) CalculateAmounts() {
	var subtotal int64
	for _, it := range o.Items {
		subtotal += it.Price * it.Quantity
	}
	o.Subtotal = subtotal
	o.ShippingFee = ShippingFee
	o.Tax = subtotal * TaxRatePercent / 100
	o.Total = o.Subtotal + o.ShippingFee + o.Tax - o.Discount
}

// Cancellable 已送达、已取消、已退货的订单不可再取消
func (o Order) Cancellable() bool {
	switch o.Status {
	case StatusDelivered, StatusCancelled, StatusReturned:
		return false
	default:
		return true
	}
}

// Refundable 仅已支付或待退款的订单可以退款
func (o Order) Refundable() bool {
	return o.PaymentStatus == PaymentStatusPaid ||
		o.PaymentStatus == PaymentStatusRefundPending
}

type OrderItem struct {
	ProductID int64
	ProductSN string
	Name      string
	Image     string
	// Price 下单时的单价快照,单位为分
	Price    int64
	Quantity int64
	Attrs    string
}

// Address 收货地址快照,随订单冻结
type Address struct {
	Recipient string
	Phone     string
	Street    string
	City      string
	Province  string
	Zip       string
	Country   string
}
