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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
)

type CreateReq struct {
	Address    Address `json:"address"`
	CouponCode string  `json:"couponCode"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type StatusResp struct {
	Status        uint8 `json:"status"`
	PaymentStatus uint8 `json:"paymentStatus"`
}

type ListResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type UpdateStatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type RefundReq struct {
	ID int64 `json:"id"`
	// Amount 退款金额,单位为分
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type Order struct {
	ID             int64       `json:"id,omitempty"`
	SN             string      `json:"sn,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	Subtotal       int64       `json:"subtotal,omitempty"`
	ShippingFee    int64       `json:"shippingFee,omitempty"`
	Tax            int64       `json:"tax,omitempty"`
	Discount       int64       `json:"discount,omitempty"`
	Total          int64       `json:"total,omitempty"`
	CouponCode     string      `json:"couponCode,omitempty"`
	Status         uint8       `json:"status,omitempty"`
	PaymentStatus  uint8       `json:"paymentStatus,omitempty"`
	PaymentChannel string      `json:"paymentChannel,omitempty"`
	PaymentSN      string      `json:"paymentSN,omitempty"`
	Address        Address     `json:"address,omitempty"`
	RefundAmount   int64       `json:"refundAmount,omitempty"`
	RefundReason   string      `json:"refundReason,omitempty"`
	Ctime          int64       `json:"ctime,omitempty"`
}

type OrderItem struct {
	ProductSN string `json:"productSN,omitempty"`
	Name      string `json:"name,omitempty"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price,omitempty"`
	Quantity  int64  `json:"quantity,omitempty"`
	Attrs     string `json:"attrs,omitempty"`
}

type Address struct {
	Recipient string `json:"recipient,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
}

func (a Address) toDomain() domain.Address {
	return domain.Address{
		Recipient: a.Recipient,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
	}
}

func newOrder(o domain.Order) Order {
	return Order{
		ID: o.ID,
		SN: o.SN,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
				Attrs:     src.Attrs,
			}
		}),
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		Tax:            o.Tax,
		Discount:       o.Discount,
		Total:          o.Total,
		CouponCode:     o.CouponCode,
		Status:         o.Status.ToUint8(),
		PaymentStatus:  o.PaymentStatus.ToUint8(),
		PaymentChannel: o.PaymentChannel,
		PaymentSN:      o.PaymentSN,
		Address: Address{
			Recipient: o.Address.Recipient,
			Phone:     o.Address.Phone,
			Street:    o.Address.Street,
			City:      o.Address.City,
			Province:  o.Address.Province,
			Zip:       o.Address.Zip,
			Country:   o.Address.Country,
		},
		RefundAmount: o.RefundAmount,
		RefundReason: o.RefundReason,
		Ctime:        o.Ctime,
	}
}
