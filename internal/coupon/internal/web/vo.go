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
	"github.com/ecodeclub/emall/internal/coupon/internal/domain"
)

type ValidateReq struct {
	Code string `json:"code"`
	// Subtotal 订单小计,单位分
	Subtotal int64 `json:"subtotal"`
}

type ValidateResp struct {
	Coupon   Coupon `json:"coupon"`
	Discount int64  `json:"discount"`
}

type Coupon struct {
	ID             int64  `json:"id,omitempty"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name,omitempty"`
	Type           uint8  `json:"type,omitempty"`
	Value          int64  `json:"value,omitempty"`
	MaxDiscount    int64  `json:"maxDiscount,omitempty"`
	MinOrderAmount int64  `json:"minOrderAmount,omitempty"`
	UsageLimit     int64  `json:"usageLimit,omitempty"`
	PerUserLimit   int64  `json:"perUserLimit,omitempty"`
	UsedCount      int64  `json:"usedCount,omitempty"`
	ValidFrom      int64  `json:"validFrom,omitempty"`
	ValidUntil     int64  `json:"validUntil,omitempty"`
	Status         uint8  `json:"status,omitempty"`
}

func newCoupon(c domain.Coupon) Coupon {
	return Coupon{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Type:           c.Type.ToUint8(),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinOrderAmount: c.MinOrderAmount,
		UsageLimit:     c.UsageLimit,
		PerUserLimit:   c.PerUserLimit,
		UsedCount:      c.UsedCount,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		Status:         c.Status.ToUint8(),
	}
}

func (c Coupon) toDomain() domain.Coupon {
	return domain.Coupon{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Type:           domain.DiscountType(c.Type),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinOrderAmount: c.MinOrderAmount,
		UsageLimit:     c.UsageLimit,
		PerUserLimit:   c.PerUserLimit,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		Status:         domain.Status(c.Status),
	}
}

type SaveReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total   int64    `json:"total"`
	Coupons []Coupon `json:"coupons"`
}
