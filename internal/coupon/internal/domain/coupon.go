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

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCouponNotUsable 所有不可用原因的基错误,调用方可以统一用它判定
	ErrCouponNotUsable = errors.New("优惠券不可用")

	ErrCouponInactive   = fmt.Errorf("%w: 未启用", ErrCouponNotUsable)
	ErrCouponNotStarted = fmt.Errorf("%w: 未到生效时间", ErrCouponNotUsable)
	ErrCouponExpired    = fmt.Errorf("%w: 已过期", ErrCouponNotUsable)
	ErrCouponExhausted  = fmt.Errorf("%w: 已被领完", ErrCouponNotUsable)
	ErrCouponUserLimit  = fmt.Errorf("%w: 已达到个人使用上限", ErrCouponNotUsable)
	ErrMinOrderNotMet   = fmt.Errorf("%w: 未达到最低消费金额", ErrCouponNotUsable)
)

type DiscountType uint8

func (t DiscountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// DiscountTypePercentage Value为百分比,如10表示九折
	DiscountTypePercentage DiscountType = 1
	// DiscountTypeFixed Value为固定金额,单位为分
	DiscountTypeFixed DiscountType = 2
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusDisabled Status = 1 // 停用
	StatusEnabled  Status = 2 // 启用
)

type Coupon struct {
	ID    int64
	Code  string
	Name  string
	Type  DiscountType
	Value int64
	// MaxDiscount 百分比折扣的最高优惠金额,0表示不封顶;单位为分
	MaxDiscount int64
	// MinOrderAmount 使用门槛,0表示无门槛;单位为分
	MinOrderAmount int64
	// UsageLimit 全局使用上限,0表示不限
	UsageLimit int64
	// PerUserLimit 单个用户使用上限,0表示不限
	PerUserLimit int64
	UsedCount    int64
	ValidFrom    int64
	ValidUntil   int64
	Status       Status
}

// CheckUsable 校验在当前时间、当前用户已用次数、订单小计下是否可用
func (c Coupon) CheckUsable(now time.Time, usedByUser int64, subtotal int64) error {
	if c.Status != StatusEnabled {
		return ErrCouponInactive
	}
	nowMilli := now.UnixMilli()
	if c.ValidFrom > 0 && nowMilli < c.ValidFrom {
		return ErrCouponNotStarted
	}
	if c.ValidUntil > 0 && nowMilli > c.ValidUntil {
		return ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return ErrCouponExhausted
	}
	if c.PerUserLimit > 0 && usedByUser >= c.PerUserLimit {
		return ErrCouponUserLimit
	}
	if c.MinOrderAmount > 0 && subtotal < c.MinOrderAmount {
		return ErrMinOrderNotMet
	}
	return nil
}

// Discount 按订单小计计算优惠金额,单位为分
func (c Coupon) Discount(subtotal int64) int64 {
	var res int64
	switch c.Type {
	case DiscountTypePercentage:
		res = subtotal * c.Value / 100
		if c.MaxDiscount > 0 && res > c.MaxDiscount {
			res = c.MaxDiscount
		}
	case DiscountTypeFixed:
		res = c.Value
	}
	if res > subtotal {
		res = subtotal
	}
	return res
}
