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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Discount(t *testing.T) {
	testCases := []struct {
		name     string
		coupon   Coupon
		subtotal int64
		wantRes  int64
	}{
		{
			name:     "百分比不封顶",
			coupon:   Coupon{Type: DiscountTypePercentage, Value: 10},
			subtotal: 10000,
			wantRes:  1000,
		},
		{
			name:     "百分比封顶",
			coupon:   Coupon{Type: DiscountTypePercentage, Value: 20, MaxDiscount: 1500},
			subtotal: 10000,
			wantRes:  1500,
		},
		{
			name:     "固定金额",
			coupon:   Coupon{Type: DiscountTypeFixed, Value: 500},
			subtotal: 10000,
			wantRes:  500,
		},
		{
			name:     "固定金额不超过小计",
			coupon:   Coupon{Type: DiscountTypeFixed, Value: 5000},
			subtotal: 3000,
			wantRes:  3000,
		},
		{
			name:     "未知类型无优惠",
			coupon:   Coupon{},
			subtotal: 3000,
			wantRes:  0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.Discount(tc.subtotal))
		})
	}
}

func TestCoupon_CheckUsable(t *testing.T) {
	now := time.UnixMilli(1715000000000)
	base := Coupon{
		Status:     StatusEnabled,
		ValidFrom:  now.Add(-time.Hour).UnixMilli(),
		ValidUntil: now.Add(time.Hour).UnixMilli(),
	}

	testCases := []struct {
		name       string
		coupon     func() Coupon
		usedByUser int64
		subtotal   int64
		wantErr    error
	}{
		{
			name:     "可用",
			coupon:   func() Coupon { return base },
			subtotal: 1000,
		},
		{
			name: "未启用",
			coupon: func() Coupon {
				c := base
				c.Status = StatusDisabled
				return c
			},
			wantErr: ErrCouponInactive,
		},
		{
			name: "未到生效时间",
			coupon: func() Coupon {
				c := base
				c.ValidFrom = now.Add(time.Minute).UnixMilli()
				return c
			},
			wantErr: ErrCouponNotStarted,
		},
		{
			name: "已过期",
			coupon: func() Coupon {
				c := base
				c.ValidUntil = now.Add(-time.Minute).UnixMilli()
				return c
			},
			wantErr: ErrCouponExpired,
		},
		{
			name: "全局用完",
			coupon: func() Coupon {
				c := base
				c.UsageLimit = 100
				c.UsedCount = 100
				return c
			},
			wantErr: ErrCouponExhausted,
		},
		{
			name: "达到个人上限",
			coupon: func() Coupon {
				c := base
				c.PerUserLimit = 1
				return c
			},
			usedByUser: 1,
			wantErr:    ErrCouponUserLimit,
		},
		{
			name: "未达最低消费",
			coupon: func() Coupon {
				c := base
				c.MinOrderAmount = 5000
				return c
			},
			subtotal: 4999,
			wantErr:  ErrMinOrderNotMet,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coupon().CheckUsable(now, tc.usedByUser, tc.subtotal)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
