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

	"github.com/stretchr/testify/assert"
)

func TestOrder_CalculateAmounts(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string

		items    []OrderItem
		discount int64

		wantSubtotal int64
		wantTax      int64
		wantTotal    int64
	}{
		{
			// 2000分 * 2 = 4000,运费5000,税400,合计9400
			name: "无优惠",
			items: []OrderItem{
				{Price: 2000, Quantity: 2},
			},
			wantSubtotal: 4000,
			wantTax:      400,
			wantTotal:    9400,
		},
		{
			name: "多个订单项",
			items: []OrderItem{
				{Price: 1000, Quantity: 3},
				{Price: 2500, Quantity: 2},
			},
			wantSubtotal: 8000,
			wantTax:      800,
			wantTotal:    13800,
		},
		{
			name: "有优惠",
			items: []OrderItem{
				{Price: 10000, Quantity: 1},
			},
			discount:     1000,
			wantSubtotal: 10000,
			wantTax:      1000,
			wantTotal:    15000,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := Order{Items: tc.items, Discount: tc.discount}
			o.CalculateAmounts()
			assert.Equal(t, tc.wantSubtotal, o.Subtotal)
			assert.Equal(t, ShippingFee, o.ShippingFee)
			assert.Equal(t, tc.wantTax, o.Tax)
			assert.Equal(t, tc.wantTotal, o.Total)
			assert.Equal(t, o.Subtotal+o.ShippingFee+o.Tax-o.Discount, o.Total)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		from   Status
		to     Status
		wanted bool
	}{
		{name: "待处理到已确认", from: StatusPending, to: StatusConfirmed, wanted: true},
		{name: "待处理到已取消", from: StatusPending, to: StatusCancelled, wanted: true},
		{name: "待处理到已发货", from: StatusPending, to: StatusShipped, wanted: false},
		{name: "已确认到处理中", from: StatusConfirmed, to: StatusProcessing, wanted: true},
		{name: "处理中到已发货", from: StatusProcessing, to: StatusShipped, wanted: true},
		{name: "已发货到已送达", from: StatusShipped, to: StatusDelivered, wanted: true},
		{name: "已发货到已取消", from: StatusShipped, to: StatusCancelled, wanted: false},
		{name: "已送达到已退货", from: StatusDelivered, to: StatusReturned, wanted: true},
		{name: "已取消不再流转", from: StatusCancelled, to: StatusConfirmed, wanted: false},
		{name: "已退货不再流转", from: StatusReturned, to: StatusPending, wanted: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wanted, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrder_Cancellable(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		status Status
		wanted bool
	}{
		{name: "待处理可取消", status: StatusPending, wanted: true},
		{name: "已确认可取消", status: StatusConfirmed, wanted: true},
		{name: "已发货可取消", status: StatusShipped, wanted: true},
		{name: "已送达不可取消", status: StatusDelivered, wanted: false},
		{name: "已取消不可重复取消", status: StatusCancelled, wanted: false},
		{name: "已退货不可取消", status: StatusReturned, wanted: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wanted, Order{Status: tc.status}.Cancellable())
		})
	}
}

func TestOrder_Refundable(t *testing.T) {
	t.Parallel()
	assert.True(t, Order{PaymentStatus: PaymentStatusPaid}.Refundable())
	assert.True(t, Order{PaymentStatus: PaymentStatusRefundPending}.Refundable())
	assert.False(t, Order{PaymentStatus: PaymentStatusPending}.Refundable())
	assert.False(t, Order{PaymentStatus: PaymentStatusFailed}.Refundable())
	assert.False(t, Order{PaymentStatus: PaymentStatusRefunded}.Refundable())
}
