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

func TestCart_Subtotal(t *testing.T) {
	testCases := []struct {
		name    string
		cart    Cart
		wantRes int64
	}{
		{
			name:    "空购物车",
			cart:    Cart{},
			wantRes: 0,
		},
		{
			name: "单个条目",
			cart: Cart{Items: []CartItem{
				{Price: 2000, Quantity: 2},
			}},
			wantRes: 4000,
		},
		{
			name: "多个条目",
			cart: Cart{Items: []CartItem{
				{Price: 2000, Quantity: 2},
				{Price: 999, Quantity: 3},
			}},
			wantRes: 6997,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.cart.Subtotal())
		})
	}
}

func TestCart_TotalQuantity(t *testing.T) {
	c := Cart{Items: []CartItem{
		{Price: 2000, Quantity: 2},
		{Price: 999, Quantity: 3},
	}}
	assert.Equal(t, int64(5), c.TotalQuantity())
}

func TestOwner(t *testing.T) {
	assert.Equal(t, "u:123", UserOwner(123).String())
	assert.Equal(t, "abc", GuestOwner("abc").String())
}
