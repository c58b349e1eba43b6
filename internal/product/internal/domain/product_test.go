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

func TestProduct_Rating(t *testing.T) {
	testCases := []struct {
		name    string
		product Product
		wantRes float64
	}{
		{
			name:    "无评价",
			product: Product{},
			wantRes: 0,
		},
		{
			name:    "单条评价",
			product: Product{RatingTotal: 5, RatingCount: 1},
			wantRes: 5,
		},
		{
			name:    "多条评价取平均",
			product: Product{RatingTotal: 14, RatingCount: 4},
			wantRes: 3.5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.product.Rating())
		})
	}
}

func TestProduct_LowStock(t *testing.T) {
	testCases := []struct {
		name    string
		product Product
		wantRes bool
	}{
		{
			name:    "库存高于阈值",
			product: Product{Stock: 100, StockLimit: 10},
			wantRes: false,
		},
		{
			name:    "库存等于阈值",
			product: Product{Stock: 10, StockLimit: 10},
			wantRes: true,
		},
		{
			name:    "库存为零",
			product: Product{Stock: 0, StockLimit: 10},
			wantRes: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.product.LowStock())
		})
	}
}
