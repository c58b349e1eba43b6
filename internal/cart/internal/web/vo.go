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
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
)

// DetailReq 匿名用户通过cartSN标识购物车,登录用户忽略该字段
type DetailReq struct {
	CartSN string `json:"cartSN,omitempty"`
}

type AddReq struct {
	CartSN    string `json:"cartSN,omitempty"`
	ProductSN string `json:"productSN"`
	Quantity  int64  `json:"quantity"`
	Attrs     string `json:"attrs,omitempty"`
}

type UpdateReq struct {
	CartSN   string `json:"cartSN,omitempty"`
	ItemID   int64  `json:"itemID"`
	Quantity int64  `json:"quantity"`
}

type RemoveReq struct {
	CartSN string `json:"cartSN,omitempty"`
	ItemID int64  `json:"itemID"`
}

type ClearReq struct {
	CartSN string `json:"cartSN,omitempty"`
}

// MergeReq 登录后把匿名购物车合并进用户购物车
type MergeReq struct {
	CartSN string `json:"cartSN"`
}

type CartResp struct {
	CartSN        string     `json:"cartSN,omitempty"`
	Items         []CartItem `json:"items,omitempty"`
	Subtotal      int64      `json:"subtotal"`
	TotalQuantity int64      `json:"totalQuantity"`
}

type CartItem struct {
	ID        int64  `json:"id"`
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Attrs     string `json:"attrs,omitempty"`
}

func newCartResp(c domain.Cart, cartSN string) CartResp {
	return CartResp{
		CartSN: cartSN,
		Items: slice.Map(c.Items, func(idx int, src domain.CartItem) CartItem {
			return CartItem{
				ID:        src.ID,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
				Attrs:     src.Attrs,
			}
		}),
		Subtotal:      c.Subtotal(),
		TotalQuantity: c.TotalQuantity(),
	}
}
