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

import "fmt"

// Owner 购物车归属,登录用户为 u:<uid>,匿名用户为客户端持有的购物车SN
type Owner string

func UserOwner(uid int64) Owner {
	return Owner(fmt.Sprintf("u:%d", uid))
}

func GuestOwner(sn string) Owner {
	return Owner(sn)
}

func (o Owner) String() string {
	return string(o)
}

type Cart struct {
	Owner Owner
	Items []CartItem
}

// Subtotal 以加入时单价计算的合计,单位为分
func (c Cart) Subtotal() int64 {
	var res int64
	for _, it := range c.Items {
		res += it.Price * it.Quantity
	}
	return res
}

func (c Cart) TotalQuantity() int64 {
	var res int64
	for _, it := range c.Items {
		res += it.Quantity
	}
	return res
}

type CartItem struct {
	ID        int64
	ProductSN string
	Name      string
	Image     string
	// Price 加入购物车时的单价快照,单位为分
	Price    int64
	Quantity int64
	Attrs    string
}
