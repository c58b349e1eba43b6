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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

type Product struct {
	ID           int64
	SN           string
	Name         string
	Desc         string
	Image        string
	Price        int64
	ComparePrice int64
	Stock        int64
	// StockLimit 低库存预警阈值
	StockLimit int64
	Sales      int64
	// Attrs 销售属性，JSON格式
	Attrs       string
	Category    Category
	RatingTotal int64
	RatingCount int64
	Status      Status
}

// Rating 平均评分，无评价时为0
func (p Product) Rating() float64 {
	if p.RatingCount == 0 {
		return 0
	}
	return float64(p.RatingTotal) / float64(p.RatingCount)
}

// LowStock 库存是否低于预警阈值
func (p Product) LowStock() bool {
	return p.Stock <= p.StockLimit
}

type Category struct {
	ID   int64
	SN   string
	Name string
}
