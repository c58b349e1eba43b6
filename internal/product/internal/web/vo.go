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

import "github.com/ecodeclub/emall/internal/product/internal/domain"

type SNReq struct {
	SN string `json:"sn"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	CategorySN string `json:"categorySN"`
	Offset     int    `json:"offset,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type ProductSaveReq struct {
	Product Product `json:"product"`
}

type ProductSaveResp struct {
	ID int64 `json:"id"`
}

type CategorySaveReq struct {
	Category Category `json:"category"`
}

type CategoryListResp struct {
	Categories []Category `json:"categories,omitempty"`
}

type Product struct {
	ID           int64    `json:"id,omitempty"`
	SN           string   `json:"sn"`
	Name         string   `json:"name"`
	Desc         string   `json:"desc"`
	Image        string   `json:"image"`
	Price        int64    `json:"price"`
	ComparePrice int64    `json:"comparePrice,omitempty"`
	Stock        int64    `json:"stock"`
	StockLimit   int64    `json:"stockLimit,omitempty"`
	Sales        int64    `json:"sales,omitempty"`
	Attrs        string   `json:"attrs,omitempty"`
	Category     Category `json:"category,omitempty"`
	Rating       float64  `json:"rating"`
	RatingCount  int64    `json:"ratingCount"`
	Status       uint8    `json:"status,omitempty"`
}

type Category struct {
	ID   int64  `json:"id,omitempty"`
	SN   string `json:"sn"`
	Name string `json:"name"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		SN:           p.SN,
		Name:         p.Name,
		Desc:         p.Desc,
		Image:        p.Image,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Stock:        p.Stock,
		StockLimit:   p.StockLimit,
		Sales:        p.Sales,
		Attrs:        p.Attrs,
		Category:     Category{ID: p.Category.ID, SN: p.Category.SN, Name: p.Category.Name},
		Rating:       p.Rating(),
		RatingCount:  p.RatingCount,
		Status:       p.Status.ToUint8(),
	}
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:           p.ID,
		SN:           p.SN,
		Name:         p.Name,
		Desc:         p.Desc,
		Image:        p.Image,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Stock:        p.Stock,
		StockLimit:   p.StockLimit,
		Attrs:        p.Attrs,
		Category:     domain.Category{ID: p.Category.ID, SN: p.Category.SN, Name: p.Category.Name},
		Status:       domain.Status(p.Status),
	}
}
