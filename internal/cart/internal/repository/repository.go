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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/repository/dao"
)

type CartRepository interface {
	FindCart(ctx context.Context, owner domain.Owner) (domain.Cart, error)
	AddItem(ctx context.Context, owner domain.Owner, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, owner domain.Owner, itemID int64, quantity int64) error
	RemoveItem(ctx context.Context, owner domain.Owner, itemID int64) error
	Clear(ctx context.Context, owner domain.Owner) error
	Merge(ctx context.Context, from, to domain.Owner) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

type cartRepository struct {
	dao dao.CartDAO
}

func (r *cartRepository) FindCart(ctx context.Context, owner domain.Owner) (domain.Cart, error) {
	items, err := r.dao.FindByOwner(ctx, owner.String())
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		Owner: owner,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
			return domain.CartItem{
				ID:        src.Id,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
				Attrs:     src.Attrs,
			}
		}),
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, owner domain.Owner, item domain.CartItem) error {
	return r.dao.Upsert(ctx, dao.CartItem{
		Owner:     owner.String(),
		ProductSN: item.ProductSN,
		Name:      item.Name,
		Image:     item.Image,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Attrs:     item.Attrs,
	})
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, owner domain.Owner, itemID int64, quantity int64) error {
	return r.dao.UpdateQuantity(ctx, owner.String(), itemID, quantity)
}

func (r *cartRepository) RemoveItem(ctx context.Context, owner domain.Owner, itemID int64) error {
	return r.dao.Delete(ctx, owner.String(), itemID)
}

func (r *cartRepository) Clear(ctx context.Context, owner domain.Owner) error {
	return r.dao.Clear(ctx, owner.String())
}

func (r *cartRepository) Merge(ctx context.Context, from, to domain.Owner) error {
	return r.dao.Merge(ctx, from.String(), to.String())
}
