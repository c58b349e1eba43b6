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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Add(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		productSN string
		quantity  int64
		wantErr   error
	}{
		{
			name:      "加入成功",
			productSN: "sn-1",
			quantity:  2,
		},
		{
			name:      "数量非法",
			productSN: "sn-1",
			quantity:  0,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "超出库存",
			productSN: "sn-1",
			quantity:  11,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "商品不存在",
			productSN: "sn-404",
			quantity:  1,
			wantErr:   ErrProductUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{}
			svc := NewService(repo, &fakeProductSvc{})
			owner := domain.UserOwner(1)

			c, err := svc.Add(context.Background(), owner, tc.productSN, tc.quantity, "")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.items)
				return
			}
			require.NoError(t, err)
			require.Len(t, c.Items, 1)
			// 快照加入时的价格
			assert.Equal(t, int64(990), c.Items[0].Price)
			assert.Equal(t, tc.quantity, c.Items[0].Quantity)
		})
	}
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{items: []domain.CartItem{{ID: 1, ProductSN: "sn-1", Price: 990, Quantity: 1}}}
	svc := NewService(repo, &fakeProductSvc{})
	owner := domain.UserOwner(1)

	_, err := svc.UpdateQuantity(context.Background(), owner, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	c, err := svc.UpdateQuantity(context.Background(), owner, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Items[0].Quantity)
}

func TestService_Merge(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeProductSvc{})

	from := domain.GuestOwner("cart-sn-abc")
	to := domain.UserOwner(7)
	require.NoError(t, svc.Merge(context.Background(), from, to))
	assert.Equal(t, from, repo.mergedFrom)
	assert.Equal(t, to, repo.mergedTo)
}

type fakeRepo struct {
	items      []domain.CartItem
	mergedFrom domain.Owner
	mergedTo   domain.Owner
}

func (f *fakeRepo) FindCart(_ context.Context, owner domain.Owner) (domain.Cart, error) {
	return domain.Cart{Owner: owner, Items: f.items}, nil
}

func (f *fakeRepo) AddItem(_ context.Context, _ domain.Owner, item domain.CartItem) error {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepo) UpdateQuantity(_ context.Context, _ domain.Owner, itemID int64, quantity int64) error {
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].Quantity = quantity
		}
	}
	return nil
}

func (f *fakeRepo) RemoveItem(_ context.Context, _ domain.Owner, itemID int64) error {
	res := f.items[:0]
	for _, it := range f.items {
		if it.ID != itemID {
			res = append(res, it)
		}
	}
	f.items = res
	return nil
}

func (f *fakeRepo) Clear(_ context.Context, _ domain.Owner) error {
	f.items = nil
	return nil
}

func (f *fakeRepo) Merge(_ context.Context, from, to domain.Owner) error {
	f.mergedFrom = from
	f.mergedTo = to
	return nil
}

type fakeProductSvc struct{}

func (f *fakeProductSvc) FindBySN(_ context.Context, sn string) (product.Product, error) {
	if sn != "sn-1" {
		return product.Product{}, product.ErrProductNotFound
	}
	return product.Product{
		ID:     1,
		SN:     "sn-1",
		Name:   "保温杯",
		Image:  "mug.png",
		Price:  990,
		Stock:  10,
		Status: product.StatusOnShelf,
	}, nil
}

func (f *fakeProductSvc) List(_ context.Context, _ string, _, _ int) ([]product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductSvc) ListCategories(_ context.Context) ([]product.Category, error) {
	return nil, nil
}

func (f *fakeProductSvc) IncrRating(_ context.Context, _ string, _ int64) error {
	return nil
}
