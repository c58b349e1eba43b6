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
	"errors"
	"fmt"

	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/repository"
	"github.com/ecodeclub/emall/internal/product"
)

var (
	ErrInvalidQuantity    = errors.New("商品数量非法")
	ErrProductUnavailable = errors.New("商品不存在或已下架")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	Detail(ctx context.Context, owner domain.Owner) (domain.Cart, error)
	Add(ctx context.Context, owner domain.Owner, productSN string, quantity int64, attrs string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, owner domain.Owner, itemID int64, quantity int64) (domain.Cart, error)
	Remove(ctx context.Context, owner domain.Owner, itemID int64) (domain.Cart, error)
	Clear(ctx context.Context, owner domain.Owner) error
	Merge(ctx context.Context, from, to domain.Owner) error
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) Detail(ctx context.Context, owner domain.Owner) (domain.Cart, error) {
	return s.repo.FindCart(ctx, owner)
}

func (s *service) Add(ctx context.Context, owner domain.Owner, productSN string, quantity int64, attrs string) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	p, err := s.productSvc.FindBySN(ctx, productSN)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", ErrProductUnavailable, err)
	}
	if quantity > p.Stock {
		return domain.Cart{}, ErrInvalidQuantity
	}
	err = s.repo.AddItem(ctx, owner, domain.CartItem{
		ProductSN: p.SN,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  quantity,
		Attrs:     attrs,
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindCart(ctx, owner)
}

func (s *service) UpdateQuantity(ctx context.Context, owner domain.Owner, itemID int64, quantity int64) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	if err := s.repo.UpdateQuantity(ctx, owner, itemID, quantity); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindCart(ctx, owner)
}

func (s *service) Remove(ctx context.Context, owner domain.Owner, itemID int64) (domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, owner, itemID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindCart(ctx, owner)
}

func (s *service) Clear(ctx context.Context, owner domain.Owner) error {
	return s.repo.Clear(ctx, owner)
}

func (s *service) Merge(ctx context.Context, from, to domain.Owner) error {
	return s.repo.Merge(ctx, from, to)
}
