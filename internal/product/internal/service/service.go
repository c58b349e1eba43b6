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

	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, categorySN string, offset, limit int) ([]domain.Product, int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	IncrRating(ctx context.Context, sn string, rating int64) error
}

// AdminService 管理后台商品操作
type AdminService interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	Publish(ctx context.Context, id int64) error
	OffShelf(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Detail(ctx context.Context, id int64) (domain.Product, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) List(ctx context.Context, categorySN string, offset, limit int) ([]domain.Product, int64, error) {
	c, err := s.repo.FindCategoryBySN(ctx, categorySN)
	if err != nil {
		return nil, 0, err
	}
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var er error
		ps, er = s.repo.List(ctx, c.ID, offset, limit)
		return er
	})
	eg.Go(func() error {
		var er error
		total, er = s.repo.Count(ctx, c.ID)
		return er
	})
	return ps, total, eg.Wait()
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) IncrRating(ctx context.Context, sn string, rating int64) error {
	return s.repo.IncrRating(ctx, sn, rating)
}

func NewAdminService(repo repository.ProductRepository) AdminService {
	return &adminService{repo: repo}
}

type adminService struct {
	repo repository.ProductRepository
}

func (s *adminService) Save(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *adminService) Publish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOnShelf)
}

func (s *adminService) OffShelf(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOffShelf)
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *adminService) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var er error
		ps, er = s.repo.ListAll(ctx, offset, limit)
		return er
	})
	eg.Go(func() error {
		var er error
		total, er = s.repo.CountAll(ctx)
		return er
	})
	return ps, total, eg.Wait()
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *adminService) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return s.repo.SaveCategory(ctx, c)
}
