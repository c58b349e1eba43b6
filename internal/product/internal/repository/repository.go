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
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ProductRepository interface {
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, categoryID int64, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context, categoryID int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Product, error)
	CountAll(ctx context.Context) (int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	IncrRating(ctx context.Context, sn string, rating int64) error

	FindCategoryBySN(ctx context.Context, sn string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
}

func NewProductRepository(d dao.ProductDAO, cd dao.CategoryDAO, c cache.ProductCache) ProductRepository {
	return &productRepository{
		dao:         d,
		categoryDAO: cd,
		cache:       c,
		logger:      elog.DefaultLogger,
	}
}

type productRepository struct {
	dao         dao.ProductDAO
	categoryDAO dao.CategoryDAO
	cache       cache.ProductCache
	logger      *elog.Component
}

func (r *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	if p, err := r.cache.GetProduct(ctx, sn); err == nil {
		return p, nil
	}
	p, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	res := r.toDomain(p)
	r.fillCategory(ctx, &res, p.CategoryId)
	// 缓存失败不影响主流程
	if er := r.cache.SetProduct(ctx, res); er != nil {
		r.logger.Warn("缓存商品详情失败", elog.String("sn", sn), elog.FieldErr(er))
	}
	return res, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res := r.toDomain(p)
	r.fillCategory(ctx, &res, p.CategoryId)
	return res, nil
}

func (r *productRepository) List(ctx context.Context, categoryID int64, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, categoryID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ctx, ps), nil
}

func (r *productRepository) Count(ctx context.Context, categoryID int64) (int64, error) {
	return r.dao.Count(ctx, categoryID)
}

func (r *productRepository) ListAll(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ctx, ps), nil
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	return r.dao.CountAll(ctx)
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(p))
	if err != nil {
		return 0, err
	}
	r.evict(ctx, p.SN)
	return id, nil
}

func (r *productRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = r.dao.UpdateStatus(ctx, id, status.ToUint8()); err != nil {
		return err
	}
	r.evict(ctx, p.SN)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = r.dao.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, p.SN)
	return nil
}

func (r *productRepository) IncrRating(ctx context.Context, sn string, rating int64) error {
	if err := r.dao.IncrRating(ctx, sn, rating); err != nil {
		return err
	}
	r.evict(ctx, sn)
	return nil
}

func (r *productRepository) FindCategoryBySN(ctx context.Context, sn string) (domain.Category, error) {
	c, err := r.categoryDAO.FindBySN(ctx, sn)
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: c.Id, SN: c.SN, Name: c.Name}, nil
}

func (r *productRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cs, err := r.categoryDAO.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Category) domain.Category {
		return domain.Category{ID: src.Id, SN: src.SN, Name: src.Name}
	}), nil
}

func (r *productRepository) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return r.categoryDAO.Save(ctx, dao.Category{Id: c.ID, SN: c.SN, Name: c.Name})
}

func (r *productRepository) evict(ctx context.Context, sn string) {
	if sn == "" {
		return
	}
	if err := r.cache.DelProduct(ctx, sn); err != nil {
		r.logger.Warn("删除商品缓存失败", elog.String("sn", sn), elog.FieldErr(err))
	}
}

func (r *productRepository) fillCategory(ctx context.Context, p *domain.Product, categoryID int64) {
	if categoryID == 0 {
		return
	}
	cs, err := r.categoryDAO.FindByIDs(ctx, []int64{categoryID})
	if err != nil || len(cs) == 0 {
		return
	}
	p.Category = domain.Category{ID: cs[0].Id, SN: cs[0].SN, Name: cs[0].Name}
}

func (r *productRepository) toDomains(ctx context.Context, ps []dao.Product) []domain.Product {
	categoryIDs := slice.Map(ps, func(idx int, src dao.Product) int64 {
		return src.CategoryId
	})
	categories := make(map[int64]domain.Category, len(categoryIDs))
	cs, err := r.categoryDAO.FindByIDs(ctx, categoryIDs)
	if err != nil {
		r.logger.Warn("查找商品类目失败", elog.FieldErr(err))
	}
	for _, c := range cs {
		categories[c.Id] = domain.Category{ID: c.Id, SN: c.SN, Name: c.Name}
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		res := r.toDomain(src)
		res.Category = categories[src.CategoryId]
		return res
	})
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:           p.Id,
		SN:           p.SN,
		Name:         p.Name,
		Desc:         p.Description,
		Image:        p.Image,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Stock:        p.Stock,
		StockLimit:   p.StockLimit,
		Sales:        p.Sales,
		Attrs:        p.Attrs,
		Category:     domain.Category{ID: p.CategoryId},
		RatingTotal:  p.RatingTotal,
		RatingCount:  p.RatingCount,
		Status:       domain.Status(p.Status),
	}
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:           p.ID,
		SN:           p.SN,
		Name:         p.Name,
		Description:  p.Desc,
		Image:        p.Image,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Stock:        p.Stock,
		StockLimit:   p.StockLimit,
		Attrs:        p.Attrs,
		CategoryId:   p.Category.ID,
		Status:       p.Status.ToUint8(),
	}
}
