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
	"github.com/ecodeclub/emall/internal/review/internal/domain"
	"github.com/ecodeclub/emall/internal/review/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/repository.mock.go ReviewRepository
type ReviewRepository interface {
	Create(ctx context.Context, r domain.Review) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Review, error)
	ListByProduct(ctx context.Context, productSN string, status domain.Status, offset, limit int) ([]domain.Review, error)
	TotalByProduct(ctx context.Context, productSN string, status domain.Status) (int64, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Review, error)
	Total(ctx context.Context, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

func NewReviewRepository(d dao.ReviewDAO) ReviewRepository {
	return &reviewRepository{dao: d}
}

type reviewRepository struct {
	dao dao.ReviewDAO
}

func (r *reviewRepository) Create(ctx context.Context, rv domain.Review) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(rv))
}

func (r *reviewRepository) FindById(ctx context.Context, id int64) (domain.Review, error) {
	rv, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	return r.toDomain(rv), nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productSN string, status domain.Status, offset, limit int) ([]domain.Review, error) {
	rs, err := r.dao.ListByProduct(ctx, productSN, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) TotalByProduct(ctx context.Context, productSN string, status domain.Status) (int64, error) {
	return r.dao.CountByProduct(ctx, productSN, status.ToUint8())
}

func (r *reviewRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Review, error) {
	rs, err := r.dao.List(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) Total(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.Count(ctx, status.ToUint8())
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *reviewRepository) toEntity(rv domain.Review) dao.Review {
	return dao.Review{
		Id:        rv.Id,
		ProductSN: rv.ProductSN,
		Uid:       rv.Uid,
		Rating:    rv.Rating,
		Content:   rv.Content,
		Status:    rv.Status.ToUint8(),
	}
}

func (r *reviewRepository) toDomain(rv dao.Review) domain.Review {
	return domain.Review{
		Id:        rv.Id,
		ProductSN: rv.ProductSN,
		Uid:       rv.Uid,
		Rating:    rv.Rating,
		Content:   rv.Content,
		Status:    domain.Status(rv.Status),
		Ctime:     rv.Ctime,
	}
}
