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
	"github.com/ecodeclub/emall/internal/coupon/internal/domain"
	"github.com/ecodeclub/emall/internal/coupon/internal/repository/dao"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Total(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountUsageByUser(ctx context.Context, couponID, uid int64) (int64, error)
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *couponRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *couponRepository) CountUsageByUser(ctx context.Context, couponID, uid int64) (int64, error) {
	return r.dao.CountUsageByUser(ctx, couponID, uid)
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:             c.Id,
		Code:           c.Code,
		Name:           c.Name,
		Type:           domain.DiscountType(c.Type),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinOrderAmount: c.MinOrderAmount,
		UsageLimit:     c.UsageLimit,
		PerUserLimit:   c.PerUserLimit,
		UsedCount:      c.UsedCount,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		Status:         domain.Status(c.Status),
	}
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Type:           c.Type.ToUint8(),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinOrderAmount: c.MinOrderAmount,
		UsageLimit:     c.UsageLimit,
		PerUserLimit:   c.PerUserLimit,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		Status:         c.Status.ToUint8(),
	}
}
