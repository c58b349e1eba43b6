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
	"time"

	"github.com/ecodeclub/emall/internal/coupon/internal/domain"
	"github.com/ecodeclub/emall/internal/coupon/internal/repository"
	"github.com/ecodeclub/emall/internal/pkg/snowflake"
	"golang.org/x/sync/errgroup"
)

// Service 面向买家:下单前校验优惠码并计算优惠金额。
// 校验是无状态的,真正的核销在订单事务里完成。
type Service interface {
	// Validate 校验 code 对 uid 的订单(小计 subtotal,单位分)是否可用,
	// 可用时返回优惠券和优惠金额
	Validate(ctx context.Context, uid int64, code string, subtotal int64) (domain.Coupon, int64, error)
}

type AdminService interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error)
	Delete(ctx context.Context, id int64) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Validate(ctx context.Context, uid int64, code string, subtotal int64) (domain.Coupon, int64, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, 0, err
	}
	usedByUser, err := s.repo.CountUsageByUser(ctx, c.ID, uid)
	if err != nil {
		return domain.Coupon{}, 0, err
	}
	if err = c.CheckUsable(time.Now(), usedByUser, subtotal); err != nil {
		return domain.Coupon{}, 0, err
	}
	return c, c.Discount(subtotal), nil
}

func NewAdminService(repo repository.CouponRepository, gen *snowflake.Generator) AdminService {
	return &adminService{repo: repo, gen: gen}
}

type adminService struct {
	repo repository.CouponRepository
	gen  *snowflake.Generator
}

func (s *adminService) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	if c.Code == "" {
		c.Code = s.gen.GenerateCode()
	}
	return s.repo.Save(ctx, c)
}

func (s *adminService) List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Coupon
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return cs, total, eg.Wait()
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
