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

	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/review/internal/domain"
	"github.com/ecodeclub/emall/internal/review/internal/event"
	"github.com/ecodeclub/emall/internal/review/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	// Submit 提交评价,落库后等待审核。一个用户对一个商品只能评价一次
	Submit(ctx context.Context, r domain.Review) (int64, error)
	// ListByProduct 商品详情页的评价列表,只返回审核通过的
	ListByProduct(ctx context.Context, productSN string, offset, limit int) ([]domain.Review, int64, error)
}

type AdminService interface {
	// List 状态为0表示不过滤
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Review, int64, error)
	// Approve 审核通过并发出评价事件,商品模块以此维护评分聚合
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

func NewService(repo repository.ReviewRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

type service struct {
	repo       repository.ReviewRepository
	productSvc product.Service
}

func (s *service) Submit(ctx context.Context, r domain.Review) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	// 商品必须存在
	if _, err := s.productSvc.FindBySN(ctx, r.ProductSN); err != nil {
		return 0, err
	}
	r.Status = domain.StatusPending
	return s.repo.Create(ctx, r)
}

func (s *service) ListByProduct(ctx context.Context, productSN string, offset, limit int) ([]domain.Review, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Review
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.ListByProduct(ctx, productSN, domain.StatusApproved, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByProduct(ctx, productSN, domain.StatusApproved)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

func NewAdminService(repo repository.ReviewRepository, producer event.ReviewEventProducer) AdminService {
	return &adminService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type adminService struct {
	repo     repository.ReviewRepository
	producer event.ReviewEventProducer
	logger   *elog.Component
}

func (s *adminService) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Review, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Review
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

func (s *adminService) Approve(ctx context.Context, id int64) error {
	r, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.UpdateStatus(ctx, id, domain.StatusApproved)
	if err != nil {
		return err
	}
	evt := event.ReviewEvent{ProductSN: r.ProductSN, Rating: r.Rating}
	if e := s.producer.Produce(ctx, evt); e != nil {
		s.logger.Error("发送评价事件失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return nil
}

func (s *adminService) Reject(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusRejected)
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
