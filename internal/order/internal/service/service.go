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

	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart          = errors.New("购物车为空")
	ErrProductUnavailable = errors.New("商品已下架或不存在")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// Create 从购物车创建订单:校验商品可售与库存、计算金额、
	// 可选校验并核销优惠券,全部写操作在一个事务内完成。
	// 提交成功后发出下单事件,事件发送失败不影响订单。
	Create(ctx context.Context, uid int64, address domain.Address, couponCode string) (domain.Order, error)
	Detail(ctx context.Context, uid int64, sn string) (domain.Order, error)
	List(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	// Cancel 取消订单并恢复库存,已支付的订单支付状态置为待退款
	Cancel(ctx context.Context, uid int64, sn string) error
	// HandlePaymentResult 依据支付结果更新订单,支付成功同时确认订单
	HandlePaymentResult(ctx context.Context, orderSN, paymentSN, channel string, paid bool) error
	ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	// CloseExpired 逐个取消超时未支付的订单
	CloseExpired(ctx context.Context, orders []domain.Order) error
}

type AdminService interface {
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	Detail(ctx context.Context, id int64) (domain.Order, error)
	// UpdateStatus 校验状态流转合法后更新订单状态
	UpdateStatus(ctx context.Context, id int64, target domain.Status) error
	// Refund 仅记录退款金额与原因,不调用支付网关
	Refund(ctx context.Context, id int64, amount int64, reason string) error
	// DistinctBuyerIDs 返回所有下过单的买家ID,供营销圈选老客户
	DistinctBuyerIDs(ctx context.Context) ([]int64, error)
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	couponSvc coupon.Service,
	cartSvc cart.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		productSvc:  productSvc,
		couponSvc:   couponSvc,
		cartSvc:     cartSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	couponSvc   coupon.Service
	cartSvc     cart.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func (s *service) Create(ctx context.Context, uid int64, address domain.Address, couponCode string) (domain.Order, error) {
	owner := cart.UserOwner(uid)
	c, err := s.cartSvc.Detail(ctx, owner)
	if err != nil {
		return domain.Order{}, err
	}
	if len(c.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items, err := s.buildItems(ctx, c.Items)
	if err != nil {
		return domain.Order{}, err
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		SN:            sn,
		BuyerID:       uid,
		Items:         items,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		Address:       address,
	}
	order.CalculateAmounts()

	var redemption *dao.CouponRedemption
	if couponCode != "" {
		cp, discount, err := s.couponSvc.Validate(ctx, uid, couponCode, order.Subtotal)
		if err != nil {
			return domain.Order{}, err
		}
		order.CouponID = cp.ID
		order.CouponCode = cp.Code
		order.Discount = discount
		// 优惠后重算总价
		order.CalculateAmounts()
		redemption = &dao.CouponRedemption{CouponID: cp.ID, Uid: uid}
	}

	order.ID, err = s.repo.Create(ctx, order, redemption, owner.String())
	if err != nil {
		return domain.Order{}, err
	}

	evt := event.OrderEvent{OrderSN: order.SN, BuyerID: uid, Total: order.Total}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 只记日志,不影响订单
		s.logger.Error("发送下单事件失败",
			elog.FieldErr(er),
			elog.String("order_sn", order.SN))
	}
	return order, nil
}

// buildItems 逐个校验商品在售且库存充足,并以当前价格生成订单项快照。
// 真正防止超卖的是事务中的条件扣减,这里的校验用于尽早失败。
func (s *service) buildItems(ctx context.Context, cartItems []cart.CartItem) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		p, err := s.productSvc.FindBySN(ctx, ci.ProductSN)
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, ErrProductUnavailable
		}
		if err != nil {
			return nil, err
		}
		if p.Status != product.StatusOnShelf {
			return nil, ErrProductUnavailable
		}
		if p.Stock < ci.Quantity {
			return nil, product.ErrInsufficientStock
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			ProductSN: p.SN,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  ci.Quantity,
			Attrs:     ci.Attrs,
		})
	}
	return items, nil
}

func (s *service) Detail(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	return s.repo.FindBySNAndBuyerID(ctx, sn, uid)
}

func (s *service) List(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyerID(ctx, offset, limit, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByBuyerID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Cancel(ctx context.Context, uid int64, sn string) error {
	o, err := s.repo.FindBySNAndBuyerID(ctx, sn, uid)
	if err != nil {
		return err
	}
	return s.cancel(ctx, o)
}

func (s *service) cancel(ctx context.Context, o domain.Order) error {
	if !o.Cancellable() {
		return domain.ErrOrderNotCancellable
	}
	o.Status = domain.StatusCancelled
	if o.PaymentStatus == domain.PaymentStatusPaid {
		o.PaymentStatus = domain.PaymentStatusRefundPending
	}
	return s.repo.Cancel(ctx, o)
}

func (s *service) HandlePaymentResult(ctx context.Context, orderSN, paymentSN, channel string, paid bool) error {
	o, err := s.repo.FindBySN(ctx, orderSN)
	if err != nil {
		return err
	}
	if paid {
		return s.repo.MarkPayment(ctx, orderSN, paymentSN, channel,
			domain.PaymentStatusPaid, domain.StatusConfirmed)
	}
	return s.repo.MarkPayment(ctx, orderSN, paymentSN, channel,
		domain.PaymentStatusFailed, o.Status)
}

func (s *service) ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpired(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpired(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpired(ctx context.Context, orders []domain.Order) error {
	for _, o := range orders {
		if err := s.cancel(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func NewAdminService(repo repository.OrderRepository) AdminService {
	return &adminService{repo: repo}
}

type adminService struct {
	repo repository.OrderRepository
}

func (s *adminService) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *adminService) UpdateStatus(ctx context.Context, id int64, target domain.Status) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !o.Status.CanTransitionTo(target) {
		return domain.ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, target)
}

func (s *adminService) Refund(ctx context.Context, id int64, amount int64, reason string) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !o.Refundable() {
		return domain.ErrRefundNotAllowed
	}
	status := domain.PaymentStatusRefunded
	if amount < o.Total {
		status = domain.PaymentStatusPartiallyRefunded
	}
	return s.repo.UpdateRefund(ctx, id, status, amount, reason)
}

func (s *adminService) DistinctBuyerIDs(ctx context.Context) ([]int64, error) {
	return s.repo.DistinctBuyerIDs(ctx)
}
