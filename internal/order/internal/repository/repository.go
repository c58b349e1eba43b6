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
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	// Create 原子地创建订单:写入订单和订单项、扣减库存、
	// 核销优惠券(redemption非空时)、清空购物车(clearOwner非空时)
	Create(ctx context.Context, o domain.Order, redemption *dao.CouponRedemption, clearOwner string) (int64, error)
	// Cancel 恢复库存并落库取消后的订单状态
	Cancel(ctx context.Context, o domain.Order) error

	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByBuyerID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	TotalByBuyerID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Total(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdateRefund(ctx context.Context, id int64, status domain.PaymentStatus, amount int64, reason string) error
	MarkPayment(ctx context.Context, sn, paymentSN, channel string, paymentStatus domain.PaymentStatus, status domain.Status) error
	ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	TotalExpired(ctx context.Context, ctime int64) (int64, error)
	DistinctBuyerIDs(ctx context.Context) ([]int64, error)
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order,
	redemption *dao.CouponRedemption, clearOwner string) (int64, error) {
	items := slice.Map(o.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return r.toItemEntity(src)
	})
	return r.dao.Create(ctx, r.toEntity(o), items, redemption, clearOwner)
}

func (r *orderRepository) Cancel(ctx context.Context, o domain.Order) error {
	items := slice.Map(o.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return r.toItemEntity(src)
	})
	return r.dao.Cancel(ctx, r.toEntity(o), items)
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.fillItems(ctx, o)
}

func (r *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	o, err := r.dao.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.fillItems(ctx, o)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.fillItems(ctx, o)
}

func (r *orderRepository) ListByBuyerID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := r.dao.ListByBuyerID(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) TotalByBuyerID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByBuyerID(ctx, uid)
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *orderRepository) UpdateRefund(ctx context.Context, id int64, status domain.PaymentStatus, amount int64, reason string) error {
	return r.dao.UpdateRefund(ctx, id, status.ToUint8(), amount, reason)
}

func (r *orderRepository) MarkPayment(ctx context.Context, sn, paymentSN, channel string,
	paymentStatus domain.PaymentStatus, status domain.Status) error {
	return r.dao.MarkPayment(ctx, sn, paymentSN, channel, paymentStatus.ToUint8(), status.ToUint8())
}

func (r *orderRepository) ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := r.dao.ListExpired(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	// 关单要恢复库存,必须带上订单项
	res := make([]domain.Order, 0, len(os))
	for _, o := range os {
		do, err := r.fillItems(ctx, o)
		if err != nil {
			return nil, err
		}
		res = append(res, do)
	}
	return res, nil
}

func (r *orderRepository) TotalExpired(ctx context.Context, ctime int64) (int64, error) {
	return r.dao.CountExpired(ctx, ctime)
}

func (r *orderRepository) DistinctBuyerIDs(ctx context.Context) ([]int64, error) {
	return r.dao.DistinctBuyerIDs(ctx)
}

func (r *orderRepository) fillItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindItemsByOrderID(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return r.toItemDomain(src)
	})
	return res, nil
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:             o.Id,
		SN:             o.SN,
		BuyerID:        o.BuyerId,
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		Tax:            o.Tax,
		Discount:       o.Discount,
		Total:          o.Total,
		CouponID:       o.CouponId,
		CouponCode:     o.CouponCode,
		Status:         domain.Status(o.Status),
		PaymentStatus:  domain.PaymentStatus(o.PaymentStatus),
		PaymentChannel: o.PaymentChannel,
		PaymentSN:      o.PaymentSN,
		Address: domain.Address{
			Recipient: o.Recipient,
			Phone:     o.Phone,
			Street:    o.Street,
			City:      o.City,
			Province:  o.Province,
			Zip:       o.Zip,
			Country:   o.Country,
		},
		RefundAmount: o.RefundAmount,
		RefundReason: o.RefundReason,
		ClosedAt:     o.ClosedAt,
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:             o.ID,
		SN:             o.SN,
		BuyerId:        o.BuyerID,
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		Tax:            o.Tax,
		Discount:       o.Discount,
		Total:          o.Total,
		CouponId:       o.CouponID,
		CouponCode:     o.CouponCode,
		Status:         o.Status.ToUint8(),
		PaymentStatus:  o.PaymentStatus.ToUint8(),
		PaymentChannel: o.PaymentChannel,
		PaymentSN:      o.PaymentSN,
		Recipient:      o.Address.Recipient,
		Phone:          o.Address.Phone,
		Street:         o.Address.Street,
		City:           o.Address.City,
		Province:       o.Address.Province,
		Zip:            o.Address.Zip,
		Country:        o.Address.Country,
		RefundAmount:   o.RefundAmount,
		RefundReason:   o.RefundReason,
		ClosedAt:       o.ClosedAt,
	}
}

func (r *orderRepository) toItemDomain(it dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ProductID: it.ProductId,
		ProductSN: it.ProductSN,
		Name:      it.Name,
		Image:     it.Image,
		Price:     it.Price,
		Quantity:  it.Quantity,
		Attrs:     it.Attrs,
	}
}

func (r *orderRepository) toItemEntity(it domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		ProductId: it.ProductID,
		ProductSN: it.ProductSN,
		Name:      it.Name,
		Image:     it.Image,
		Price:     it.Price,
		Quantity:  it.Quantity,
		Attrs:     it.Attrs,
	}
}
