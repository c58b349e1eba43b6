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

	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUID = int64(2024)

func newTestService(repo *fakeRepo, products map[string]product.Product,
	cartItems []cart.CartItem, cp coupon.Coupon) (Service, *fakeProducer) {
	producer := &fakeProducer{}
	svc := NewService(repo,
		&fakeProductSvc{products: products},
		&fakeCouponSvc{coupon: cp},
		&fakeCartSvc{items: cartItems},
		sequencenumber.NewGenerator(),
		producer)
	return svc, producer
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	products := map[string]product.Product{
		"SKU001": {ID: 1, SN: "SKU001", Name: "会员月卡", Price: 2000, Stock: 10, Status: product.StatusOnShelf},
		"SKU002": {ID: 2, SN: "SKU002", Name: "会员年卡", Price: 10000, Stock: 1, Status: product.StatusOnShelf},
		"SKU003": {ID: 3, SN: "SKU003", Name: "已下架商品", Price: 500, Stock: 10, Status: product.StatusOffShelf},
	}

	t.Run("下单成功_金额快照正确", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc, producer := newTestService(repo, products, []cart.CartItem{
			{ProductSN: "SKU001", Quantity: 2},
		}, coupon.Coupon{})

		o, err := svc.Create(context.Background(), testUID, domain.Address{Recipient: "张三"}, "")
		require.NoError(t, err)
		assert.NotEmpty(t, o.SN)
		assert.Equal(t, int64(4000), o.Subtotal)
		assert.Equal(t, domain.ShippingFee, o.ShippingFee)
		assert.Equal(t, int64(400), o.Tax)
		assert.Equal(t, int64(9400), o.Total)
		assert.Equal(t, domain.StatusPending, o.Status)
		assert.Equal(t, domain.PaymentStatusPending, o.PaymentStatus)
		// 下单事务要清空买家购物车
		assert.Equal(t, cart.UserOwner(testUID).String(), repo.createdClearOwner)
		assert.Nil(t, repo.createdRedemption)
		// 下单成功后发出事件
		require.Len(t, producer.events, 1)
		assert.Equal(t, o.SN, producer.events[0].OrderSN)
	})

	t.Run("使用优惠券_核销进入下单事务", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc, _ := newTestService(repo, products, []cart.CartItem{
			{ProductSN: "SKU002", Quantity: 1},
		}, coupon.Coupon{
			ID:     7,
			Code:   "SAVE10",
			Type:   coupon.DiscountTypePercentage,
			Value:  10,
			Status: coupon.StatusEnabled,
		})

		o, err := svc.Create(context.Background(), testUID, domain.Address{}, "SAVE10")
		require.NoError(t, err)
		assert.Equal(t, int64(10000), o.Subtotal)
		assert.Equal(t, int64(1000), o.Discount)
		assert.Equal(t, int64(15000), o.Total)
		assert.Equal(t, "SAVE10", o.CouponCode)
		require.NotNil(t, repo.createdRedemption)
		assert.Equal(t, int64(7), repo.createdRedemption.CouponID)
		assert.Equal(t, testUID, repo.createdRedemption.Uid)
	})

	t.Run("购物车为空", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc, _ := newTestService(repo, products, nil, coupon.Coupon{})
		_, err := svc.Create(context.Background(), testUID, domain.Address{}, "")
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("商品已下架", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc, _ := newTestService(repo, products, []cart.CartItem{
			{ProductSN: "SKU003", Quantity: 1},
		}, coupon.Coupon{})
		_, err := svc.Create(context.Background(), testUID, domain.Address{}, "")
		assert.ErrorIs(t, err, ErrProductUnavailable)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("库存不足", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc, _ := newTestService(repo, products, []cart.CartItem{
			{ProductSN: "SKU002", Quantity: 3},
		}, coupon.Coupon{})
		_, err := svc.Create(context.Background(), testUID, domain.Address{}, "")
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Zero(t, repo.createCalls)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string

		order domain.Order

		wantErr           error
		wantPaymentStatus domain.PaymentStatus
	}{
		{
			name:              "未支付订单取消",
			order:             domain.Order{Status: domain.StatusPending, PaymentStatus: domain.PaymentStatusPending},
			wantPaymentStatus: domain.PaymentStatusPending,
		},
		{
			name:              "已支付订单取消后转待退款",
			order:             domain.Order{Status: domain.StatusConfirmed, PaymentStatus: domain.PaymentStatusPaid},
			wantPaymentStatus: domain.PaymentStatusRefundPending,
		},
		{
			name:    "已送达订单不可取消",
			order:   domain.Order{Status: domain.StatusDelivered, PaymentStatus: domain.PaymentStatusPaid},
			wantErr: domain.ErrOrderNotCancellable,
		},
		{
			name:    "已取消订单不可重复取消",
			order:   domain.Order{Status: domain.StatusCancelled},
			wantErr: domain.ErrOrderNotCancellable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{order: tc.order}
			svc, _ := newTestService(repo, nil, nil, coupon.Coupon{})
			err := svc.Cancel(context.Background(), testUID, "order-sn")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, repo.cancelled)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, repo.cancelled)
			assert.Equal(t, domain.StatusCancelled, repo.cancelled.Status)
			assert.Equal(t, tc.wantPaymentStatus, repo.cancelled.PaymentStatus)
		})
	}
}

func TestService_HandlePaymentResult(t *testing.T) {
	t.Parallel()
	t.Run("支付成功确认订单", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{order: domain.Order{SN: "order-sn", Status: domain.StatusPending}}
		svc, _ := newTestService(repo, nil, nil, coupon.Coupon{})
		err := svc.HandlePaymentResult(context.Background(), "order-sn", "pay-sn", "stripe", true)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, repo.markedPaymentStatus)
		assert.Equal(t, domain.StatusConfirmed, repo.markedStatus)
	})
	t.Run("支付失败保持订单状态", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{order: domain.Order{SN: "order-sn", Status: domain.StatusPending}}
		svc, _ := newTestService(repo, nil, nil, coupon.Coupon{})
		err := svc.HandlePaymentResult(context.Background(), "order-sn", "pay-sn", "paypal", false)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, repo.markedPaymentStatus)
		assert.Equal(t, domain.StatusPending, repo.markedStatus)
	})
}

func TestAdminService_UpdateStatus(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{order: domain.Order{ID: 1, Status: domain.StatusConfirmed}}
	svc := NewAdminService(repo)

	err := svc.UpdateStatus(context.Background(), 1, domain.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, repo.updatedStatus)

	err = svc.UpdateStatus(context.Background(), 1, domain.StatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdminService_Refund(t *testing.T) {
	t.Parallel()
	t.Run("全额退款", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{order: domain.Order{ID: 1, Total: 9400, PaymentStatus: domain.PaymentStatusPaid}}
		svc := NewAdminService(repo)
		require.NoError(t, svc.Refund(context.Background(), 1, 9400, "商品损坏"))
		assert.Equal(t, domain.PaymentStatusRefunded, repo.refundStatus)
		assert.Equal(t, int64(9400), repo.refundAmount)
	})
	t.Run("部分退款", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{order: domain.Order{ID: 1, Total: 9400, PaymentStatus: domain.PaymentStatusRefundPending}}
		svc := NewAdminService(repo)
		require.NoError(t, svc.Refund(context.Background(), 1, 2000, "部分商品退货"))
		assert.Equal(t, domain.PaymentStatusPartiallyRefunded, repo.refundStatus)
	})
	t.Run("未支付不可退款", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{order: domain.Order{ID: 1, PaymentStatus: domain.PaymentStatusPending}}
		svc := NewAdminService(repo)
		assert.ErrorIs(t, svc.Refund(context.Background(), 1, 100, "任意"), domain.ErrRefundNotAllowed)
	})
}

type fakeRepo struct {
	order domain.Order

	createCalls       int
	createdOrder      domain.Order
	createdRedemption *dao.CouponRedemption
	createdClearOwner string

	cancelled *domain.Order

	markedPaymentStatus domain.PaymentStatus
	markedStatus        domain.Status

	updatedStatus domain.Status
	refundStatus  domain.PaymentStatus
	refundAmount  int64
}

func (f *fakeRepo) Create(_ context.Context, o domain.Order, redemption *dao.CouponRedemption, clearOwner string) (int64, error) {
	f.createCalls++
	f.createdOrder = o
	f.createdRedemption = redemption
	f.createdClearOwner = clearOwner
	return 1, nil
}

func (f *fakeRepo) Cancel(_ context.Context, o domain.Order) error {
	f.cancelled = &o
	return nil
}

func (f *fakeRepo) FindBySN(_ context.Context, _ string) (domain.Order, error) {
	return f.order, nil
}

func (f *fakeRepo) FindBySNAndBuyerID(_ context.Context, _ string, _ int64) (domain.Order, error) {
	return f.order, nil
}

func (f *fakeRepo) FindByID(_ context.Context, _ int64) (domain.Order, error) {
	return f.order, nil
}

func (f *fakeRepo) ListByBuyerID(_ context.Context, _, _ int, _ int64) ([]domain.Order, error) {
	return []domain.Order{f.order}, nil
}

func (f *fakeRepo) TotalByBuyerID(_ context.Context, _ int64) (int64, error) {
	return 1, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	return []domain.Order{f.order}, nil
}

func (f *fakeRepo) Total(_ context.Context) (int64, error) {
	return 1, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.Status) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) UpdateRefund(_ context.Context, _ int64, status domain.PaymentStatus, amount int64, _ string) error {
	f.refundStatus = status
	f.refundAmount = amount
	return nil
}

func (f *fakeRepo) MarkPayment(_ context.Context, _, _, _ string, paymentStatus domain.PaymentStatus, status domain.Status) error {
	f.markedPaymentStatus = paymentStatus
	f.markedStatus = status
	return nil
}

func (f *fakeRepo) ListExpired(_ context.Context, _, _ int, _ int64) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeRepo) TotalExpired(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) DistinctBuyerIDs(_ context.Context) ([]int64, error) {
	return nil, nil
}

type fakeProductSvc struct {
	products map[string]product.Product
}

func (f *fakeProductSvc) FindBySN(_ context.Context, sn string) (product.Product, error) {
	p, ok := f.products[sn]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
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

type fakeCouponSvc struct {
	coupon coupon.Coupon
}

func (f *fakeCouponSvc) Validate(_ context.Context, _ int64, code string, subtotal int64) (coupon.Coupon, int64, error) {
	if code != f.coupon.Code {
		return coupon.Coupon{}, 0, coupon.ErrCouponNotFound
	}
	return f.coupon, f.coupon.Discount(subtotal), nil
}

type fakeCartSvc struct {
	items []cart.CartItem
}

func (f *fakeCartSvc) Detail(_ context.Context, owner cart.Owner) (cart.Cart, error) {
	return cart.Cart{Owner: owner, Items: f.items}, nil
}

func (f *fakeCartSvc) Add(_ context.Context, _ cart.Owner, _ string, _ int64, _ string) (cart.Cart, error) {
	return cart.Cart{}, nil
}

func (f *fakeCartSvc) UpdateQuantity(_ context.Context, _ cart.Owner, _ int64, _ int64) (cart.Cart, error) {
	return cart.Cart{}, nil
}

func (f *fakeCartSvc) Remove(_ context.Context, _ cart.Owner, _ int64) (cart.Cart, error) {
	return cart.Cart{}, nil
}

func (f *fakeCartSvc) Clear(_ context.Context, _ cart.Owner) error {
	return nil
}

func (f *fakeCartSvc) Merge(_ context.Context, _, _ cart.Owner) error {
	return nil
}

type fakeProducer struct {
	events []event.OrderEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderEvent) error {
	f.events = append(f.events, evt)
	return nil
}
