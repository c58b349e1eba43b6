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

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/ecodeclub/emall/internal/payment/internal/event"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUID = int64(2077)

func newTestService(repo *fakeRepo, producer *fakeProducer) Service {
	return NewService(repo,
		&fakeOrderSvc{order: order.Order{SN: "order-sn", BuyerID: testUID, Total: 9400}},
		&fakeStripe{intentID: "pi_123", clientSecret: "secret_123", status: domain.PaymentStatusPaidSuccess},
		&fakePayPal{orderID: "PP123", approveURL: "https://paypal.example.com/approve", completed: true},
		&fakeSSLCommerz{gatewayURL: "https://sslcommerz.example.com/pay", valid: true},
		sequencenumber.NewGenerator(),
		producer,
		"usd")
}

func TestService_CreateStripeIntent(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeProducer{})

	intent, err := svc.CreateStripeIntent(context.Background(), testUID, "order-sn")
	require.NoError(t, err)
	assert.Equal(t, "secret_123", intent.ClientSecret)
	assert.NotEmpty(t, intent.PaymentSN)
	// 按订单总价创建支付记录
	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(9400), repo.created[0].Amount)
	assert.Equal(t, "usd", repo.created[0].Currency)
	assert.Equal(t, domain.ChannelTypeStripe, repo.created[0].Channel)
	// 网关调用成功后记录intent id并转为支付中
	assert.Equal(t, domain.PaymentStatusProcessing, repo.lastStatus)
	assert.Equal(t, "pi_123", repo.lastProviderTxnID)
}

func TestService_ConfirmStripeIntent(t *testing.T) {
	t.Parallel()
	producer := &fakeProducer{}
	repo := &fakeRepo{payment: domain.Payment{
		SN: "pay-sn", OrderSN: "order-sn", BuyerID: testUID,
		Channel: domain.ChannelTypeStripe, ProviderTxnID: "pi_123",
	}}
	svc := newTestService(repo, producer)

	status, err := svc.ConfirmStripeIntent(context.Background(), testUID, "pay-sn")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaidSuccess, status)
	require.Len(t, producer.events, 1)
	assert.Equal(t, "order-sn", producer.events[0].OrderSN)
	assert.True(t, producer.events[0].Paid)
	assert.Equal(t, "stripe", producer.events[0].Channel)
}

func TestService_ConfirmStripeIntent_NotOwner(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{payment: domain.Payment{SN: "pay-sn", BuyerID: testUID + 1}}
	svc := newTestService(repo, &fakeProducer{})
	_, err := svc.ConfirmStripeIntent(context.Background(), testUID, "pay-sn")
	assert.Error(t, err)
}

func TestService_CapturePayPalOrder(t *testing.T) {
	t.Parallel()
	producer := &fakeProducer{}
	repo := &fakeRepo{payment: domain.Payment{
		SN: "pay-sn", OrderSN: "order-sn", BuyerID: testUID,
		Channel: domain.ChannelTypePayPal, ProviderTxnID: "PP123",
	}}
	svc := newTestService(repo, producer)

	status, err := svc.CapturePayPalOrder(context.Background(), testUID, "pay-sn")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaidSuccess, status)
	require.Len(t, producer.events, 1)
	assert.True(t, producer.events[0].Paid)
	assert.Equal(t, "paypal", producer.events[0].Channel)
}

func TestService_ValidateSSLCommerzTxn(t *testing.T) {
	t.Parallel()
	producer := &fakeProducer{}
	repo := &fakeRepo{payment: domain.Payment{
		SN: "pay-sn", OrderSN: "order-sn", BuyerID: testUID,
		Channel: domain.ChannelTypeSSLCommerz,
	}}
	svc := newTestService(repo, producer)

	require.NoError(t, svc.ValidateSSLCommerzTxn(context.Background(), "val-123"))
	assert.Equal(t, domain.PaymentStatusPaidSuccess, repo.lastStatus)
	assert.Equal(t, "val-123", repo.lastProviderTxnID)
	require.Len(t, producer.events, 1)
	assert.True(t, producer.events[0].Paid)
}

func TestService_Refund(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{payment: domain.Payment{
		SN: "payment-sn", BuyerID: testUID, Status: domain.PaymentStatusPaidSuccess,
	}}
	svc := newTestService(repo, &fakeProducer{})

	require.NoError(t, svc.Refund(context.Background(), "payment-sn"))
	assert.Equal(t, domain.PaymentStatusRefunded, repo.lastStatus)
}

func TestService_Refund_NotPaid(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{payment: domain.Payment{
		SN: "payment-sn", BuyerID: testUID, Status: domain.PaymentStatusProcessing,
	}}
	svc := newTestService(repo, &fakeProducer{})

	err := svc.Refund(context.Background(), "payment-sn")
	assert.ErrorIs(t, err, ErrNotRefundable)
	assert.Zero(t, repo.lastStatus)
}

type fakeRepo struct {
	payment domain.Payment

	created           []domain.Payment
	lastStatus        domain.PaymentStatus
	lastProviderTxnID string
}

func (f *fakeRepo) Create(_ context.Context, p domain.Payment) (int64, error) {
	f.created = append(f.created, p)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) FindBySN(_ context.Context, _ string) (domain.Payment, error) {
	return f.payment, nil
}

func (f *fakeRepo) FindByProviderTxnID(_ context.Context, _ string) (domain.Payment, error) {
	return f.payment, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ string, status domain.PaymentStatus, providerTxnID string, _ int64) error {
	f.lastStatus = status
	if providerTxnID != "" {
		f.lastProviderTxnID = providerTxnID
	}
	return nil
}

type fakeOrderSvc struct {
	order order.Order
}

func (f *fakeOrderSvc) Create(_ context.Context, _ int64, _ order.Address, _ string) (order.Order, error) {
	return f.order, nil
}

func (f *fakeOrderSvc) Detail(_ context.Context, uid int64, _ string) (order.Order, error) {
	if uid != f.order.BuyerID {
		return order.Order{}, order.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrderSvc) List(_ context.Context, _, _ int, _ int64) ([]order.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderSvc) Cancel(_ context.Context, _ int64, _ string) error {
	return nil
}

func (f *fakeOrderSvc) HandlePaymentResult(_ context.Context, _, _, _ string, _ bool) error {
	return nil
}

func (f *fakeOrderSvc) ListExpired(_ context.Context, _, _ int, _ int64) ([]order.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderSvc) CloseExpired(_ context.Context, _ []order.Order) error {
	return nil
}

type fakeStripe struct {
	intentID     string
	clientSecret string
	status       domain.PaymentStatus
}

func (f *fakeStripe) CreateIntent(_ context.Context, _ domain.Payment) (string, string, error) {
	return f.intentID, f.clientSecret, nil
}

func (f *fakeStripe) QueryIntent(_ context.Context, _ string) (domain.PaymentStatus, error) {
	return f.status, nil
}

type fakePayPal struct {
	orderID    string
	approveURL string
	completed  bool
}

func (f *fakePayPal) CreateOrder(_ context.Context, _ domain.Payment) (string, string, error) {
	return f.orderID, f.approveURL, nil
}

func (f *fakePayPal) CaptureOrder(_ context.Context, _ string) (bool, error) {
	return f.completed, nil
}

type fakeSSLCommerz struct {
	gatewayURL string
	valid      bool
}

func (f *fakeSSLCommerz) InitSession(_ context.Context, _ domain.Payment) (string, error) {
	return f.gatewayURL, nil
}

func (f *fakeSSLCommerz) Validate(_ context.Context, _ string) (bool, string, error) {
	return f.valid, "pay-sn", nil
}

type fakeProducer struct {
	events []event.PaymentEvent
}

func (f *fakeProducer) ProducePaymentEvent(_ context.Context, evt event.PaymentEvent) error {
	f.events = append(f.events, evt)
	return nil
}
