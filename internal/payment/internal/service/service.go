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
	"time"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/ecodeclub/emall/internal/payment/internal/event"
	"github.com/ecodeclub/emall/internal/payment/internal/repository"
	"github.com/ecodeclub/emall/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

// ErrNotRefundable 只有支付成功的支付单可以退款
var ErrNotRefundable = errors.New("支付单不可退款")

// StripeGateway 等接口只暴露编排层需要的最小能力,方便在测试里替换
type StripeGateway interface {
	CreateIntent(ctx context.Context, pmt domain.Payment) (intentID, clientSecret string, err error)
	QueryIntent(ctx context.Context, intentID string) (domain.PaymentStatus, error)
}

type PayPalGateway interface {
	CreateOrder(ctx context.Context, pmt domain.Payment) (providerOrderID, approveURL string, err error)
	CaptureOrder(ctx context.Context, providerOrderID string) (bool, error)
}

type SSLCommerzGateway interface {
	InitSession(ctx context.Context, pmt domain.Payment) (gatewayURL string, err error)
	Validate(ctx context.Context, valID string) (valid bool, tranID string, err error)
}

type Service interface {
	Channels(ctx context.Context) []domain.Channel
	CreateStripeIntent(ctx context.Context, uid int64, orderSN string) (domain.StripeIntent, error)
	// ConfirmStripeIntent 前端确认支付后查询意图状态并落库,终态时发布支付事件
	ConfirmStripeIntent(ctx context.Context, uid int64, paymentSN string) (domain.PaymentStatus, error)
	CreatePayPalOrder(ctx context.Context, uid int64, orderSN string) (domain.PayPalOrder, error)
	CapturePayPalOrder(ctx context.Context, uid int64, paymentSN string) (domain.PaymentStatus, error)
	InitSSLCommerzSession(ctx context.Context, uid int64, orderSN string) (domain.SSLCommerzSession, error)
	// ValidateSSLCommerzTxn IPN回调:校验val_id,按校验结果更新支付并发布事件
	ValidateSSLCommerzTxn(ctx context.Context, valID string) error
	// Refund 把支付单标记为已退款。
	// TODO 接入各网关的退款API,目前网关侧退款由运营在商户后台手工操作
	Refund(ctx context.Context, paymentSN string) error
}

func NewService(repo repository.PaymentRepository,
	orderSvc order.Service,
	stripeGateway StripeGateway,
	paypalGateway PayPalGateway,
	sslGateway SSLCommerzGateway,
	snGenerator *sequencenumber.Generator,
	producer event.Producer,
	currency string) Service {
	return &service{
		repo:          repo,
		orderSvc:      orderSvc,
		stripeGateway: stripeGateway,
		paypalGateway: paypalGateway,
		sslGateway:    sslGateway,
		snGenerator:   snGenerator,
		producer:      producer,
		currency:      currency,
		logger:        elog.DefaultLogger,
	}
}

type service struct {
	repo          repository.PaymentRepository
	orderSvc      order.Service
	stripeGateway StripeGateway
	paypalGateway PayPalGateway
	sslGateway    SSLCommerzGateway
	snGenerator   *sequencenumber.Generator
	producer      event.Producer
	currency      string
	logger        *elog.Component
}

func (s *service) Channels(_ context.Context) []domain.Channel {
	return []domain.Channel{
		{Type: domain.ChannelTypeStripe, Desc: "Stripe"},
		{Type: domain.ChannelTypePayPal, Desc: "PayPal"},
		{Type: domain.ChannelTypeSSLCommerz, Desc: "SSLCommerz"},
	}
}

func (s *service) CreateStripeIntent(ctx context.Context, uid int64, orderSN string) (domain.StripeIntent, error) {
	pmt, err := s.createPayment(ctx, uid, orderSN, domain.ChannelTypeStripe)
	if err != nil {
		return domain.StripeIntent{}, err
	}
	intentID, clientSecret, err := s.stripeGateway.CreateIntent(ctx, pmt)
	if err != nil {
		return domain.StripeIntent{}, err
	}
	err = s.repo.UpdateStatus(ctx, pmt.SN, domain.PaymentStatusProcessing, intentID, 0)
	if err != nil {
		return domain.StripeIntent{}, err
	}
	return domain.StripeIntent{
		PaymentSN:    pmt.SN,
		IntentID:     intentID,
		ClientSecret: clientSecret,
	}, nil
}

func (s *service) ConfirmStripeIntent(ctx context.Context, uid int64, paymentSN string) (domain.PaymentStatus, error) {
	pmt, err := s.findOwnPayment(ctx, uid, paymentSN)
	if err != nil {
		return 0, err
	}
	status, err := s.stripeGateway.QueryIntent(ctx, pmt.ProviderTxnID)
	if err != nil {
		return 0, err
	}
	return status, s.settle(ctx, pmt, status)
}

func (s *service) CreatePayPalOrder(ctx context.Context, uid int64, orderSN string) (domain.PayPalOrder, error) {
	pmt, err := s.createPayment(ctx, uid, orderSN, domain.ChannelTypePayPal)
	if err != nil {
		return domain.PayPalOrder{}, err
	}
	providerOrderID, approveURL, err := s.paypalGateway.CreateOrder(ctx, pmt)
	if err != nil {
		return domain.PayPalOrder{}, err
	}
	err = s.repo.UpdateStatus(ctx, pmt.SN, domain.PaymentStatusProcessing, providerOrderID, 0)
	if err != nil {
		return domain.PayPalOrder{}, err
	}
	return domain.PayPalOrder{
		PaymentSN:       pmt.SN,
		ProviderOrderID: providerOrderID,
		ApproveURL:      approveURL,
	}, nil
}

func (s *service) CapturePayPalOrder(ctx context.Context, uid int64, paymentSN string) (domain.PaymentStatus, error) {
	pmt, err := s.findOwnPayment(ctx, uid, paymentSN)
	if err != nil {
		return 0, err
	}
	completed, err := s.paypalGateway.CaptureOrder(ctx, pmt.ProviderTxnID)
	if err != nil {
		return 0, err
	}
	status := domain.PaymentStatusPaidFailed
	if completed {
		status = domain.PaymentStatusPaidSuccess
	}
	return status, s.settle(ctx, pmt, status)
}

func (s *service) InitSSLCommerzSession(ctx context.Context, uid int64, orderSN string) (domain.SSLCommerzSession, error) {
	pmt, err := s.createPayment(ctx, uid, orderSN, domain.ChannelTypeSSLCommerz)
	if err != nil {
		return domain.SSLCommerzSession{}, err
	}
	gatewayURL, err := s.sslGateway.InitSession(ctx, pmt)
	if err != nil {
		return domain.SSLCommerzSession{}, err
	}
	err = s.repo.UpdateStatus(ctx, pmt.SN, domain.PaymentStatusProcessing, "", 0)
	if err != nil {
		return domain.SSLCommerzSession{}, err
	}
	return domain.SSLCommerzSession{
		PaymentSN:  pmt.SN,
		GatewayURL: gatewayURL,
	}, nil
}

func (s *service) ValidateSSLCommerzTxn(ctx context.Context, valID string) error {
	valid, tranID, err := s.sslGateway.Validate(ctx, valID)
	if err != nil {
		return err
	}
	// tran_id就是发起会话时传的支付序列号
	pmt, err := s.repo.FindBySN(ctx, tranID)
	if err != nil {
		return err
	}
	pmt.ProviderTxnID = valID
	status := domain.PaymentStatusPaidFailed
	if valid {
		status = domain.PaymentStatusPaidSuccess
	}
	return s.settle(ctx, pmt, status)
}

// createPayment 校验订单属于当前买家并按订单总价落一条支付记录
func (s *service) createPayment(ctx context.Context, uid int64, orderSN string, channel domain.ChannelType) (domain.Payment, error) {
	o, err := s.orderSvc.Detail(ctx, uid, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt := domain.Payment{
		SN:       sn,
		OrderSN:  o.SN,
		BuyerID:  uid,
		Channel:  channel,
		Amount:   o.Total,
		Currency: s.currency,
		Status:   domain.PaymentStatusUnpaid,
	}
	pmt.ID, err = s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	return pmt, nil
}

func (s *service) findOwnPayment(ctx context.Context, uid int64, paymentSN string) (domain.Payment, error) {
	pmt, err := s.repo.FindBySN(ctx, paymentSN)
	if err != nil {
		return domain.Payment{}, err
	}
	if pmt.BuyerID != uid {
		return domain.Payment{}, dao.ErrPaymentNotFound
	}
	return pmt, nil
}

func (s *service) Refund(ctx context.Context, paymentSN string) error {
	pmt, err := s.repo.FindBySN(ctx, paymentSN)
	if err != nil {
		return err
	}
	if pmt.Status != domain.PaymentStatusPaidSuccess {
		return ErrNotRefundable
	}
	return s.repo.UpdateStatus(ctx, pmt.SN, domain.PaymentStatusRefunded, pmt.ProviderTxnID, 0)
}

// settle 终态落库并向订单模块发布支付事件,非终态只更新状态
func (s *service) settle(ctx context.Context, pmt domain.Payment, status domain.PaymentStatus) error {
	var paidAt int64
	if status == domain.PaymentStatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	err := s.repo.UpdateStatus(ctx, pmt.SN, status, pmt.ProviderTxnID, paidAt)
	if err != nil {
		return err
	}
	if status != domain.PaymentStatusPaidSuccess && status != domain.PaymentStatusPaidFailed {
		return nil
	}
	evt := event.PaymentEvent{
		OrderSN:   pmt.OrderSN,
		PaymentSN: pmt.SN,
		Channel:   pmt.Channel.Name(),
		Paid:      status == domain.PaymentStatusPaidSuccess,
	}
	if er := s.producer.ProducePaymentEvent(ctx, evt); er != nil {
		// 事件丢失可以靠订单侧对账兜底,这里只记日志
		s.logger.Error("发送支付事件失败",
			elog.FieldErr(er),
			elog.String("payment_sn", pmt.SN),
			elog.String("order_sn", pmt.OrderSN))
	}
	return nil
}
