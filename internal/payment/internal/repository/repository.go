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

	"github.com/ecodeclub/emall/internal/payment/internal/domain"
	"github.com/ecodeclub/emall/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByProviderTxnID(ctx context.Context, txnID string) (domain.Payment, error)
	UpdateStatus(ctx context.Context, sn string, status domain.PaymentStatus, providerTxnID string, paidAt int64) error
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (r *paymentRepository) Create(ctx context.Context, p domain.Payment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(p), nil
}

func (r *paymentRepository) FindByProviderTxnID(ctx context.Context, txnID string) (domain.Payment, error) {
	p, err := r.dao.FindByProviderTxnID(ctx, txnID)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(p), nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, sn string, status domain.PaymentStatus, providerTxnID string, paidAt int64) error {
	return r.dao.UpdateStatus(ctx, sn, status.ToUint8(), providerTxnID, paidAt)
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:            p.Id,
		SN:            p.SN,
		OrderSN:       p.OrderSN,
		BuyerID:       p.BuyerId,
		Channel:       domain.ChannelType(p.Channel),
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        domain.PaymentStatus(p.Status),
		ProviderTxnID: p.ProviderTxnId,
		PaidAt:        p.PaidAt,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:            p.ID,
		SN:            p.SN,
		OrderSN:       p.OrderSN,
		BuyerId:       p.BuyerID,
		Channel:       p.Channel.ToUint8(),
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status.ToUint8(),
		ProviderTxnId: p.ProviderTxnID,
		PaidAt:        p.PaidAt,
	}
}
