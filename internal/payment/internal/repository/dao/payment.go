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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = gorm.ErrRecordNotFound

type PaymentDAO interface {
	Create(ctx context.Context, p Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByProviderTxnID(ctx context.Context, txnID string) (Payment, error)
	// UpdateStatus 更新支付状态与网关交易标识,支付成功时写入支付时间
	UpdateStatus(ctx context.Context, sn string, status uint8, providerTxnID string, paidAt int64) error
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}

func (d *PaymentGORMDAO) Create(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *PaymentGORMDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) FindByProviderTxnID(ctx context.Context, txnID string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("provider_txn_id = ?", txnID).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) UpdateStatus(ctx context.Context, sn string, status uint8, providerTxnID string, paidAt int64) error {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if providerTxnID != "" {
		updates["provider_txn_id"] = providerTxnID
	}
	if paidAt > 0 {
		updates["paid_at"] = paidAt
	}
	return d.db.WithContext(ctx).Model(&Payment{}).
		Where("sn = ?", sn).
		Updates(updates).Error
}

type Payment struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderSN       string `gorm:"type:varchar(255);not null;index:idx_order_sn;comment:订单序列号"`
	BuyerId       int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	Channel       uint8  `gorm:"type:tinyint unsigned;not null;comment:支付渠道 1=stripe 2=paypal 3=sslcommerz"`
	Amount        int64  `gorm:"not null;comment:支付金额;单位为分"`
	Currency      string `gorm:"type:varchar(8);not null;comment:币种"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=未支付 2=支付中 3=支付成功 4=支付失败"`
	ProviderTxnId string `gorm:"type:varchar(255);not null;default:'';index:idx_provider_txn_id;comment:网关交易标识"`
	PaidAt        int64  `gorm:"comment:支付完成时间"`
	Ctime         int64
	Utime         int64
}
