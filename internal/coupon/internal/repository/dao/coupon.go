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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = gorm.ErrRecordNotFound
	// ErrCouponExhausted 条件自增影响行数为0,说明并发下已达全局使用上限
	ErrCouponExhausted = errors.New("优惠券已被领完")
)

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	Save(ctx context.Context, c Coupon) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Coupon, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountUsageByUser(ctx context.Context, couponID, uid int64) (int64, error)

	// RedeemTx 在调用方事务内核销优惠券:
	// 条件自增 used_count 保证并发下不会超过全局使用上限,
	// 同时写入核销记录。由订单模块在下单事务中调用。
	RedeemTx(tx *gorm.DB, couponID, uid int64, orderSN string) error
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Coupon{}, &CouponUsage{})
}

func (d *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := d.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"code":             c.Code,
			"name":             c.Name,
			"type":             c.Type,
			"value":            c.Value,
			"max_discount":     c.MaxDiscount,
			"min_order_amount": c.MinOrderAmount,
			"usage_limit":      c.UsageLimit,
			"per_user_limit":   c.PerUserLimit,
			"valid_from":       c.ValidFrom,
			"valid_until":      c.ValidUntil,
			"status":           c.Status,
			"utime":            now,
		}).Error
	return c.Id, err
}

func (d *CouponGORMDAO) List(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Coupon{}).Count(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Coupon{}).Error
}

func (d *CouponGORMDAO) CountUsageByUser(ctx context.Context, couponID, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&CouponUsage{}).
		Where("coupon_id = ? AND uid = ?", couponID, uid).
		Count(&res).Error
	return res, err
}

func (d *CouponGORMDAO) RedeemTx(tx *gorm.DB, couponID, uid int64, orderSN string) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&Coupon{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", couponID).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + 1"),
			"utime":      now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCouponExhausted
	}
	return tx.Create(&CouponUsage{
		CouponId: couponID,
		Uid:      uid,
		OrderSN:  orderSN,
		Ctime:    now,
		Utime:    now,
	}).Error
}

type Coupon struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code           string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠码"`
	Name           string `gorm:"type:varchar(255);not null;comment:优惠券名称"`
	Type           uint8  `gorm:"type:tinyint unsigned;not null;comment:折扣类型 1=百分比 2=固定金额"`
	Value          int64  `gorm:"not null;comment:百分比或固定金额(分)"`
	MaxDiscount    int64  `gorm:"not null;default:0;comment:最高优惠金额(分),0表示不封顶"`
	MinOrderAmount int64  `gorm:"not null;default:0;comment:使用门槛(分),0表示无门槛"`
	UsageLimit     int64  `gorm:"not null;default:0;comment:全局使用上限,0表示不限"`
	PerUserLimit   int64  `gorm:"not null;default:0;comment:单个用户使用上限,0表示不限"`
	UsedCount      int64  `gorm:"not null;default:0;comment:已使用次数"`
	ValidFrom      int64  `gorm:"comment:生效时间"`
	ValidUntil     int64  `gorm:"comment:失效时间"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=停用 2=启用"`
	Ctime          int64
	Utime          int64
}

type CouponUsage struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:核销记录自增ID"`
	CouponId int64  `gorm:"not null;index:idx_coupon_uid,priority:1;comment:优惠券自增ID"`
	Uid      int64  `gorm:"not null;index:idx_coupon_uid,priority:2;comment:用户ID"`
	OrderSN  string `gorm:"type:varchar(255);not null;comment:订单序列号"`
	Ctime    int64
	Utime    int64
}
