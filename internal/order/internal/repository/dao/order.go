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

	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/coupon"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrOrderNotFound = gorm.ErrRecordNotFound

// CouponRedemption 下单时需要核销的优惠券
type CouponRedemption struct {
	CouponID int64
	Uid      int64
}

type OrderDAO interface {
	// Create 在同一个事务内写入订单和订单项、条件扣减库存、
	// 核销优惠券、清空购物车,任一步失败则全部回滚
	Create(ctx context.Context, o Order, items []OrderItem, redemption *CouponRedemption, clearOwner string) (int64, error)
	// Cancel 在同一个事务内恢复库存和销量并更新订单状态,与下单互为镜像
	Cancel(ctx context.Context, o Order, items []OrderItem) error

	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	CountByBuyerID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	UpdateRefund(ctx context.Context, id int64, paymentStatus uint8, amount int64, reason string) error
	MarkPayment(ctx context.Context, sn, paymentSN, channel string, paymentStatus, status uint8) error
	ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CountExpired(ctx context.Context, ctime int64) (int64, error)
	// DistinctBuyerIDs 下过单的买家,营销模块圈选"老客户"收件人时使用
	DistinctBuyerIDs(ctx context.Context) ([]int64, error)
}

func NewOrderGORMDAO(db *egorm.Component,
	productDAO product.DAO,
	couponDAO coupon.DAO,
	cartDAO cart.DAO) OrderDAO {
	return &OrderGORMDAO{
		db:         db,
		productDAO: productDAO,
		couponDAO:  couponDAO,
		cartDAO:    cartDAO,
	}
}

type OrderGORMDAO struct {
	db         *egorm.Component
	productDAO product.DAO
	couponDAO  coupon.DAO
	cartDAO    cart.DAO
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem,
	redemption *CouponRedemption, clearOwner string) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
			if err := d.productDAO.DeductStockTx(tx, items[i].ProductSN, items[i].Quantity); err != nil {
				return err
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if redemption != nil {
			if err := d.couponDAO.RedeemTx(tx, redemption.CouponID, redemption.Uid, o.SN); err != nil {
				return err
			}
		}
		if clearOwner != "" {
			if err := d.cartDAO.ClearTx(tx, clearOwner); err != nil {
				return err
			}
		}
		return nil
	})
	return o.Id, err
}

func (d *OrderGORMDAO) Cancel(ctx context.Context, o Order, items []OrderItem) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := d.productDAO.RestoreStockTx(tx, it.ProductSN, it.Quantity); err != nil {
				return err
			}
		}
		return tx.Model(&Order{}).Where("id = ?", o.Id).
			Updates(map[string]any{
				"status":         o.Status,
				"payment_status": o.PaymentStatus,
				"closed_at":      now,
				"utime":          now,
			}).Error
	})
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", uid).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdateRefund(ctx context.Context, id int64, paymentStatus uint8, amount int64, reason string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": paymentStatus,
			"refund_amount":  amount,
			"refund_reason":  reason,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) MarkPayment(ctx context.Context, sn, paymentSN, channel string, paymentStatus, status uint8) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ?", sn).
		Updates(map[string]any{
			"payment_sn":      paymentSN,
			"payment_channel": channel,
			"payment_status":  paymentStatus,
			"status":          status,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND payment_status = ? AND ctime <= ?",
			statusPending, paymentStatusPending, ctime).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountExpired(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND payment_status = ? AND ctime <= ?",
			statusPending, paymentStatusPending, ctime).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) DistinctBuyerIDs(ctx context.Context) ([]int64, error) {
	var res []int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Distinct("buyer_id").
		Pluck("buyer_id", &res).Error
	return res, err
}

const (
	statusPending        = 1
	paymentStatusPending = 1
)

type Order struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN             string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId        int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	Subtotal       int64  `gorm:"not null;comment:商品小计;单位为分"`
	ShippingFee    int64  `gorm:"not null;comment:运费;单位为分"`
	Tax            int64  `gorm:"not null;comment:税费;单位为分"`
	Discount       int64  `gorm:"not null;default:0;comment:优惠金额;单位为分"`
	Total          int64  `gorm:"not null;comment:实付总价;单位为分"`
	CouponId       int64  `gorm:"not null;default:0;comment:优惠券自增ID,0表示未使用"`
	CouponCode     string `gorm:"type:varchar(64);not null;default:'';comment:优惠码快照"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待处理 2=已确认 3=处理中 4=已发货 5=已送达 6=已取消 7=已退货"`
	PaymentStatus  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=已支付 3=支付失败 4=已退款 5=部分退款 6=待退款"`
	PaymentChannel string `gorm:"type:varchar(32);not null;default:'';comment:支付渠道"`
	PaymentSN      string `gorm:"type:varchar(255);not null;default:'';comment:支付序列号"`
	// 收货地址快照
	Recipient string `gorm:"type:varchar(255);not null;default:'';comment:收件人"`
	Phone     string `gorm:"type:varchar(32);not null;default:'';comment:联系电话"`
	Street    string `gorm:"type:varchar(512);not null;default:'';comment:街道地址"`
	City      string `gorm:"type:varchar(255);not null;default:'';comment:城市"`
	Province  string `gorm:"type:varchar(255);not null;default:'';comment:省份"`
	Zip       string `gorm:"type:varchar(32);not null;default:'';comment:邮编"`
	Country   string `gorm:"type:varchar(64);not null;default:'';comment:国家"`

	RefundAmount int64  `gorm:"not null;default:0;comment:退款金额;单位为分"`
	RefundReason string `gorm:"type:varchar(512);not null;default:'';comment:退款原因"`
	ClosedAt     int64  `gorm:"comment:订单关闭时间"`
	Ctime        int64
	Utime        int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品自增ID"`
	ProductSN string `gorm:"type:varchar(255);not null;index:idx_product_sn;comment:商品序列号"`
	Name      string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Image     string `gorm:"type:varchar(512);not null;default:'';comment:商品图片快照"`
	Price     int64  `gorm:"not null;comment:下单时单价;单位为分"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Attrs     string `gorm:"type:varchar(512);not null;default:'';comment:销售属性快照,JSON"`
	Ctime     int64
	Utime     int64
}
