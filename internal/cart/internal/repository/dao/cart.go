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

var ErrCartItemNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	FindByOwner(ctx context.Context, owner string) ([]CartItem, error)
	// Upsert 同一商品同一销售属性合并数量
	Upsert(ctx context.Context, item CartItem) error
	UpdateQuantity(ctx context.Context, owner string, itemID int64, quantity int64) error
	Delete(ctx context.Context, owner string, itemID int64) error
	Clear(ctx context.Context, owner string) error
	// Merge 把匿名购物车合并进登录用户购物车
	Merge(ctx context.Context, from, to string) error

	// ClearTx 在调用方事务内清空购物车,由订单模块在下单事务中调用
	ClearTx(tx *gorm.DB, owner string) error
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

type CartGORMDAO struct {
	db *egorm.Component
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}

func (d *CartGORMDAO) FindByOwner(ctx context.Context, owner string) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) Upsert(ctx context.Context, item CartItem) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing CartItem
		err := tx.Where("owner = ? AND product_sn = ? AND attrs = ?",
			item.Owner, item.ProductSN, item.Attrs).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&CartItem{}).
				Where("id = ?", existing.Id).
				Updates(map[string]any{
					"quantity": gorm.Expr("quantity + ?", item.Quantity),
					"utime":    now,
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item.Ctime, item.Utime = now, now
			return tx.Create(&item).Error
		default:
			return err
		}
	})
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, owner string, itemID int64, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("id = ? AND owner = ?", itemID, owner).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) Delete(ctx context.Context, owner string, itemID int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND owner = ?", itemID, owner).
		Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) Clear(ctx context.Context, owner string) error {
	return d.db.WithContext(ctx).Where("owner = ?", owner).Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) Merge(ctx context.Context, from, to string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guestItems []CartItem
		if err := tx.Where("owner = ?", from).Find(&guestItems).Error; err != nil {
			return err
		}
		for _, gi := range guestItems {
			var existing CartItem
			err := tx.Where("owner = ? AND product_sn = ? AND attrs = ?",
				to, gi.ProductSN, gi.Attrs).First(&existing).Error
			switch {
			case err == nil:
				if er := tx.Model(&CartItem{}).
					Where("id = ?", existing.Id).
					Updates(map[string]any{
						"quantity": gorm.Expr("quantity + ?", gi.Quantity),
						"utime":    now,
					}).Error; er != nil {
					return er
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				item := gi
				item.Id = 0
				item.Owner = to
				item.Ctime, item.Utime = now, now
				if er := tx.Create(&item).Error; er != nil {
					return er
				}
			default:
				return err
			}
		}
		return tx.Where("owner = ?", from).Delete(&CartItem{}).Error
	})
}

func (d *CartGORMDAO) ClearTx(tx *gorm.DB, owner string) error {
	return tx.Where("owner = ?", owner).Delete(&CartItem{}).Error
}

type CartItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:购物车条目自增ID"`
	Owner     string `gorm:"type:varchar(255);not null;index:idx_cart_owner;comment:归属,登录用户为u:<uid>,匿名用户为购物车SN"`
	ProductSN string `gorm:"type:varchar(255);not null;comment:商品序列号"`
	Name      string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Image     string `gorm:"type:varchar(512);comment:商品缩略图快照"`
	Price     int64  `gorm:"not null;comment:加入时单价;单位为分"`
	Quantity  int64  `gorm:"not null;comment:数量"`
	Attrs     string `gorm:"comment:销售属性,JSON格式"`
	Ctime     int64
	Utime     int64
}
