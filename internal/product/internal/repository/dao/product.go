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

	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = gorm.ErrRecordNotFound
	// ErrInsufficientStock 条件扣减库存影响行数为0
	ErrInsufficientStock = errors.New("库存不足或商品已下架")
)

type ProductDAO interface {
	FindBySN(ctx context.Context, sn string) (Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, categoryID int64, offset, limit int) ([]Product, error)
	Count(ctx context.Context, categoryID int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]Product, error)
	CountAll(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	Delete(ctx context.Context, id int64) error
	IncrRating(ctx context.Context, sn string, rating int64) error

	// DeductStockTx 与 RestoreStockTx 在调用方事务内条件变更库存与销量,
	// 由订单模块在下单/取消事务中调用
	DeductStockTx(tx *gorm.DB, sn string, quantity int64) error
	RestoreStockTx(tx *gorm.DB, sn string, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, categoryID int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context, categoryID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("category_id = ? AND status = ?", categoryID, domain.StatusOnShelf.ToUint8()).
		Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListAll(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountAll(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"sn":            p.SN,
			"name":          p.Name,
			"description":   p.Description,
			"image":         p.Image,
			"price":         p.Price,
			"compare_price": p.ComparePrice,
			"stock":         p.Stock,
			"stock_limit":   p.StockLimit,
			"attrs":         p.Attrs,
			"category_id":   p.CategoryId,
			"utime":         now,
		}).Error
	return p.Id, err
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

func (d *ProductGORMDAO) IncrRating(ctx context.Context, sn string, rating int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("sn = ?", sn).
		Updates(map[string]any{
			"rating_total": gorm.Expr("rating_total + ?", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) DeductStockTx(tx *gorm.DB, sn string, quantity int64) error {
	res := tx.Model(&Product{}).
		Where("sn = ? AND status = ? AND stock >= ?", sn, domain.StatusOnShelf.ToUint8(), quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"sales": gorm.Expr("sales + ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (d *ProductGORMDAO) RestoreStockTx(tx *gorm.DB, sn string, quantity int64) error {
	return tx.Model(&Product{}).
		Where("sn = ?", sn).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"sales": gorm.Expr("sales - ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

type Product struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN           string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name         string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description  string `gorm:"not null;comment:商品描述"`
	Image        string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Price        int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	ComparePrice int64  `gorm:"comment:划线价;单位为分"`
	Stock        int64  `gorm:"not null;comment:库存数量"`
	StockLimit   int64  `gorm:"not null;comment:低库存预警阈值"`
	Sales        int64  `gorm:"not null;default:0;comment:累计销量"`
	Attrs        string `gorm:"comment:商品销售属性,JSON格式"`
	CategoryId   int64  `gorm:"not null;index:idx_category_id;comment:类目自增ID"`
	RatingTotal  int64  `gorm:"not null;default:0;comment:评分总和"`
	RatingCount  int64  `gorm:"not null;default:0;comment:评价数量"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime        int64
	Utime        int64
}
