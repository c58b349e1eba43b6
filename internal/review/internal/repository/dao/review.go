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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateReview 一个用户对一个商品只能评价一次
	ErrDuplicateReview = errors.New("已经评价过该商品")
)

//go:generate mockgen -source=./review.go -package=daomocks -destination=mocks/review.mock.go ReviewDAO
type ReviewDAO interface {
	Insert(ctx context.Context, r Review) (int64, error)
	FindById(ctx context.Context, id int64) (Review, error)
	// ListByProduct 只返回指定状态的评价,状态为0表示不过滤
	ListByProduct(ctx context.Context, productSN string, status uint8, offset, limit int) ([]Review, error)
	CountByProduct(ctx context.Context, productSN string, status uint8) (int64, error)
	List(ctx context.Context, status uint8, offset, limit int) ([]Review, error)
	Count(ctx context.Context, status uint8) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	Delete(ctx context.Context, id int64) error
}

func NewReviewGORMDAO(db *egorm.Component) ReviewDAO {
	return &ReviewGORMDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Review{})
}

type ReviewGORMDAO struct {
	db *egorm.Component
}

func (d *ReviewGORMDAO) Insert(ctx context.Context, r Review) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Create(&r).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateReview
		}
	}
	return r.Id, err
}

func (d *ReviewGORMDAO) FindById(ctx context.Context, id int64) (Review, error) {
	var r Review
	err := d.db.WithContext(ctx).First(&r, "id = ?", id).Error
	return r, err
}

func (d *ReviewGORMDAO) ListByProduct(ctx context.Context, productSN string, status uint8, offset, limit int) ([]Review, error) {
	var res []Review
	query := d.db.WithContext(ctx).Where("product_sn = ?", productSN)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) CountByProduct(ctx context.Context, productSN string, status uint8) (int64, error) {
	var res int64
	query := d.db.WithContext(ctx).Model(&Review{}).Where("product_sn = ?", productSN)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) List(ctx context.Context, status uint8, offset, limit int) ([]Review, error) {
	var res []Review
	query := d.db.WithContext(ctx).Model(&Review{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var res int64
	query := d.db.WithContext(ctx).Model(&Review{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Review{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ReviewGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Review{}, id).Error
}

type Review struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProductSN string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_product_uid,priority:1;comment:商品序列号"`
	Uid       int64  `gorm:"not null;uniqueIndex:uniq_product_uid,priority:2"`
	Rating    int64  `gorm:"type:tinyint unsigned;not null;comment:1到5"`
	Content   string `gorm:"type:text"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_review_status;comment:1-待审核 2-通过 3-拒绝"`
	Ctime     int64
	Utime     int64
}
