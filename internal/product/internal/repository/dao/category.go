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
)

type CategoryDAO interface {
	FindBySN(ctx context.Context, sn string) (Category, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Category, error)
	List(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, c Category) (int64, error)
}

type CategoryGORMDAO struct {
	db *egorm.Component
}

func NewCategoryGORMDAO(db *egorm.Component) CategoryDAO {
	return &CategoryGORMDAO{db: db}
}

func (d *CategoryGORMDAO) FindBySN(ctx context.Context, sn string) (Category, error) {
	var res Category
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) List(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Order("ctime ASC").Find(&res).Error
	return res, err
}

func (d *CategoryGORMDAO) Save(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := d.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"sn":    c.SN,
			"name":  c.Name,
			"utime": now,
		}).Error
	return c.Id, err
}

type Category struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:类目自增ID"`
	SN    string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_category_sn;comment:类目序列号"`
	Name  string `gorm:"type:varchar(255);not null;comment:类目名称"`
	Ctime int64
	Utime int64
}
