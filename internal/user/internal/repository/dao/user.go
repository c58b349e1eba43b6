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
	ErrUserNotFound = gorm.ErrRecordNotFound
	// ErrUserDuplicate 邮箱撞了唯一索引
	ErrUserDuplicate = errors.New("用户已经注册")
)

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	UpdateNewsletter(ctx context.Context, uid int64, subscribed bool) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	// Emails 返回收件邮箱。onlyNewsletter 为 true 时只要订阅用户
	Emails(ctx context.Context, onlyNewsletter bool) ([]string, error)

	SaveAddress(ctx context.Context, a Address) (int64, error)
	ListAddresses(ctx context.Context, uid int64) ([]Address, error)
	DeleteAddress(ctx context.Context, uid, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{}, &Address{})
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) UpdateNewsletter(ctx context.Context, uid int64, subscribed bool) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"newsletter": subscribed,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&res).Error
	return res, err
}

func (ud *GORMUserDAO) Emails(ctx context.Context, onlyNewsletter bool) ([]string, error) {
	var res []string
	query := ud.db.WithContext(ctx).Model(&User{})
	if onlyNewsletter {
		query = query.Where("newsletter = ?", true)
	}
	err := query.Pluck("email", &res).Error
	return res, err
}

func (ud *GORMUserDAO) SaveAddress(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Utime = now
	if a.Id == 0 {
		a.Ctime = now
		err := ud.db.WithContext(ctx).Create(&a).Error
		return a.Id, err
	}
	err := ud.db.WithContext(ctx).Model(&Address{}).
		// uid 条件防止改到别人的地址
		Where("id = ? AND uid = ?", a.Id, a.Uid).
		Updates(map[string]any{
			"recipient": a.Recipient,
			"phone":     a.Phone,
			"street":    a.Street,
			"city":      a.City,
			"province":  a.Province,
			"zip":       a.Zip,
			"country":   a.Country,
			"utime":     a.Utime,
		}).Error
	return a.Id, err
}

func (ud *GORMUserDAO) ListAddresses(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := ud.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (ud *GORMUserDAO) DeleteAddress(ctx context.Context, uid, id int64) error {
	return ud.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Address{}).Error
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	SN       string `gorm:"type:varchar(64);uniqueIndex:uniq_user_sn"`
	Email    string `gorm:"type:varchar(256);uniqueIndex:uniq_user_email"`
	Phone    string `gorm:"type:varchar(32)"`
	Name     string `gorm:"type:varchar(128)"`
	Password string `gorm:"type:varchar(128);comment:bcrypt哈希"`
	Role     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1-会员 2-管理员"`
	// Newsletter 是否订阅营销邮件
	Newsletter bool `gorm:"not null;default:false"`
	Ctime      int64
	Utime      int64
}

type Address struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"not null;index:idx_address_uid"`
	Recipient string `gorm:"type:varchar(128)"`
	Phone     string `gorm:"type:varchar(32)"`
	Street    string `gorm:"type:varchar(512)"`
	City      string `gorm:"type:varchar(128)"`
	Province  string `gorm:"type:varchar(128)"`
	Zip       string `gorm:"type:varchar(32)"`
	Country   string `gorm:"type:varchar(128)"`
	Ctime     int64
	Utime     int64
}
