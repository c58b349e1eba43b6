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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrUserNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 只更新非零字段
	Update(ctx context.Context, u domain.User) error
	UpdateNewsletter(ctx context.Context, uid int64, subscribed bool) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
	Emails(ctx context.Context, onlyNewsletter bool) ([]string, error)

	SaveAddress(ctx context.Context, a domain.Address) (int64, error)
	ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error)
	DeleteAddress(ctx context.Context, uid, id int64) error
}

// CachedUserRepository 用户信息读多写少,加了一层缓存
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.toEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) UpdateNewsletter(ctx context.Context, uid int64, subscribed bool) error {
	err := ur.dao.UpdateNewsletter(ctx, uid, subscribed)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return ur.toDomain(u), nil
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	res, err := ur.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	u, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	res = ur.toDomain(u)
	if err = ur.cache.Set(ctx, res); err != nil {
		ur.logger.Error("回写用户缓存失败",
			elog.FieldErr(err), elog.Int64("uid", id))
	}
	return res, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), nil
}

func (ur *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), nil
}

func (ur *CachedUserRepository) Total(ctx context.Context) (int64, error) {
	return ur.dao.Count(ctx)
}

func (ur *CachedUserRepository) Emails(ctx context.Context, onlyNewsletter bool) ([]string, error) {
	return ur.dao.Emails(ctx, onlyNewsletter)
}

func (ur *CachedUserRepository) SaveAddress(ctx context.Context, a domain.Address) (int64, error) {
	return ur.dao.SaveAddress(ctx, dao.Address{
		Id:        a.Id,
		Uid:       a.Uid,
		Recipient: a.Recipient,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
	})
}

func (ur *CachedUserRepository) ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error) {
	as, err := ur.dao.ListAddresses(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Address) domain.Address {
		return domain.Address{
			Id:        src.Id,
			Uid:       src.Uid,
			Recipient: src.Recipient,
			Phone:     src.Phone,
			Street:    src.Street,
			City:      src.City,
			Province:  src.Province,
			Zip:       src.Zip,
			Country:   src.Country,
		}
	}), nil
}

func (ur *CachedUserRepository) DeleteAddress(ctx context.Context, uid, id int64) error {
	return ur.dao.DeleteAddress(ctx, uid, id)
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:         u.Id,
		SN:         u.SN,
		Email:      u.Email,
		Phone:      u.Phone,
		Name:       u.Name,
		Password:   u.PasswordHash,
		Role:       u.Role.ToUint8(),
		Newsletter: u.Newsletter,
	}
}

func (ur *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:           u.Id,
		SN:           u.SN,
		Email:        u.Email,
		Phone:        u.Phone,
		Name:         u.Name,
		PasswordHash: u.Password,
		Role:         domain.Role(u.Role),
		Newsletter:   u.Newsletter,
		Ctime:        u.Ctime,
	}
}
