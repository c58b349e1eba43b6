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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/event"
	"github.com/ecodeclub/emall/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateEmail = repository.ErrUserDuplicate
	// ErrInvalidCredential 邮箱不存在和密码不对统一返回这个,不泄露哪个错了
	ErrInvalidCredential = errors.New("邮箱或密码不正确")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Register 注册本地账号,成功后发出注册事件
	Register(ctx context.Context, email, password, name string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据,邮箱、密码、角色都不会动
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	SetNewsletter(ctx context.Context, uid int64, subscribed bool) error

	SaveAddress(ctx context.Context, addr domain.Address) (int64, error)
	ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error)
	DeleteAddress(ctx context.Context, uid, id int64) error

	// RecipientEmails 按圈选规则返回收件邮箱,营销模块使用
	RecipientEmails(ctx context.Context, rule domain.RecipientRule) ([]string, error)
}

type AdminService interface {
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	Detail(ctx context.Context, id int64) (domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	orderSvc order.AdminService
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository,
	orderSvc order.AdminService,
	p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		orderSvc: orderSvc,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		SN:           shortuuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	u.PasswordHash = ""

	evt := event.RegistrationEvent{Uid: id, Email: email, Name: name}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredential
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredential
	}
	u.PasswordHash = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	return svc.repo.Update(ctx, domain.User{
		Id:    user.Id,
		Name:  user.Name,
		Phone: user.Phone,
	})
}

func (svc *userService) SetNewsletter(ctx context.Context, uid int64, subscribed bool) error {
	return svc.repo.UpdateNewsletter(ctx, uid, subscribed)
}

func (svc *userService) SaveAddress(ctx context.Context, addr domain.Address) (int64, error) {
	return svc.repo.SaveAddress(ctx, addr)
}

func (svc *userService) ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error) {
	return svc.repo.ListAddresses(ctx, uid)
}

func (svc *userService) DeleteAddress(ctx context.Context, uid, id int64) error {
	return svc.repo.DeleteAddress(ctx, uid, id)
}

func (svc *userService) RecipientEmails(ctx context.Context, rule domain.RecipientRule) ([]string, error) {
	switch rule {
	case domain.RecipientAll:
		return svc.repo.Emails(ctx, false)
	case domain.RecipientNewsletter:
		return svc.repo.Emails(ctx, true)
	case domain.RecipientCustomers:
		ids, err := svc.orderSvc.DistinctBuyerIDs(ctx)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		us, err := svc.repo.FindByIds(ctx, ids)
		if err != nil {
			return nil, err
		}
		return slice.Map(us, func(idx int, src domain.User) string {
			return src.Email
		}), nil
	default:
		return nil, fmt.Errorf("未知的收件人规则: %s", rule)
	}
}

type adminService struct {
	repo repository.UserRepository
}

func NewAdminService(repo repository.UserRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	for i := range us {
		us[i].PasswordHash = ""
	}
	return us, total, nil
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}
