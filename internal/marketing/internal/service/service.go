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
	"fmt"

	"github.com/ecodeclub/emall/internal/email"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	// SendWelcomeEmail 注册成功后的欢迎邮件
	SendWelcomeEmail(ctx context.Context, to, name string) error
	// SendOrderConfirmation 下单成功后的确认邮件
	SendOrderConfirmation(ctx context.Context, buyerID int64, orderSN string, total int64) error
}

func NewService(userSvc user.UserService, emailSvc email.Service, from string) Service {
	return &service{
		userSvc:  userSvc,
		emailSvc: emailSvc,
		from:     from,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	userSvc  user.UserService
	emailSvc email.Service
	from     string
	logger   *elog.Component
}

func (s *service) SendWelcomeEmail(ctx context.Context, to, name string) error {
	if name == "" {
		name = to
	}
	body := fmt.Sprintf(`<p>%s,你好!</p><p>感谢注册,祝你购物愉快。</p>`, name)
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      to,
		Subject: "欢迎加入",
		Body:    []byte(body),
	})
}

func (s *service) SendOrderConfirmation(ctx context.Context, buyerID int64, orderSN string, total int64) error {
	u, err := s.userSvc.Profile(ctx, buyerID)
	if err != nil {
		return fmt.Errorf("查询买家信息失败: %w", err)
	}
	body := fmt.Sprintf(`<p>你的订单 %s 已创建,应付金额 %.2f 元。</p>`,
		orderSN, float64(total)/100)
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      u.Email,
		Subject: fmt.Sprintf("订单确认 - %s", orderSN),
		Body:    []byte(body),
	})
}
