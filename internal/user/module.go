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

package user

import (
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/event"
	"github.com/ecodeclub/emall/internal/user/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/user/internal/service"
	"github.com/ecodeclub/emall/internal/user/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	UserService  = service.UserService
	AdminService = service.AdminService
	User         = domain.User
	Address      = domain.Address
	Role         = domain.Role
	// RecipientRule 营销模块圈选收件人的规则
	RecipientRule = domain.RecipientRule
	// RegistrationEvent 注册成功事件,营销模块按同样的结构消费
	RegistrationEvent = event.RegistrationEvent
)

const (
	RoleMember = domain.RoleMember
	RoleAdmin  = domain.RoleAdmin

	RecipientAll        = domain.RecipientAll
	RecipientNewsletter = domain.RecipientNewsletter
	RecipientCustomers  = domain.RecipientCustomers

	RegistrationEventName = event.RegistrationEventName
)

var (
	ErrUserNotFound      = dao.ErrUserNotFound
	ErrDuplicateEmail    = service.ErrDuplicateEmail
	ErrInvalidCredential = service.ErrInvalidCredential
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      UserService
	AdminSvc AdminService
}
