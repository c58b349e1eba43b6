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

package order

import (
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/job"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
)

type (
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	Service               = service.Service
	AdminService          = service.AdminService
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	Address               = domain.Address
	Status                = domain.Status
	PaymentStatus         = domain.PaymentStatus
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
	PaymentEvent          = event.PaymentEvent
)

const (
	StatusPending       = domain.StatusPending
	StatusConfirmed     = domain.StatusConfirmed
	PaymentStatusPaid   = domain.PaymentStatusPaid
	PaymentStatusFailed = domain.PaymentStatusFailed
	// PaymentEventName 支付模块发布支付结果使用的主题
	PaymentEventName = event.PaymentEventName
)

var (
	ErrOrderNotFound         = dao.ErrOrderNotFound
	NewCloseExpiredOrdersJob = job.NewCloseExpiredOrdersJob
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	AdminSvc AdminService
	Consumer *event.PaymentEventConsumer
}
