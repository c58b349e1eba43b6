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

package marketing

import (
	"github.com/ecodeclub/emall/internal/marketing/internal/domain"
	"github.com/ecodeclub/emall/internal/marketing/internal/event/consumer"
	"github.com/ecodeclub/emall/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/marketing/internal/service"
	"github.com/ecodeclub/emall/internal/marketing/internal/web"
)

type (
	AdminHandler              = web.AdminHandler
	Service                   = service.Service
	AdminService              = service.AdminService
	Campaign                  = domain.Campaign
	Status                    = domain.Status
	RecipientRule             = domain.RecipientRule
	OrderEventConsumer        = consumer.OrderEventConsumer
	RegistrationEventConsumer = consumer.RegistrationEventConsumer
)

const (
	StatusDraft   = domain.StatusDraft
	StatusSending = domain.StatusSending
	StatusSent    = domain.StatusSent

	RecipientAll        = domain.RecipientAll
	RecipientNewsletter = domain.RecipientNewsletter
	RecipientCustomers  = domain.RecipientCustomers
	RecipientList       = domain.RecipientList
)

var (
	ErrCampaignNotFound    = dao.ErrCampaignNotFound
	ErrCampaignNotSendable = domain.ErrCampaignNotSendable
)

type Module struct {
	AdminHdl      *AdminHandler
	Svc           Service
	AdminSvc      AdminService
	OrderC        *OrderEventConsumer
	RegistrationC *RegistrationEventConsumer
}
