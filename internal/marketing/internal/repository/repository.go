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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/marketing/internal/domain"
	"github.com/ecodeclub/emall/internal/marketing/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/repository.mock.go CampaignRepository
type CampaignRepository interface {
	Save(ctx context.Context, c domain.Campaign) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Campaign, error)
	List(ctx context.Context, offset, limit int) ([]domain.Campaign, error)
	Total(ctx context.Context) (int64, error)
	MarkSending(ctx context.Context, id int64) error
	MarkSent(ctx context.Context, id int64, sentCount, failedCount int64) error
}

func NewCampaignRepository(d dao.CampaignDAO) CampaignRepository {
	return &campaignRepository{dao: d}
}

type campaignRepository struct {
	dao dao.CampaignDAO
}

func (r *campaignRepository) Save(ctx context.Context, c domain.Campaign) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *campaignRepository) FindById(ctx context.Context, id int64) (domain.Campaign, error) {
	c, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	return r.toDomain(c), nil
}

func (r *campaignRepository) List(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Campaign) domain.Campaign {
		return r.toDomain(src)
	}), nil
}

func (r *campaignRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *campaignRepository) MarkSending(ctx context.Context, id int64) error {
	return r.dao.MarkSending(ctx, id)
}

func (r *campaignRepository) MarkSent(ctx context.Context, id int64, sentCount, failedCount int64) error {
	return r.dao.MarkSent(ctx, id, sentCount, failedCount)
}

func (r *campaignRepository) toEntity(c domain.Campaign) dao.Campaign {
	return dao.Campaign{
		Id:      c.Id,
		SN:      c.SN,
		Name:    c.Name,
		Subject: c.Subject,
		Body:    c.Body,
		Rule:    string(c.Rule),
		Emails: sqlx.JsonColumn[[]string]{
			Val:   c.Emails,
			Valid: len(c.Emails) > 0,
		},
		Status: c.Status.ToUint8(),
	}
}

func (r *campaignRepository) toDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		Id:          c.Id,
		SN:          c.SN,
		Name:        c.Name,
		Subject:     c.Subject,
		Body:        c.Body,
		Rule:        domain.RecipientRule(c.Rule),
		Emails:      c.Emails.Val,
		Status:      domain.Status(c.Status),
		SentCount:   c.SentCount,
		FailedCount: c.FailedCount,
		SentAt:      c.SentAt,
		Ctime:       c.Ctime,
	}
}
