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
	"sync"
	"sync/atomic"

	"github.com/ecodeclub/emall/internal/email"
	"github.com/ecodeclub/emall/internal/marketing/internal/domain"
	"github.com/ecodeclub/emall/internal/marketing/internal/repository"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

// batchSize 每一批发送的收件人数量
const batchSize = 50

type AdminService interface {
	Save(ctx context.Context, c domain.Campaign) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Campaign, int64, error)
	Detail(ctx context.Context, id int64) (domain.Campaign, error)
	// Send 解析收件人、去重后分批发送,单个收件人失败只计数不重试。
	// 同一个活动只能发送一次
	Send(ctx context.Context, id int64) (domain.Campaign, error)
}

func NewAdminService(repo repository.CampaignRepository,
	userSvc user.UserService,
	emailSvc email.Service,
	from string) AdminService {
	return &adminService{
		repo:     repo,
		userSvc:  userSvc,
		emailSvc: emailSvc,
		from:     from,
		logger:   elog.DefaultLogger,
	}
}

type adminService struct {
	repo     repository.CampaignRepository
	userSvc  user.UserService
	emailSvc email.Service
	from     string
	logger   *elog.Component
}

func (s *adminService) Save(ctx context.Context, c domain.Campaign) (int64, error) {
	if c.Id == 0 {
		c.SN = shortuuid.New()
		c.Status = domain.StatusDraft
	}
	return s.repo.Save(ctx, c)
}

func (s *adminService) List(ctx context.Context, offset, limit int) ([]domain.Campaign, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Campaign
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
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
	return cs, total, nil
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.Campaign, error) {
	return s.repo.FindById(ctx, id)
}

func (s *adminService) Send(ctx context.Context, id int64) (domain.Campaign, error) {
	c, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !c.Sendable() {
		return domain.Campaign{}, domain.ErrCampaignNotSendable
	}
	// 条件更新抢占发送权,防止并发重复发送
	if err = s.repo.MarkSending(ctx, id); err != nil {
		return domain.Campaign{}, err
	}

	recipients, err := s.resolveRecipients(ctx, c)
	if err != nil {
		return domain.Campaign{}, err
	}
	sent, failed := s.sendAll(ctx, c, recipients)
	if err = s.repo.MarkSent(ctx, id, sent, failed); err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.StatusSent
	c.SentCount = sent
	c.FailedCount = failed
	return c, nil
}

func (s *adminService) resolveRecipients(ctx context.Context, c domain.Campaign) ([]string, error) {
	var (
		emails []string
		err    error
	)
	switch c.Rule {
	case domain.RecipientList:
		emails = c.Emails
	case domain.RecipientAll:
		emails, err = s.userSvc.RecipientEmails(ctx, user.RecipientAll)
	case domain.RecipientNewsletter:
		emails, err = s.userSvc.RecipientEmails(ctx, user.RecipientNewsletter)
	case domain.RecipientCustomers:
		emails, err = s.userSvc.RecipientEmails(ctx, user.RecipientCustomers)
	default:
		return nil, domain.ErrUnknownRecipientRule
	}
	if err != nil {
		return nil, err
	}
	return dedupe(emails), nil
}

// sendAll 分批发送,返回成功和失败的数量
func (s *adminService) sendAll(ctx context.Context, c domain.Campaign, recipients []string) (sent, failed int64) {
	var failedCount atomic.Int64
	for begin := 0; begin < len(recipients); begin += batchSize {
		end := begin + batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		var wg sync.WaitGroup
		for _, to := range recipients[begin:end] {
			to := to
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.emailSvc.SendMail(ctx, email.Mail{
					From:    s.from,
					To:      to,
					Subject: c.Subject,
					Body:    []byte(c.Body),
				})
				if err != nil {
					failedCount.Add(1)
					s.logger.Error("发送营销邮件失败",
						elog.FieldErr(err),
						elog.String("campaign", c.SN),
						elog.String("to", to))
				}
			}()
		}
		wg.Wait()
	}
	failed = failedCount.Load()
	return int64(len(recipients)) - failed, failed
}

func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	res := make([]string, 0, len(emails))
	for _, e := range emails {
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		res = append(res, e)
	}
	return res
}
