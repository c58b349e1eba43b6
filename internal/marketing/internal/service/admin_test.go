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
	"strings"
	"sync"
	"testing"

	"github.com/ecodeclub/emall/internal/email"
	"github.com/ecodeclub/emall/internal/marketing/internal/domain"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Send(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{campaign: domain.Campaign{
		Id: 1, SN: "camp-1", Subject: "大促", Body: "<p>全场五折</p>",
		Rule: domain.RecipientNewsletter, Status: domain.StatusDraft,
	}}
	// 重复邮箱只发一次
	userSvc := &fakeUserSvc{
		emails: []string{"a@example.com", "b@example.com", "a@example.com", ""},
	}
	emailSvc := newFakeEmailSvc()
	svc := NewAdminService(repo, userSvc, emailSvc, "noreply@emall.com")

	c, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, c.Status)
	assert.Equal(t, int64(2), c.SentCount)
	assert.Equal(t, int64(0), c.FailedCount)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, emailSvc.recipients())
	assert.True(t, repo.sendingMarked)
	assert.Equal(t, int64(2), repo.sentCount)
}

func TestAdminService_Send_ExplicitList(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{campaign: domain.Campaign{
		Id: 1, Subject: "会员专享", Rule: domain.RecipientList,
		Emails: []string{"vip@example.com"}, Status: domain.StatusDraft,
	}}
	emailSvc := newFakeEmailSvc()
	svc := NewAdminService(repo, &fakeUserSvc{}, emailSvc, "noreply@emall.com")

	c, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.SentCount)
	assert.Equal(t, []string{"vip@example.com"}, emailSvc.recipients())
}

func TestAdminService_Send_Batches(t *testing.T) {
	t.Parallel()
	emails := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		emails = append(emails, fmt.Sprintf("u%d@example.com", i))
	}
	repo := &fakeRepo{campaign: domain.Campaign{
		Id: 1, Subject: "上新", Rule: domain.RecipientAll, Status: domain.StatusDraft,
	}}
	// u7开头的都发不出去
	emailSvc := newFakeEmailSvc()
	emailSvc.failPrefix = "u7"
	svc := NewAdminService(repo, &fakeUserSvc{emails: emails}, emailSvc, "noreply@emall.com")

	c, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	// u7 u70..u79 共11个失败
	assert.Equal(t, int64(11), c.FailedCount)
	assert.Equal(t, int64(109), c.SentCount)
	assert.Len(t, emailSvc.recipients(), 109)
}

func TestAdminService_Send_NotSendable(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{campaign: domain.Campaign{
		Id: 1, Rule: domain.RecipientAll, Status: domain.StatusSent,
	}}
	emailSvc := newFakeEmailSvc()
	svc := NewAdminService(repo, &fakeUserSvc{emails: []string{"a@example.com"}}, emailSvc, "noreply@emall.com")

	_, err := svc.Send(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCampaignNotSendable)
	assert.Empty(t, emailSvc.recipients())
}

func TestService_SendWelcomeEmail(t *testing.T) {
	t.Parallel()
	emailSvc := newFakeEmailSvc()
	svc := NewService(&fakeUserSvc{}, emailSvc, "noreply@emall.com")

	require.NoError(t, svc.SendWelcomeEmail(context.Background(), "tom@example.com", "Tom"))
	require.Len(t, emailSvc.sent, 1)
	assert.Equal(t, "tom@example.com", emailSvc.sent[0].To)
	assert.Equal(t, "noreply@emall.com", emailSvc.sent[0].From)
}

func TestService_SendOrderConfirmation(t *testing.T) {
	t.Parallel()
	emailSvc := newFakeEmailSvc()
	svc := NewService(&fakeUserSvc{profile: user.User{Id: 7, Email: "tom@example.com"}}, emailSvc, "noreply@emall.com")

	require.NoError(t, svc.SendOrderConfirmation(context.Background(), 7, "order-sn-1", 9400))
	require.Len(t, emailSvc.sent, 1)
	assert.Equal(t, "tom@example.com", emailSvc.sent[0].To)
	assert.Contains(t, string(emailSvc.sent[0].Body), "order-sn-1")
	assert.Contains(t, string(emailSvc.sent[0].Body), "94.00")
}

type fakeRepo struct {
	campaign      domain.Campaign
	sendingMarked bool
	sentCount     int64
	failedCount   int64
}

func (f *fakeRepo) Save(_ context.Context, c domain.Campaign) (int64, error) {
	return c.Id, nil
}

func (f *fakeRepo) FindById(_ context.Context, _ int64) (domain.Campaign, error) {
	return f.campaign, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Campaign, error) {
	return []domain.Campaign{f.campaign}, nil
}

func (f *fakeRepo) Total(_ context.Context) (int64, error) {
	return 1, nil
}

func (f *fakeRepo) MarkSending(_ context.Context, _ int64) error {
	f.sendingMarked = true
	return nil
}

func (f *fakeRepo) MarkSent(_ context.Context, _ int64, sentCount, failedCount int64) error {
	f.sentCount = sentCount
	f.failedCount = failedCount
	return nil
}

type fakeUserSvc struct {
	emails  []string
	profile user.User
}

func (f *fakeUserSvc) Register(_ context.Context, _, _, _ string) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserSvc) Login(_ context.Context, _, _ string) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserSvc) Profile(_ context.Context, _ int64) (user.User, error) {
	return f.profile, nil
}

func (f *fakeUserSvc) UpdateNonSensitiveInfo(_ context.Context, _ user.User) error {
	return nil
}

func (f *fakeUserSvc) SetNewsletter(_ context.Context, _ int64, _ bool) error {
	return nil
}

func (f *fakeUserSvc) SaveAddress(_ context.Context, _ user.Address) (int64, error) {
	return 0, nil
}

func (f *fakeUserSvc) ListAddresses(_ context.Context, _ int64) ([]user.Address, error) {
	return nil, nil
}

func (f *fakeUserSvc) DeleteAddress(_ context.Context, _, _ int64) error {
	return nil
}

func (f *fakeUserSvc) RecipientEmails(_ context.Context, _ user.RecipientRule) ([]string, error) {
	return f.emails, nil
}

func newFakeEmailSvc() *fakeEmailSvc {
	return &fakeEmailSvc{}
}

type fakeEmailSvc struct {
	mu         sync.Mutex
	sent       []email.Mail
	failPrefix string
}

func (f *fakeEmailSvc) SendMail(_ context.Context, mail email.Mail) error {
	if f.failPrefix != "" && strings.HasPrefix(mail.To, f.failPrefix) {
		return errors.New("投递失败")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, mail)
	return nil
}

func (f *fakeEmailSvc) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		res = append(res, m.To)
	}
	return res
}
