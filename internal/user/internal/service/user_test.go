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
	"testing"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/event"
	"github.com/ecodeclub/emall/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	producer := &fakeProducer{}
	svc := NewUserService(repo, &fakeOrderAdminSvc{}, producer)

	u, err := svc.Register(context.Background(), "tom@example.com", "hunter2whatever", "Tom")
	require.NoError(t, err)
	assert.NotZero(t, u.Id)
	assert.NotEmpty(t, u.SN)
	assert.Equal(t, domain.RoleMember, u.Role)
	// 返回值不带哈希,落库的带
	assert.Empty(t, u.PasswordHash)
	stored := repo.users[u.Id]
	require.NotEmpty(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2whatever")))
	// 注册事件
	require.Len(t, producer.events, 1)
	assert.Equal(t, u.Id, producer.events[0].Uid)
	assert.Equal(t, "tom@example.com", producer.events[0].Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	producer := &fakeProducer{}
	svc := NewUserService(repo, &fakeOrderAdminSvc{}, producer)

	_, err := svc.Register(context.Background(), "tom@example.com", "hunter2whatever", "Tom")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "tom@example.com", "another-password", "Tom2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, producer.events, 1)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := NewUserService(repo, &fakeOrderAdminSvc{}, &fakeProducer{})
	_, err := svc.Register(context.Background(), "tom@example.com", "hunter2whatever", "Tom")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "登录成功",
			email:    "tom@example.com",
			password: "hunter2whatever",
		},
		{
			name:     "密码错误",
			email:    "tom@example.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredential,
		},
		{
			name:     "邮箱不存在",
			email:    "nobody@example.com",
			password: "hunter2whatever",
			wantErr:  ErrInvalidCredential,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.email, u.Email)
			assert.Empty(t, u.PasswordHash)
		})
	}
}

func TestUserService_RecipientEmails(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := NewUserService(repo, &fakeOrderAdminSvc{buyerIDs: []int64{1, 3}}, &fakeProducer{})
	for _, u := range []domain.User{
		{Id: 1, Email: "a@example.com", Newsletter: true},
		{Id: 2, Email: "b@example.com"},
		{Id: 3, Email: "c@example.com", Newsletter: true},
	} {
		repo.users[u.Id] = u
		repo.byEmail[u.Email] = u.Id
	}

	all, err := svc.RecipientEmails(context.Background(), domain.RecipientAll)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com", "c@example.com"}, all)

	subscribed, err := svc.RecipientEmails(context.Background(), domain.RecipientNewsletter)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@example.com", "c@example.com"}, subscribed)

	customers, err := svc.RecipientEmails(context.Background(), domain.RecipientCustomers)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@example.com", "c@example.com"}, customers)

	_, err = svc.RecipientEmails(context.Background(), domain.RecipientRule("vip"))
	assert.Error(t, err)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   make(map[int64]domain.User),
		byEmail: make(map[string]int64),
	}
}

type fakeRepo struct {
	nextID  int64
	users   map[int64]domain.User
	byEmail map[string]int64
}

func (f *fakeRepo) Create(_ context.Context, u domain.User) (int64, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return 0, repository.ErrUserDuplicate
	}
	f.nextID++
	u.Id = f.nextID
	f.users[u.Id] = u
	f.byEmail[u.Email] = u.Id
	return u.Id, nil
}

func (f *fakeRepo) Update(_ context.Context, u domain.User) error {
	cur := f.users[u.Id]
	if u.Name != "" {
		cur.Name = u.Name
	}
	if u.Phone != "" {
		cur.Phone = u.Phone
	}
	f.users[u.Id] = cur
	return nil
}

func (f *fakeRepo) UpdateNewsletter(_ context.Context, uid int64, subscribed bool) error {
	cur := f.users[uid]
	cur.Newsletter = subscribed
	f.users[uid] = cur
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return f.users[id], nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByIds(_ context.Context, ids []int64) ([]domain.User, error) {
	res := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	res := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, nil
}

func (f *fakeRepo) Total(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeRepo) Emails(_ context.Context, onlyNewsletter bool) ([]string, error) {
	var res []string
	for _, u := range f.users {
		if onlyNewsletter && !u.Newsletter {
			continue
		}
		res = append(res, u.Email)
	}
	return res, nil
}

func (f *fakeRepo) SaveAddress(_ context.Context, a domain.Address) (int64, error) {
	return a.Id, nil
}

func (f *fakeRepo) ListAddresses(_ context.Context, _ int64) ([]domain.Address, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteAddress(_ context.Context, _, _ int64) error {
	return nil
}

type fakeOrderAdminSvc struct {
	buyerIDs []int64
}

func (f *fakeOrderAdminSvc) List(_ context.Context, _, _ int) ([]order.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderAdminSvc) Detail(_ context.Context, _ int64) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeOrderAdminSvc) UpdateStatus(_ context.Context, _ int64, _ order.Status) error {
	return nil
}

func (f *fakeOrderAdminSvc) Refund(_ context.Context, _ int64, _ int64, _ string) error {
	return nil
}

func (f *fakeOrderAdminSvc) DistinctBuyerIDs(_ context.Context) ([]int64, error) {
	return f.buyerIDs, nil
}

type fakeProducer struct {
	events []event.RegistrationEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.RegistrationEvent) error {
	f.events = append(f.events, evt)
	return nil
}
