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

	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/review/internal/domain"
	"github.com/ecodeclub/emall/internal/review/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Submit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		review  domain.Review
		wantErr error
	}{
		{
			name:   "提交成功",
			review: domain.Review{ProductSN: "sn-1", Uid: 7, Rating: 5, Content: "很好"},
		},
		{
			name:    "评分过高",
			review:  domain.Review{ProductSN: "sn-1", Uid: 7, Rating: 6},
			wantErr: domain.ErrInvalidRating,
		},
		{
			name:    "评分过低",
			review:  domain.Review{ProductSN: "sn-1", Uid: 7, Rating: 0},
			wantErr: domain.ErrInvalidRating,
		},
		{
			name:    "商品不存在",
			review:  domain.Review{ProductSN: "sn-missing", Uid: 7, Rating: 3},
			wantErr: product.ErrProductNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{}
			svc := NewService(repo, &fakeProductSvc{known: "sn-1"})
			id, err := svc.Submit(context.Background(), tc.review)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, id)
			require.Len(t, repo.created, 1)
			// 新提交的一律待审核
			assert.Equal(t, domain.StatusPending, repo.created[0].Status)
		})
	}
}

func TestAdminService_Approve(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		reviews: map[int64]domain.Review{
			1: {Id: 1, ProductSN: "sn-1", Rating: 4, Status: domain.StatusPending},
		},
	}
	producer := &fakeProducer{}
	svc := NewAdminService(repo, producer)

	require.NoError(t, svc.Approve(context.Background(), 1))
	assert.Equal(t, domain.StatusApproved, repo.lastStatus)
	require.Len(t, producer.events, 1)
	assert.Equal(t, "sn-1", producer.events[0].ProductSN)
	assert.Equal(t, int64(4), producer.events[0].Rating)
}

func TestAdminService_Reject(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		reviews: map[int64]domain.Review{
			1: {Id: 1, ProductSN: "sn-1", Rating: 4, Status: domain.StatusPending},
		},
	}
	producer := &fakeProducer{}
	svc := NewAdminService(repo, producer)

	require.NoError(t, svc.Reject(context.Background(), 1))
	assert.Equal(t, domain.StatusRejected, repo.lastStatus)
	// 拒绝不发事件
	assert.Empty(t, producer.events)
}

type fakeRepo struct {
	reviews    map[int64]domain.Review
	created    []domain.Review
	lastStatus domain.Status
}

func (f *fakeRepo) Create(_ context.Context, r domain.Review) (int64, error) {
	f.created = append(f.created, r)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeRepo) ListByProduct(_ context.Context, _ string, _ domain.Status, _, _ int) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeRepo) TotalByProduct(_ context.Context, _ string, _ domain.Status) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.Status, _, _ int) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeRepo) Total(_ context.Context, _ domain.Status) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.Status) error {
	f.lastStatus = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeProductSvc struct {
	known string
}

func (f *fakeProductSvc) FindBySN(_ context.Context, sn string) (product.Product, error) {
	if sn != f.known {
		return product.Product{}, product.ErrProductNotFound
	}
	return product.Product{SN: sn}, nil
}

func (f *fakeProductSvc) List(_ context.Context, _ string, _, _ int) ([]product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductSvc) ListCategories(_ context.Context) ([]product.Category, error) {
	return nil, nil
}

func (f *fakeProductSvc) IncrRating(_ context.Context, _ string, _ int64) error {
	return nil
}

type fakeProducer struct {
	events []event.ReviewEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.ReviewEvent) error {
	f.events = append(f.events, evt)
	return nil
}
