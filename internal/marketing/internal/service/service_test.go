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
	"testing"

	"github.com/ecodeclub/emall/internal/email"
	emailmocks "github.com/ecodeclub/emall/internal/email/mocks"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SendWelcomeEmail_GatewayError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	sendErr := errors.New("网关超时")
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m email.Mail) error {
			assert.Equal(t, "noreply@emall.com", m.From)
			assert.Equal(t, "tom@example.com", m.To)
			assert.Equal(t, "欢迎加入", m.Subject)
			return sendErr
		})

	svc := NewService(&fakeUserSvc{}, emailSvc, "noreply@emall.com")
	err := svc.SendWelcomeEmail(context.Background(), "tom@example.com", "Tom")
	assert.ErrorIs(t, err, sendErr)
}

func TestService_SendWelcomeEmail_EmptyNameFallsBackToAddress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m email.Mail) error {
			assert.Contains(t, string(m.Body), "tom@example.com")
			return nil
		})

	svc := NewService(&fakeUserSvc{}, emailSvc, "noreply@emall.com")
	require.NoError(t, svc.SendWelcomeEmail(context.Background(), "tom@example.com", ""))
}

func TestService_SendOrderConfirmation_SubjectCarriesOrderSN(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m email.Mail) error {
			assert.Equal(t, "订单确认 - order-sn-9", m.Subject)
			assert.Equal(t, "buyer@example.com", m.To)
			return nil
		})

	svc := NewService(&fakeUserSvc{profile: user.User{Id: 9, Email: "buyer@example.com"}},
		emailSvc, "noreply@emall.com")
	require.NoError(t, svc.SendOrderConfirmation(context.Background(), 9, "order-sn-9", 12345))
}
