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

package domain

import "errors"

var (
	// ErrCampaignNotSendable 只有草稿状态的活动能发送
	ErrCampaignNotSendable  = errors.New("活动不在可发送状态")
	ErrUnknownRecipientRule = errors.New("未知的收件人规则")
)

type Status uint8

const (
	// StatusDraft 草稿,还没发送过
	StatusDraft Status = 1
	// StatusSending 发送中
	StatusSending Status = 2
	// StatusSent 已发送
	StatusSent Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// RecipientRule 圈选收件人的规则
type RecipientRule string

const (
	RecipientAll        RecipientRule = "all"
	RecipientNewsletter RecipientRule = "newsletter"
	RecipientCustomers  RecipientRule = "customers"
	// RecipientList 运营手填的邮箱列表
	RecipientList RecipientRule = "list"
)

// Campaign 邮件营销活动
type Campaign struct {
	Id      int64
	SN      string
	Name    string
	Subject string
	// Body HTML邮件正文
	Body string
	Rule RecipientRule
	// Emails 规则为list时的收件人
	Emails      []string
	Status      Status
	SentCount   int64
	FailedCount int64
	SentAt      int64
	Ctime       int64
}

func (c Campaign) Sendable() bool {
	return c.Status == StatusDraft
}
