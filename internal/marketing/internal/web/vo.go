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

package web

import "github.com/ecodeclub/emall/internal/marketing/internal/domain"

type SaveReq struct {
	Campaign Campaign `json:"campaign"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Campaign struct {
	Id          int64    `json:"id"`
	SN          string   `json:"sn"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Rule        string   `json:"rule"`
	Emails      []string `json:"emails,omitempty"`
	Status      uint8    `json:"status"`
	SentCount   int64    `json:"sentCount"`
	FailedCount int64    `json:"failedCount"`
	SentAt      int64    `json:"sentAt"`
	Ctime       int64    `json:"ctime"`
}

func newCampaign(c domain.Campaign) Campaign {
	return Campaign{
		Id:          c.Id,
		SN:          c.SN,
		Name:        c.Name,
		Subject:     c.Subject,
		Body:        c.Body,
		Rule:        string(c.Rule),
		Emails:      c.Emails,
		Status:      c.Status.ToUint8(),
		SentCount:   c.SentCount,
		FailedCount: c.FailedCount,
		SentAt:      c.SentAt,
		Ctime:       c.Ctime,
	}
}

func (c Campaign) toDomain() domain.Campaign {
	return domain.Campaign{
		Id:      c.Id,
		Name:    c.Name,
		Subject: c.Subject,
		Body:    c.Body,
		Rule:    domain.RecipientRule(c.Rule),
		Emails:  c.Emails,
	}
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type ListResp struct {
	Total     int64      `json:"total"`
	Campaigns []Campaign `json:"campaigns"`
}
