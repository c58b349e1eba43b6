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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = gorm.ErrRecordNotFound
	// ErrCampaignNotSendable 并发发送时只有一个能把状态从草稿改成发送中
	ErrCampaignNotSendable = errors.New("活动不在可发送状态")
)

//go:generate mockgen -source=./campaign.go -package=daomocks -destination=mocks/campaign.mock.go CampaignDAO
type CampaignDAO interface {
	Save(ctx context.Context, c Campaign) (int64, error)
	FindById(ctx context.Context, id int64) (Campaign, error)
	List(ctx context.Context, offset, limit int) ([]Campaign, error)
	Count(ctx context.Context) (int64, error)
	// MarkSending 条件更新,只有草稿能进入发送中,返回ErrCampaignNotSendable表示抢不到
	MarkSending(ctx context.Context, id int64) error
	// MarkSent 发送完成后回写计数
	MarkSent(ctx context.Context, id int64, sentCount, failedCount int64) error
}

func NewCampaignGORMDAO(db *egorm.Component) CampaignDAO {
	return &CampaignGORMDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Campaign{})
}

type CampaignGORMDAO struct {
	db *egorm.Component
}

func (d *CampaignGORMDAO) Save(ctx context.Context, c Campaign) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := d.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Campaign{}).
		// 发送过的不让改
		Where("id = ? AND status = ?", c.Id, statusDraft).
		Updates(map[string]any{
			"name":    c.Name,
			"subject": c.Subject,
			"body":    c.Body,
			"rule":    c.Rule,
			"emails":  c.Emails,
			"utime":   c.Utime,
		}).Error
	return c.Id, err
}

func (d *CampaignGORMDAO) FindById(ctx context.Context, id int64) (Campaign, error) {
	var c Campaign
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *CampaignGORMDAO) List(ctx context.Context, offset, limit int) ([]Campaign, error) {
	var res []Campaign
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *CampaignGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Campaign{}).Count(&res).Error
	return res, err
}

func (d *CampaignGORMDAO) MarkSending(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ? AND status = ?", id, statusDraft).
		Updates(map[string]any{
			"status": statusSending,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotSendable
	}
	return nil
}

func (d *CampaignGORMDAO) MarkSent(ctx context.Context, id int64, sentCount, failedCount int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       statusSent,
			"sent_count":   sentCount,
			"failed_count": failedCount,
			"sent_at":      now,
			"utime":        now,
		}).Error
}

const (
	statusDraft   uint8 = 1
	statusSending uint8 = 2
	statusSent    uint8 = 3
)

type Campaign struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	SN      string `gorm:"type:varchar(64);uniqueIndex:uniq_campaign_sn"`
	Name    string `gorm:"type:varchar(256);not null"`
	Subject string `gorm:"type:varchar(512);not null"`
	Body    string `gorm:"type:text;comment:HTML正文"`
	Rule    string `gorm:"type:varchar(32);not null;comment:all/newsletter/customers/list"`
	// Emails 规则为list时的收件人
	Emails      sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Status      uint8                     `gorm:"type:tinyint unsigned;not null;default:1;comment:1-草稿 2-发送中 3-已发送"`
	SentCount   int64                     `gorm:"not null;default:0"`
	FailedCount int64                     `gorm:"not null;default:0"`
	SentAt      int64
	Ctime       int64
	Utime       int64
}
