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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// ReviewEventName 审核通过事件主题,商品模块消费后更新评分聚合
const ReviewEventName = "review_events"

// ReviewEvent 字段和商品模块消费端保持一致
type ReviewEvent struct {
	ProductSN string `json:"productSN"`
	Rating    int64  `json:"rating"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go ReviewEventProducer
type ReviewEventProducer interface {
	Produce(ctx context.Context, evt ReviewEvent) error
}

func NewReviewEventProducer(q mq.MQ) (ReviewEventProducer, error) {
	p, err := q.Producer(ReviewEventName)
	if err != nil {
		return nil, err
	}
	return &reviewEventProducer{producer: p}, nil
}

type reviewEventProducer struct {
	producer mq.Producer
}

func (p *reviewEventProducer) Produce(ctx context.Context, evt ReviewEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化评价事件失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(evt.ProductSN),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("发送评价事件失败: %w", err)
	}
	return nil
}
