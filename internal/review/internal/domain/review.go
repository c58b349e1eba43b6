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
	// ErrInvalidRating 评分必须是1到5
	ErrInvalidRating = errors.New("评分必须在1到5之间")
)

type Status uint8

const (
	// StatusPending 待审核,买家刚提交
	StatusPending Status = 1
	// StatusApproved 审核通过,对外可见
	StatusApproved Status = 2
	// StatusRejected 审核拒绝
	StatusRejected Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

type Review struct {
	Id        int64
	ProductSN string
	Uid       int64
	Rating    int64
	Content   string
	Status    Status
	Ctime     int64
}

func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
