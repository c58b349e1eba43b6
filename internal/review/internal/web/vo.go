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

import "github.com/ecodeclub/emall/internal/review/internal/domain"

type SubmitReq struct {
	ProductSN string `json:"productSN"`
	Rating    int64  `json:"rating"`
	Content   string `json:"content"`
}

type ListReq struct {
	ProductSN string `json:"productSN"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type AdminListReq struct {
	// Status 为0表示不过滤
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Review struct {
	Id        int64  `json:"id"`
	ProductSN string `json:"productSN"`
	Uid       int64  `json:"uid"`
	Rating    int64  `json:"rating"`
	Content   string `json:"content"`
	Status    uint8  `json:"status"`
	Ctime     int64  `json:"ctime"`
}

func newReview(r domain.Review) Review {
	return Review{
		Id:        r.Id,
		ProductSN: r.ProductSN,
		Uid:       r.Uid,
		Rating:    r.Rating,
		Content:   r.Content,
		Status:    r.Status.ToUint8(),
		Ctime:     r.Ctime,
	}
}

type SubmitResp struct {
	ID int64 `json:"id"`
}

type ListResp struct {
	Total   int64    `json:"total"`
	Reviews []Review `json:"reviews"`
}
