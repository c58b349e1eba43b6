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

import (
	"github.com/ecodeclub/emall/internal/review/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	reviewNotFoundResult = ginx.Result{
		Code: errs.ReviewNotFound.Code,
		Msg:  errs.ReviewNotFound.Msg,
	}
	duplicateReviewResult = ginx.Result{
		Code: errs.DuplicateReview.Code,
		Msg:  errs.DuplicateReview.Msg,
	}
	invalidRatingResult = ginx.Result{
		Code: errs.InvalidRating.Code,
		Msg:  errs.InvalidRating.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
