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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
)

type ProductCache interface {
	GetProduct(ctx context.Context, sn string) (domain.Product, error)
	SetProduct(ctx context.Context, p domain.Product) error
	DelProduct(ctx context.Context, sn string) error
}

type ProductECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewProductECache(ec ecache.Cache) ProductCache {
	return &ProductECache{
		ec: &ecache.NamespaceCache{
			Namespace: "product:detail:",
			C:         ec,
		},
		expiration: 10 * time.Minute,
	}
}

func (p *ProductECache) GetProduct(ctx context.Context, sn string) (domain.Product, error) {
	val, err := p.ec.Get(ctx, p.productKey(sn)).AsBytes()
	if err != nil {
		return domain.Product{}, err
	}
	var res domain.Product
	err = json.Unmarshal(val, &res)
	return res, err
}

func (p *ProductECache) SetProduct(ctx context.Context, prod domain.Product) error {
	val, err := json.Marshal(prod)
	if err != nil {
		return err
	}
	return p.ec.Set(ctx, p.productKey(prod.SN), val, p.expiration)
}

func (p *ProductECache) DelProduct(ctx context.Context, sn string) error {
	_, err := p.ec.Delete(ctx, p.productKey(sn))
	return err
}

func (p *ProductECache) productKey(sn string) string {
	return fmt.Sprintf("sn:%s", sn)
}
