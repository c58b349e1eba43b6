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

package ioc

import (
	"github.com/ecodeclub/emall/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitSnowflakeGenerator() *snowflake.Generator {
	nodeID := econf.GetInt64("snowflake.nodeID")
	gen, err := snowflake.NewGenerator(nodeID)
	if err != nil {
		elog.Panic("初始化雪花算法生成器失败", elog.FieldErr(err))
	}
	return gen
}
