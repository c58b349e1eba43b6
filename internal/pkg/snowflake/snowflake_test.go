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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateCode(t *testing.T) {
	g, err := NewGenerator(1)
	require.NoError(t, err)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code := g.GenerateCode()
		assert.NotEmpty(t, code)
		_, ok := seen[code]
		assert.False(t, ok)
		seen[code] = struct{}{}
	}
}

func TestNewGenerator_IllegalNode(t *testing.T) {
	_, err := NewGenerator(-1)
	assert.Error(t, err)
}
