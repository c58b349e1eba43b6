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

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1715000000123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name         string
		input        int64
		wantLastFour string
	}{
		{
			name:         "个位数ID补零",
			input:        7,
			wantLastFour: "0007",
		},
		{
			name:         "超过四位取后四位",
			input:        123456789,
			wantLastFour: "6789",
		},
		{
			name:         "整万取0000",
			input:        10000,
			wantLastFour: "0000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)
			require.NoError(t, err)
			assert.Len(t, sn, 32)
			assert.Equal(t, tc.wantLastFour, sn[13:17])
		})
	}
}

func TestGenerator_Unique(t *testing.T) {
	sng := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		sn, err := sng.Generate(int64(i))
		require.NoError(t, err)
		_, ok := seen[sn]
		assert.False(t, ok)
		seen[sn] = struct{}{}
	}
}
