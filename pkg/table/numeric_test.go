// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		cell string
		want float64
	}{
		{"1", 1},
		{"-2.5", -2.5},
		{"1e3", 1000},
		{"+0.25", 0.25},
		{"inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"0.5", 0.5},
		{"007", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToNumber(tt.cell), "cell %q", tt.cell)
	}

	for _, cell := range []string{"", "abc", " 1", "1,5", "12px", "NaN", "1_000", "0x1p3", "-0X10p0", "+0x1.8p1", "1__0"} {
		assert.True(t, math.IsNaN(ToNumber(cell)), "cell %q should be NaN", cell)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{-27, "-27"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v))
	}
}

func TestFormatNumberRoundTrips(t *testing.T) {
	for _, v := range []float64{0.1 + 0.2, 123456.789, -1e-300, 5e300, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		assert.Equal(t, v, ToNumber(FormatNumber(v)), "value %v should survive formatting", v)
	}
}
