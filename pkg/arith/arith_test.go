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

package arith

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}

	tests := []struct {
		name string
		op   Operator
		want []float64
	}{
		{name: "add", op: Add, want: []float64{11, 22, 33}},
		{name: "subtract", op: Subtract, want: []float64{-9, -18, -27}},
		{name: "multiply", op: Multiply, want: []float64{10, 40, 90}},
		{name: "divide", op: Divide, want: []float64{0.1, 0.1, 0.1}},
	}

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(ctx, tt.op, a, b)
			require.NoError(t, err, "Apply should succeed")
			assert.InDeltaSlice(t, tt.want, got, 1e-12, "results should match")
		})
	}
}

func TestApplyNaNAndDivisionByZero(t *testing.T) {
	ctx := context.Background()

	got, err := Apply(ctx, Divide, []float64{1, -1, 0, math.NaN()}, []float64{0, 0, 0, 2})
	require.NoError(t, err, "division by zero is not an error")

	assert.True(t, math.IsInf(got[0], 1), "1/0 should be +Inf")
	assert.True(t, math.IsInf(got[1], -1), "-1/0 should be -Inf")
	assert.True(t, math.IsNaN(got[2]), "0/0 should be NaN")
	assert.True(t, math.IsNaN(got[3]), "NaN should propagate")
}

func TestApplyPreservesOrderAcrossChunks(t *testing.T) {
	ctx := context.Background()

	const n = 10_003
	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = float64(i)
		right[i] = 1
	}

	got, err := Apply(ctx, Add, left, right, WithWorkers(4), WithChunkSize(7))
	require.NoError(t, err, "Apply should succeed")
	require.Len(t, got, n, "one result per row")
	for i, v := range got {
		if v != float64(i+1) {
			t.Fatalf("row %d: got %v, want %v", i, v, float64(i+1))
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	got, err := Apply(context.Background(), Multiply, nil, nil)
	require.NoError(t, err, "empty columns are valid")
	assert.Empty(t, got, "no rows in, no rows out")
}

func TestApplyErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported_operator", func(t *testing.T) {
		_, err := Apply(ctx, Operator("%"), []float64{1}, []float64{2})
		require.Error(t, err, "unknown operator should fail")
		var opErr *UnsupportedOperatorError
		require.ErrorAs(t, err, &opErr, "error should be UnsupportedOperatorError")
		assert.Equal(t, "%", opErr.Op, "error should name the symbol")
	})

	t.Run("length_mismatch", func(t *testing.T) {
		_, err := Apply(ctx, Add, []float64{1, 2}, []float64{2})
		var lenErr *LengthMismatchError
		require.ErrorAs(t, err, &lenErr, "error should be LengthMismatchError")
		assert.Equal(t, 2, lenErr.Left)
		assert.Equal(t, 1, lenErr.Right)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Apply(cctx, Add, []float64{1}, []float64{2})
		require.Error(t, err, "cancelled context should stop the work")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseOperator(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/"} {
		op, err := ParseOperator(sym)
		require.NoError(t, err, "symbol %q should parse", sym)
		assert.Equal(t, sym, string(op))
	}

	for _, sym := range []string{"", "x", "^", "//", " +"} {
		_, err := ParseOperator(sym)
		var opErr *UnsupportedOperatorError
		assert.ErrorAs(t, err, &opErr, "symbol %q should be rejected", sym)
	}
}
