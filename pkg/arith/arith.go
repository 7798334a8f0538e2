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
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🧮 Operator is an elementwise binary operation between two columns
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// minChunk keeps small columns on a single goroutine
const minChunk = 4096

// UnsupportedOperatorError is returned for any symbol outside + - * /
type UnsupportedOperatorError struct {
	Op string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operation %q, expected one of + - * /", e.Op)
}

// LengthMismatchError is returned when the operand columns differ in length
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("operand lengths differ: left has %d value(s), right has %d", e.Left, e.Right)
}

// 🔍 ParseOperator maps a symbol to its Operator
func ParseOperator(symbol string) (Operator, error) {
	switch op := Operator(symbol); op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	default:
		return "", errors.WithStack(&UnsupportedOperatorError{Op: symbol})
	}
}

// Eval applies the operator to a single pair of values
func (o Operator) Eval(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	}
	panic("arith: unknown operator " + string(o))
}

// 🔧 Option configures Apply
type Option func(*options)

type options struct {
	workers int
	chunk   int
}

// WithWorkers bounds the number of goroutines used by Apply. Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many rows each goroutine handles at a time
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunk = n
	}
}

// ⚡ Apply computes left[i] op right[i] for every row. Rows are split into
// contiguous chunks that run concurrently, each writing only its own range.
func Apply(ctx context.Context, op Operator, left, right []float64, opts ...Option) ([]float64, error) {
	if _, err := ParseOperator(string(op)); err != nil {
		return nil, err
	}
	if len(left) != len(right) {
		return nil, errors.WithStack(&LengthMismatchError{Left: len(left), Right: len(right)})
	}

	o := options{workers: runtime.GOMAXPROCS(0), chunk: minChunk}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.chunk < 1 {
		o.chunk = minChunk
	}

	out := make([]float64, len(left))

	zerolog.Ctx(ctx).Debug().
		Str("op", string(op)).
		Int("rows", len(left)).
		Int("workers", o.workers).
		Int("chunk", o.chunk).
		Msg("applying column operation")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for start := 0; start < len(left); start += o.chunk {
		end := min(start+o.chunk, len(left))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("computing rows %d-%d: %w", start, end, err)
			}
			for i := start; i < end; i++ {
				out[i] = op.Eval(left[i], right[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
