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

package operation

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetcalc/pkg/arith"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one step applied to a table
type Operation interface {
	// Execute mutates the table in place
	Execute(ctx context.Context, tbl *table.Table) (*Result, error)
}

// 📊 Result describes what a calculation did
type Result struct {
	Calculation config.Calculation
	LeftIndex   int    // 0-based column index of the left operand
	LeftHeader  string // header text of the left operand
	RightIndex  int
	RightHeader string
	Rows        int // rows computed
	NaNs        int // result cells that are NaN
}

// 🧮 CalculationOperation appends result = left <op> right to a table
type CalculationOperation struct {
	calc    config.Calculation
	op      arith.Operator
	workers int
}

var _ Operation = (*CalculationOperation)(nil)

// 🏭 NewCalculationOperation checks the operator of calc and builds its operation
func NewCalculationOperation(calc config.Calculation, workers int) (*CalculationOperation, error) {
	op, err := arith.ParseOperator(calc.Operation)
	if err != nil {
		return nil, errors.Errorf("calculation %q: %w", calc.Result, err)
	}
	return &CalculationOperation{
		calc:    calc,
		op:      op,
		workers: workers,
	}, nil
}

// Execute resolves both selectors against the current headers, so columns
// appended by earlier calculations are visible.
func (o *CalculationOperation) Execute(ctx context.Context, tbl *table.Table) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("result", o.calc.Result).Logger()

	leftIdx, err := tbl.Resolve(o.calc.Left)
	if err != nil {
		return nil, errors.Errorf("resolving left column of %q: %w", o.calc.Result, err)
	}
	rightIdx, err := tbl.Resolve(o.calc.Right)
	if err != nil {
		return nil, errors.Errorf("resolving right column of %q: %w", o.calc.Result, err)
	}

	headers := tbl.Headers()
	logger.Debug().
		Int("left_col", leftIdx+1).
		Str("left", headers[leftIdx]).
		Int("right_col", rightIdx+1).
		Str("right", headers[rightIdx]).
		Msg("resolved columns")

	left, err := tbl.Numeric(leftIdx)
	if err != nil {
		return nil, errors.Errorf("reading left column: %w", err)
	}
	right, err := tbl.Numeric(rightIdx)
	if err != nil {
		return nil, errors.Errorf("reading right column: %w", err)
	}

	values, err := arith.Apply(ctx, o.op, left, right, arith.WithWorkers(o.workers))
	if err != nil {
		return nil, errors.Errorf("computing %q: %w", o.calc.Result, err)
	}

	if err := tbl.AppendColumn(o.calc.Result, values); err != nil {
		return nil, errors.Errorf("appending %q: %w", o.calc.Result, err)
	}

	nans := 0
	for _, v := range values {
		if math.IsNaN(v) {
			nans++
		}
	}

	return &Result{
		Calculation: o.calc,
		LeftIndex:   leftIdx,
		LeftHeader:  headers[leftIdx],
		RightIndex:  rightIdx,
		RightHeader: headers[rightIdx],
		Rows:        len(values),
		NaNs:        nans,
	}, nil
}
