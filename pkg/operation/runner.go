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

	"github.com/rs/zerolog"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/log"
	"github.com/walteh/sheetcalc/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a runner
type Options struct {
	// Logger receives one console line per calculation, may be nil
	Logger *log.Logger
	// Workers bounds the goroutines used per calculation, 0 means GOMAXPROCS
	Workers int
}

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger  *log.Logger
	workers int
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) *OperationRunner {
	return &OperationRunner{
		logger:  opts.Logger,
		workers: opts.Workers,
	}
}

// 🏗️ Build turns calculations into operations, failing before any of them runs
func (r *OperationRunner) Build(calcs []config.Calculation) ([]Operation, error) {
	ops := make([]Operation, 0, len(calcs))
	for i, calc := range calcs {
		op, err := NewCalculationOperation(calc, r.workers)
		if err != nil {
			return nil, errors.Errorf("calculation %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// 🏃 Run applies the calculations to tbl strictly in the given order
func (r *OperationRunner) Run(ctx context.Context, tbl *table.Table, calcs []config.Calculation) ([]*Result, error) {
	ops, err := r.Build(calcs)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(ops))
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("operation cancelled: %w", err)
		}

		res, err := op.Execute(ctx, tbl)
		if err != nil {
			r.reportCandidates(err)
			return nil, errors.Errorf("calculation %d: %w", i+1, err)
		}

		zerolog.Ctx(ctx).Debug().
			Int("step", i+1).
			Str("result", res.Calculation.Result).
			Int("nans", res.NaNs).
			Msg("calculation done")

		if r.logger != nil {
			r.logger.LogCalcOperation(ctx, log.CalcOperation{
				Result:    res.Calculation.Result,
				Left:      res.LeftHeader,
				Operation: res.Calculation.Operation,
				Right:     res.RightHeader,
				Rows:      res.Rows,
				NaNs:      res.NaNs,
			})
		}
		results = append(results, res)
	}

	return results, nil
}

// reportCandidates prints the matching columns of an ambiguous selector
func (r *OperationRunner) reportCandidates(err error) {
	if r.logger == nil {
		return
	}
	var amb *table.AmbiguousColumnError
	if !errors.As(err, &amb) {
		return
	}
	indexes := make([]int, len(amb.Matches))
	headers := make([]string, len(amb.Matches))
	for i, m := range amb.Matches {
		indexes[i] = m.Index
		headers[i] = m.Header
	}
	r.logger.LogCandidates(amb.Pattern, indexes, headers)
}
