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
	"github.com/walteh/sheetcalc/pkg/sheetio"
	"github.com/walteh/sheetcalc/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 📄 ParseTable parses text with the config's delimiter and line offset
func ParseTable(ctx context.Context, text string, cfg *config.Config) (*table.Table, error) {
	tbl, err := table.Parse(text, cfg.Delimiter(), cfg.Offset())
	if err != nil {
		return nil, errors.Errorf("parsing spreadsheet: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	for i, line := range tbl.Preamble() {
		logger.Debug().Int("line", i+1).Str("text", line).Msg("preamble")
	}
	logger.Debug().
		Int("rows", tbl.NumRows()).
		Int("columns", tbl.NumColumns()).
		Msg("parsed spreadsheet")

	return tbl, nil
}

// 📁 SheetOperation reads an input sheet, runs the calculations and writes the output sheet
type SheetOperation struct {
	Input  string
	Output string
	Config *config.Config
	Files  sheetio.FileManager
}

// 🏃 RunSheet executes a sheet operation. The output is written only after every calculation succeeded.
func (r *OperationRunner) RunSheet(ctx context.Context, op SheetOperation) ([]*Result, error) {
	if op.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if op.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}

	data, err := op.Files.ReadFile(ctx, op.Input)
	if err != nil {
		return nil, errors.Errorf("reading input: %w", err)
	}

	tbl, err := ParseTable(ctx, string(data), op.Config)
	if err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.StartSheetOperation(ctx, log.SheetOperation{
			Input:    op.Input,
			Output:   op.Output,
			Rows:     tbl.NumRows(),
			Columns:  tbl.NumColumns(),
			Preamble: len(tbl.Preamble()),
		})
		defer r.logger.EndSheetOperation(ctx)
	}

	results, err := r.Run(ctx, tbl, op.Config.Calculations)
	if err != nil {
		return nil, errors.Errorf("running calculations: %w", err)
	}

	if err := op.Files.WriteFileAtomic(ctx, op.Output, []byte(tbl.String())); err != nil {
		return nil, errors.Errorf("writing output: %w", err)
	}

	return results, nil
}
