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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sheetcalc/cmd/sheetcalc/opts"
	"github.com/walteh/sheetcalc/pkg/log"
	"github.com/walteh/sheetcalc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured calculations on the input sheet",
		Long: `Run reads the input sheet, appends one column per configured calculation
and writes the result to the output path.
It will:
1. Load the calculation config
2. Parse the input with the configured delimiter and line offset
3. Apply every calculation in order
4. Write the new sheet only if all calculations succeeded`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, opts)
		},
	}

	return cmd
}

// Run executes the calculations described by opts
func Run(cmd *cobra.Command, opts *opts.RootOpts) error {
	ctx := cmd.Context()
	ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)
	userLogger := log.FromContext(ctx)

	cfg, err := opts.LoadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	userLogger.Header("running calculations")

	runner := operation.NewRunner(operation.Options{
		Logger:  userLogger,
		Workers: opts.Workers,
	})

	results, err := runner.RunSheet(ctx, operation.SheetOperation{
		Input:  opts.Input,
		Output: opts.Output,
		Config: cfg,
		Files:  opts.Files,
	})
	if err != nil {
		return errors.Errorf("running sheet: %w", err)
	}

	userLogger.LogNewline()
	userLogger.Successf("wrote %d new column(s) to %s", len(results), opts.Output)
	return nil
}
