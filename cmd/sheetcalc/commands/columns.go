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
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/sheetcalc/cmd/sheetcalc/opts"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/log"
	"github.com/walteh/sheetcalc/pkg/operation"
	"github.com/walteh/sheetcalc/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// NewColumnsCmd creates a new columns command
func NewColumnsCmd(opts *opts.RootOpts) *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the columns of the input sheet",
		Long: `Columns prints the headers of the input sheet numbered from 1.
With --match only the headers a column pattern selects are shown, which
helps narrowing a pattern that matches more than one column.

The delimiter and line offset come from the config file when it exists,
otherwise from the defaults, and can be overridden with flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userLogger := log.FromContext(ctx)

			cfg := &config.Config{}
			exists, err := opts.Files.FileExists(ctx, opts.ConfigFile)
			if err != nil {
				return errors.Errorf("checking config file: %w", err)
			}
			if exists {
				if cfg, err = config.Load(ctx, opts.ConfigFile); err != nil {
					return errors.Errorf("loading config: %w", err)
				}
			}
			if err := opts.ApplyOverrides(cmd, cfg); err != nil {
				return err
			}

			data, err := opts.Files.ReadFile(ctx, opts.Input)
			if err != nil {
				return errors.Errorf("reading input: %w", err)
			}
			tbl, err := operation.ParseTable(ctx, string(data), cfg)
			if err != nil {
				return err
			}

			var matches []table.Match
			if match != "" {
				matches, err = table.MatchHeaders(tbl.Headers(), match)
				if err != nil {
					return err
				}
				if len(matches) == 0 {
					userLogger.Warningf("no columns match %q", match)
					return nil
				}
			} else {
				for i, h := range tbl.Headers() {
					matches = append(matches, table.Match{Index: i, Header: h})
				}
			}

			rendered, err := renderColumns(matches)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "only show columns matching this pattern")

	return cmd
}

// renderColumns draws the matches as a two column table
func renderColumns(matches []table.Match) (string, error) {
	data := pterm.TableData{{"col", "header"}}
	for _, m := range matches {
		data = append(data, []string{strconv.Itoa(m.Index + 1), m.Header})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering columns: %w", err)
	}
	return out + "\n", nil
}
