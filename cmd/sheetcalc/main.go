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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sheetcalc/cmd/sheetcalc/commands"
	"github.com/walteh/sheetcalc/cmd/sheetcalc/opts"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/log"
	"github.com/walteh/sheetcalc/pkg/sheetio"
)

// newRootCmd builds the command tree around a shared set of options
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	var genConfig string

	rootCmd := &cobra.Command{
		Use:   "sheetcalc",
		Short: "Append calculated columns to a delimited spreadsheet",
		Long: `sheetcalc reads a delimited text table, applies a configured list of
column calculations (left op right = result) and writes the table back
with one new column per calculation.

Columns are selected by regular expressions matched against the header row.
Cells that are not numbers take part in the arithmetic as NaN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, o)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if genConfig != "" {
				return commands.GenConfig(cmd, o, genConfig)
			}
			return commands.Run(cmd, o)
		},
	}

	addRootFlags(rootCmd, o)
	rootCmd.Flags().StringVar(&genConfig, "gen-config", "", "write a template config to this path and exit")

	rootCmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewGenConfigCmd(o),
		commands.NewColumnsCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "config.toml", "calculation config file (.toml, .yaml, .yml, .json or .hcl)")
	flags.StringVarP(&o.Input, "input", "i", "input.txt", "input spreadsheet")
	flags.StringVarP(&o.Output, "output", "o", "output.txt", "output spreadsheet")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.IntVar(&o.LineOffset, "line-offset", config.DefaultLineOffset, "number of preamble lines above the header (overrides config)")
	flags.StringVar(&o.Delimiter, "delimiter", `\t`, "column delimiter, escapes like \\t are allowed (overrides config)")
	flags.IntVar(&o.Workers, "workers", 0, "parallel workers per calculation (0 uses GOMAXPROCS)")
}

// setupLogging configures zerolog and the user logger based on flags
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if o.Files == nil {
		o.Files = sheetio.New(".")
	}

	userLogger := log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
	cmd.SetContext(log.NewContext(ctx, userLogger))
}

func main() {
	rootCmd := newRootCmd(&opts.RootOpts{})

	if err := rootCmd.Execute(); err != nil {
		log.New(os.Stderr, os.Stderr, zerolog.Disabled).Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
