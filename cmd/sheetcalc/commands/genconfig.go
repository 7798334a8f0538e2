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
	"github.com/spf13/cobra"
	"github.com/walteh/sheetcalc/cmd/sheetcalc/opts"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewGenConfigCmd creates a new gen-config command
func NewGenConfigCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-config PATH",
		Short: "Write a template calculation config",
		Long: `Gen-config writes a config with two example calculations.
The format follows the extension of PATH: .toml, .yaml, .yml, .json or .hcl.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenConfig(cmd, opts, args[0])
		},
	}

	return cmd
}

// GenConfig writes the template config to path
func GenConfig(cmd *cobra.Command, opts *opts.RootOpts, path string) error {
	ctx := cmd.Context()
	userLogger := log.FromContext(ctx)

	data, err := config.Marshal(path, config.Template())
	if err != nil {
		return errors.Errorf("rendering template: %w", err)
	}

	userLogger.Infof("writing config to %s", path)
	if err := opts.Files.WriteFileAtomic(ctx, path, data); err != nil {
		return errors.Errorf("writing config: %w", err)
	}

	return nil
}
