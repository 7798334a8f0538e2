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

package opts

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/walteh/sheetcalc/pkg/config"
	"github.com/walteh/sheetcalc/pkg/sheetio"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Input      string
	Output     string
	Debug      bool
	LineOffset int
	Delimiter  string
	Workers    int

	Files sheetio.FileManager
}

// LoadConfig loads the calculation config and applies flag overrides
func (o *RootOpts) LoadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	exists, err := o.Files.FileExists(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("checking config file: %w", err)
	}
	if !exists {
		return nil, errors.Errorf("calculation config not found: %s (generate a template with --gen-config=%s)", o.ConfigFile, o.ConfigFile)
	}

	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if err := o.ApplyOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides replaces config values with flags the user set explicitly
func (o *RootOpts) ApplyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("line-offset") {
		if o.LineOffset < 0 {
			return errors.Errorf("--line-offset must not be negative, got %d", o.LineOffset)
		}
		cfg.SetOffset(o.LineOffset)
	}
	if flags.Changed("delimiter") {
		d := UnescapeDelimiter(o.Delimiter)
		if d == "" {
			return errors.Errorf("--delimiter must not be empty")
		}
		cfg.SetDelimiter(d)
	}
	return nil
}

// UnescapeDelimiter turns escapes such as \t into the characters they name
func UnescapeDelimiter(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
