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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sheetcalc/pkg/arith"
	"github.com/walteh/sheetcalc/pkg/table"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml_full",
			file: "config.yaml",
			config: `
line_offset: 2
column_delimiter: ","
calculation:
  - left: "^Voltage"
    operation: "/"
    right: "^Current"
    result: Resistance
  - left: Resistance
    operation: "*"
    right: "^Scale$"
    result: Scaled
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Offset(), "line offset should match")
				assert.Equal(t, ",", cfg.Delimiter(), "delimiter should match")
				require.Len(t, cfg.Calculations, 2, "should have 2 calculations")
				assert.Equal(t, Calculation{Left: "^Voltage", Operation: "/", Right: "^Current", Result: "Resistance"}, cfg.Calculations[0])
				assert.Equal(t, "Scaled", cfg.Calculations[1].Result, "order should be kept")
			},
		},
		{
			name: "yaml_defaults",
			file: "config.yml",
			config: `
calculation:
  - left: a
    operation: "+"
    right: b
    result: c
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Offset(), "line offset should default to 0")
				assert.Equal(t, "\t", cfg.Delimiter(), "delimiter should default to tab")
			},
		},
		{
			name: "json",
			file: "config.json",
			config: `{
  "line_offset": 1,
  "calculation": [
    {"left": "x", "operation": "-", "right": "y", "result": "diff"}
  ]
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 1, cfg.Offset())
				assert.Equal(t, "diff", cfg.Calculations[0].Result)
			},
		},
		{
			name: "hcl",
			file: "config.hcl",
			config: `
line_offset      = 3
column_delimiter = tab

calculation {
  left      = "x"
  operation = "*"
  right     = "y"
  result    = "product"
}

calculation {
  left      = "product"
  operation = "/"
  right     = "x"
  result    = "back"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Offset())
				assert.Equal(t, "\t", cfg.Delimiter(), "tab variable should resolve")
				require.Len(t, cfg.Calculations, 2)
				assert.Equal(t, "back", cfg.Calculations[1].Result)
			},
		},
		{
			name: "unknown_yaml_field",
			file: "config.yaml",
			config: `
column_delimeter: ","
calculation:
  - {left: a, operation: "+", right: b, result: c}
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "config.json",
			config:      `{"calculations": []}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "no_calculations",
			file:        "config.yaml",
			config:      "line_offset: 1\n",
			wantErr:     true,
			errContains: "at least one calculation is required",
		},
		{
			name: "missing_result",
			file: "config.yaml",
			config: `
calculation:
  - {left: a, operation: "+", right: b}
`,
			wantErr:     true,
			errContains: "calculation 1: result is required",
		},
		{
			name: "negative_offset",
			file: "config.yaml",
			config: `
line_offset: -1
calculation:
  - {left: a, operation: "+", right: b, result: c}
`,
			wantErr:     true,
			errContains: "line_offset must not be negative",
		},
		{
			name: "empty_delimiter",
			file: "config.json",
			config: `{"column_delimiter": "", "calculation": [
  {"left": "a", "operation": "+", "right": "b", "result": "c"}]}`,
			wantErr:     true,
			errContains: "column_delimiter must not be empty",
		},
		{
			name: "toml",
			file: "config.toml",
			config: `
line_offset = 1
column_delimiter = ","

[[calculation]]
left = "^Voltage"
operation = "/"
right = "^Current"
result = "Resistance"

[[calculation]]
left = "Resistance"
operation = "*"
right = "^Scale$"
result = "Scaled"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 1, cfg.Offset())
				assert.Equal(t, ",", cfg.Delimiter())
				require.Len(t, cfg.Calculations, 2)
				assert.Equal(t, Calculation{Left: "^Voltage", Operation: "/", Right: "^Current", Result: "Resistance"}, cfg.Calculations[0])
				assert.Equal(t, "Scaled", cfg.Calculations[1].Result)
			},
		},
		{
			name: "toml_legacy_delimiter_key",
			file: "config.toml",
			config: `
line_offset = 0
column_delimeter = ";"

[[calculation]]
left = "column name pattern 1"
right = "column name pattern 2"
operation = "+"
result = "new column name"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ";", cfg.Delimiter(), "column_delimeter should be accepted")
				assert.Equal(t, "new column name", cfg.Calculations[0].Result)
			},
		},
		{
			name: "toml_both_delimiter_keys",
			file: "config.toml",
			config: `
column_delimiter = ","
column_delimeter = ";"

[[calculation]]
left = "a"
operation = "+"
right = "b"
result = "c"
`,
			wantErr:     true,
			errContains: "both set",
		},
		{
			name: "unknown_toml_field",
			file: "config.toml",
			config: `
delimiter = ","

[[calculation]]
left = "a"
operation = "+"
right = "b"
result = "c"
`,
			wantErr:     true,
			errContains: "parsing TOML",
		},
		{
			name:        "unsupported_extension",
			file:        "config.ini",
			config:      "line_offset = 0\n",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, configPath, cfg.Location(), "location should be recorded")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "Load should fail")
	assert.ErrorIs(t, err, os.ErrNotExist, "missing file should be reported")
}

func TestValidateTypedErrors(t *testing.T) {
	t.Run("unsupported_operator", func(t *testing.T) {
		cfg := &Config{Calculations: []Calculation{{Left: "a", Operation: "%", Right: "b", Result: "c"}}}
		err := cfg.Validate()
		var opErr *arith.UnsupportedOperatorError
		require.ErrorAs(t, err, &opErr, "operator should be checked")
		assert.Equal(t, "%", opErr.Op)
	})

	t.Run("invalid_pattern", func(t *testing.T) {
		cfg := &Config{Calculations: []Calculation{{Left: "a", Operation: "+", Right: "b[", Result: "c"}}}
		err := cfg.Validate()
		var patErr *table.InvalidPatternError
		require.ErrorAs(t, err, &patErr, "patterns should compile")
		assert.Equal(t, "b[", patErr.Pattern)
	})
}

func TestTemplateRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, file := range []string{"config.toml", "config.yaml", "config.json", "config.hcl"} {
		t.Run(file, func(t *testing.T) {
			data, err := Marshal(file, Template())
			require.NoError(t, err, "Marshal should succeed")

			path := filepath.Join(t.TempDir(), file)
			require.NoError(t, os.WriteFile(path, data, 0644))

			cfg, err := Load(ctx, path)
			require.NoError(t, err, "template should load back:\n%s", data)

			assert.Equal(t, 0, cfg.Offset())
			assert.Equal(t, "\t", cfg.Delimiter())
			assert.Equal(t, Template().Calculations, cfg.Calculations, "calculations should survive encoding")
		})
	}
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal("config.ini", Template())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestConfigString(t *testing.T) {
	cfg := Template()
	assert.Equal(t, `config: 2 calculation(s), delimiter "\t", line offset 0`, cfg.String())

	assert.Equal(t, "new column name = column name pattern 1 + column name pattern 2", cfg.Calculations[0].String())
}

func TestOverrides(t *testing.T) {
	cfg := &Config{}
	cfg.SetDelimiter(";")
	cfg.SetOffset(4)
	assert.Equal(t, ";", cfg.Delimiter())
	assert.Equal(t, 4, cfg.Offset())
}
