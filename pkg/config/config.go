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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetcalc/pkg/arith"
	"github.com/walteh/sheetcalc/pkg/table"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultDelimiter separates columns when the config does not set one
	DefaultDelimiter = "\t"
	// DefaultLineOffset is the number of preamble lines when the config does not set one
	DefaultLineOffset = 0
)

// 🔌 Parser is the interface for config formats
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 📦 Encode renders the config in this format
	Encode(cfg *Config) ([]byte, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🧮 Calculation is one column operation: result = left <operation> right
type Calculation struct {
	Left      string `json:"left" yaml:"left" hcl:"left" toml:"left"`                     // Column selector (regex) for the left operand
	Operation string `json:"operation" yaml:"operation" hcl:"operation" toml:"operation"` // One of + - * /
	Right     string `json:"right" yaml:"right" hcl:"right" toml:"right"`                 // Column selector (regex) for the right operand
	Result    string `json:"result" yaml:"result" hcl:"result" toml:"result"`             // Header of the new column
}

// String returns the calculation as an assignment
func (c Calculation) String() string {
	return fmt.Sprintf("%s = %s %s %s", c.Result, c.Left, c.Operation, c.Right)
}

// 📚 Config represents the complete configuration
type Config struct {
	LineOffset      *int          `json:"line_offset,omitempty" yaml:"line_offset,omitempty" hcl:"line_offset,optional" toml:"line_offset,omitempty"`
	ColumnDelimiter *string       `json:"column_delimiter,omitempty" yaml:"column_delimiter,omitempty" hcl:"column_delimiter,optional" toml:"column_delimiter,omitempty"`
	Calculations    []Calculation `json:"calculation" yaml:"calculation" hcl:"calculation,block" toml:"calculation"`

	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("calculations", len(cfg.Calculations)).
		Int("line_offset", cfg.Offset()).
		Str("delimiter", cfg.Delimiter()).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.LineOffset != nil && *cfg.LineOffset < 0 {
		return errors.Errorf("line_offset must not be negative, got %d", *cfg.LineOffset)
	}
	if cfg.ColumnDelimiter != nil && *cfg.ColumnDelimiter == "" {
		return errors.Errorf("column_delimiter must not be empty")
	}
	if len(cfg.Calculations) == 0 {
		return errors.Errorf("at least one calculation is required")
	}

	for i, calc := range cfg.Calculations {
		if err := calc.Validate(); err != nil {
			return errors.Errorf("calculation %d: %w", i+1, err)
		}
	}

	return nil
}

// 🔍 Validate checks the selectors, operator and result name of a calculation
func (c Calculation) Validate() error {
	if c.Left == "" {
		return errors.Errorf("left is required")
	}
	if c.Right == "" {
		return errors.Errorf("right is required")
	}
	if c.Result == "" {
		return errors.Errorf("result is required")
	}
	if _, err := arith.ParseOperator(c.Operation); err != nil {
		return err
	}
	if _, err := table.CompilePattern(c.Left); err != nil {
		return err
	}
	if _, err := table.CompilePattern(c.Right); err != nil {
		return err
	}
	return nil
}

// Delimiter returns the column delimiter, defaulting to a tab
func (cfg *Config) Delimiter() string {
	if cfg.ColumnDelimiter == nil {
		return DefaultDelimiter
	}
	return *cfg.ColumnDelimiter
}

// Offset returns the number of preamble lines, defaulting to zero
func (cfg *Config) Offset() int {
	if cfg.LineOffset == nil {
		return DefaultLineOffset
	}
	return *cfg.LineOffset
}

// SetDelimiter overrides the column delimiter
func (cfg *Config) SetDelimiter(d string) {
	cfg.ColumnDelimiter = &d
}

// SetOffset overrides the number of preamble lines
func (cfg *Config) SetOffset(n int) {
	cfg.LineOffset = &n
}

// Location returns the path the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	name := "config"
	if cfg.location != "" {
		name = filepath.Base(cfg.location)
	}
	return fmt.Sprintf("%s: %d calculation(s), delimiter %q, line offset %d",
		name, len(cfg.Calculations), cfg.Delimiter(), cfg.Offset())
}

// 📋 Template returns the example configuration written by gen-config
func Template() *Config {
	offset := DefaultLineOffset
	delimiter := DefaultDelimiter
	return &Config{
		LineOffset:      &offset,
		ColumnDelimiter: &delimiter,
		Calculations: []Calculation{
			{
				Left:      "column name pattern 1",
				Operation: "+",
				Right:     "column name pattern 2",
				Result:    "new column name",
			},
			{
				Left:      "column name pattern 1",
				Operation: "/",
				Right:     "new column name",
				Result:    "new column name 2",
			},
		},
	}
}

// 📦 Marshal renders cfg in the format selected by the extension of path
func Marshal(path string, cfg *Config) ([]byte, error) {
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}
	data, err := p.Encode(cfg)
	if err != nil {
		return nil, errors.Errorf("encoding config: %w", err)
	}
	return data, nil
}
