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
	"bytes"
	"context"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&TOMLParser{})
}

// 🔧 TOMLParser implements the Parser interface for TOML files
type TOMLParser struct{}

// tomlFile also accepts the column_delimeter spelling written by older templates
type tomlFile struct {
	LineOffset      *int          `toml:"line_offset"`
	ColumnDelimiter *string       `toml:"column_delimiter"`
	ColumnDelimeter *string       `toml:"column_delimeter"`
	Calculations    []Calculation `toml:"calculation"`
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *TOMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".toml")
}

// 📝 Parse parses the config from TOML
//
//	line_offset = 0
//	column_delimiter = "\t"
//
//	[[calculation]]
//	left = "^Voltage"
//	operation = "/"
//	right = "^Current"
//	result = "Resistance"
func (p *TOMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var raw tomlFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}

	delimiter := raw.ColumnDelimiter
	if raw.ColumnDelimeter != nil {
		if delimiter != nil {
			return nil, errors.Errorf("parsing TOML: column_delimiter and column_delimeter are both set")
		}
		delimiter = raw.ColumnDelimeter
	}

	return &Config{
		LineOffset:      raw.LineOffset,
		ColumnDelimiter: delimiter,
		Calculations:    raw.Calculations,
	}, nil
}

// 📦 Encode renders the config as TOML with one [[calculation]] table per calculation
func (p *TOMLParser) Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Errorf("encoding TOML: %w", err)
	}
	return data, nil
}
