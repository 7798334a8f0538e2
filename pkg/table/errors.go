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

package table

import (
	"fmt"
	"strings"
)

// 🚫 MalformedInputError is returned when the input cannot hold a table at all
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// 📏 RowWidthMismatchError is returned when a data row does not have one field per header
type RowWidthMismatchError struct {
	Line     int // 1-based line number in the input text
	Expected int // number of headers
	Actual   int // number of fields found on the line
}

func (e *RowWidthMismatchError) Error() string {
	return fmt.Sprintf("line %d: row has %d field(s), expected %d", e.Line, e.Actual, e.Expected)
}

// Surplus returns how many fields the row has beyond the header count; negative when fields are missing
func (e *RowWidthMismatchError) Surplus() int {
	return e.Actual - e.Expected
}

// 🔍 ColumnNotFoundError is returned when a column selector matches no header
type ColumnNotFoundError struct {
	Pattern string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("no matches found for column pattern %q", e.Pattern)
}

// 🔀 AmbiguousColumnError is returned when a column selector matches more than one header
type AmbiguousColumnError struct {
	Pattern string
	Matches []Match
}

func (e *AmbiguousColumnError) Error() string {
	parts := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("column pattern %q matches %d columns (%s), consider narrowing your search pattern",
		e.Pattern, len(e.Matches), strings.Join(parts, ", "))
}

// ❌ InvalidPatternError is returned when a column selector is not a valid regular expression
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid column pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// 📐 RowCountMismatchError is returned when a new column does not have one value per row
type RowCountMismatchError struct {
	Expected int
	Actual   int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("column has %d value(s), table has %d row(s)", e.Actual, e.Expected)
}
