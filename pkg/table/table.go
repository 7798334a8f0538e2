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
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📊 Table is a delimited text table held fully in memory
type Table struct {
	preamble  []string   // raw lines above the header
	delimiter string     // field separator for parsing and output
	headers   []string   // one name per column
	cells     [][]string // every row has len(headers) cells
}

// 📝 Parse builds a table from text. The first preambleLines lines are kept
// verbatim, the next line is the header and every remaining line is a data row.
func Parse(text string, delimiter string, preambleLines int) (*Table, error) {
	if delimiter == "" {
		return nil, errors.WithStack(&MalformedInputError{Reason: "empty column delimiter"})
	}
	if preambleLines < 0 {
		return nil, errors.WithStack(&MalformedInputError{Reason: "negative preamble line count"})
	}

	lines := splitLines(text)
	tbl := &Table{delimiter: delimiter}

	// Fewer lines than requested is fine, the header check below catches it
	n := min(preambleLines, len(lines))
	tbl.preamble = append([]string{}, lines[:n]...)
	lines = lines[n:]

	if len(lines) == 0 {
		return nil, errors.WithStack(&MalformedInputError{Reason: "unexpected end of input, no header row"})
	}
	tbl.headers = strings.Split(lines[0], delimiter)

	width := len(tbl.headers)
	tbl.cells = make([][]string, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Split(line, delimiter)
		if len(fields) != width {
			return nil, errors.WithStack(&RowWidthMismatchError{
				Line:     n + i + 2,
				Expected: width,
				Actual:   len(fields),
			})
		}
		tbl.cells = append(tbl.cells, fields)
	}

	return tbl, nil
}

// splitLines splits on \n, drops a trailing \r per line and ignores a final newline
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Delimiter returns the field separator
func (t *Table) Delimiter() string {
	return t.delimiter
}

// Preamble returns a copy of the lines kept above the header
func (t *Table) Preamble() []string {
	return append([]string{}, t.preamble...)
}

// Headers returns a copy of the column names
func (t *Table) Headers() []string {
	return append([]string{}, t.headers...)
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.cells)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.headers)
}

// Column returns the raw cells of column idx, one per row
func (t *Table) Column(idx int) ([]string, error) {
	if idx < 0 || idx >= len(t.headers) {
		return nil, errors.Errorf("column index %d out of range [0, %d)", idx, len(t.headers))
	}
	col := make([]string, len(t.cells))
	for i, row := range t.cells {
		col[i] = row[idx]
	}
	return col, nil
}

// 🔢 Numeric returns column idx coerced to numbers, unparsable cells become NaN
func (t *Table) Numeric(idx int) ([]float64, error) {
	col, err := t.Column(idx)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(col))
	for i, cell := range col {
		values[i] = ToNumber(cell)
	}
	return values, nil
}

// 🎯 Resolve finds the single column whose header matches pattern
func (t *Table) Resolve(pattern string) (int, error) {
	return Resolve(t.headers, pattern)
}

// ➕ AppendColumn adds a column named name holding the formatted values, one per row
func (t *Table) AppendColumn(name string, values []float64) error {
	if len(values) != len(t.cells) {
		return errors.WithStack(&RowCountMismatchError{Expected: len(t.cells), Actual: len(values)})
	}
	for i, v := range values {
		t.cells[i] = append(t.cells[i], FormatNumber(v))
	}
	t.headers = append(t.headers, name)
	return nil
}

// 📝 String renders the table in its delimited text form
func (t *Table) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the preamble, header and rows, each followed by a newline
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	writeLine := func(line string) error {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		return err
	}

	for _, line := range t.preamble {
		if err := writeLine(line); err != nil {
			return total, errors.Errorf("writing preamble: %w", err)
		}
	}
	if err := writeLine(strings.Join(t.headers, t.delimiter)); err != nil {
		return total, errors.Errorf("writing header: %w", err)
	}
	for _, row := range t.cells {
		if err := writeLine(strings.Join(row, t.delimiter)); err != nil {
			return total, errors.Errorf("writing row: %w", err)
		}
	}
	return total, nil
}
