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
	"math"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ToNumber parses a cell as a float64. Cells that are not numbers become NaN.
func ToNumber(cell string) float64 {
	if goLiteral(cell) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		// out of range still carries ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// goLiteral reports whether cell relies on Go number syntax that plain decimal
// notation lacks: digit separators or a hex mantissa
func goLiteral(cell string) bool {
	if strings.Contains(cell, "_") {
		return true
	}
	s := cell
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// FormatNumber renders v as the shortest decimal that parses back to v, without exponent.
// Infinities are written as inf and -inf.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
