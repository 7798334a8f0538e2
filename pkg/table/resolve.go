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
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// Match is a header matched by a column selector
type Match struct {
	Index  int    // 0-based column index
	Header string // header text
}

// String formats the match with a 1-based column number
func (m Match) String() string {
	return fmt.Sprintf("col %d: %s", m.Index+1, m.Header)
}

// CompilePattern compiles a column selector
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.WithStack(&InvalidPatternError{Pattern: pattern, Err: err})
	}
	return re, nil
}

// 🔍 MatchHeaders returns every header that pattern matches anywhere in its text, in column order
func MatchHeaders(headers []string, pattern string) ([]Match, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for i, h := range headers {
		if re.MatchString(h) {
			matches = append(matches, Match{Index: i, Header: h})
		}
	}
	return matches, nil
}

// 🎯 Resolve returns the index of the only header matching pattern
func Resolve(headers []string, pattern string) (int, error) {
	matches, err := MatchHeaders(headers, pattern)
	if err != nil {
		return -1, err
	}

	switch len(matches) {
	case 0:
		return -1, errors.WithStack(&ColumnNotFoundError{Pattern: pattern})
	case 1:
		return matches[0].Index, nil
	default:
		return -1, errors.WithStack(&AmbiguousColumnError{Pattern: pattern, Matches: matches})
	}
}
