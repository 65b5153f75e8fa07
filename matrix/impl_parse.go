// SPDX-License-Identifier: MIT

// Package matrix - text dump reader.
//
// ParseDense is the inverse of Dense.String: one row per line, values
// separated by whitespace. Values were rounded to three decimals on the way
// out, so a round trip is exact only for values already on that grid.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const ctxParse = "ParseDense"

// ParseDense reads a matrix from its textual dump.
//
// Implementation:
//   - Stage 1: split on "\n" and strip a trailing "\r" per line; skip blank lines.
//   - Stage 2: split each line on whitespace; the first row fixes the column count.
//   - Stage 3: parse every field with strconv.ParseFloat (NaN/Inf accepted).
//
// Errors:
//   - ErrInvalidDimensions: no rows, or a row with a different column count.
//   - ErrParse: a field is not a number.
//
// Complexity:
//   - Time O(len(s)), Space O(r*c).
func ParseDense(s string) (*Dense, error) {
	var rows [][]float64
	for lineNo, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d field %d %q: %w", ctxParse, lineNo+1, j+1, f, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParse, err)
	}

	return m, nil
}
