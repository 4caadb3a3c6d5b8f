// SPDX-License-Identifier: MIT

// Package matrix - textual presentation.
//
// Format is the only human-facing rendering: rows separated by line breaks,
// columns by a delimiter, values rounded for display. Rounding never touches
// the stored values (Dense.String prints them exactly).
package matrix

import "strings"

// Format renders m with display rounding.
//
// Options:
//   - WithRound(n): decimal places (default DefaultRound); trailing zeros are
//     trimmed, so 1 prints as "1" and 1/3 as "0.33".
//   - WithDelimiter(s): column delimiter (default DefaultDelimiter).
//
// Every row, including the last, ends with "\n". A nil or empty matrix
// renders as "".
func Format(m Matrix, opts ...Option) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	src, err := asDense(m)
	if err != nil {
		return ""
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			if j > 0 {
				b.WriteString(o.delimiter)
			}
			b.WriteString(src.data[i*src.c+j].FloatString(o.round))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
