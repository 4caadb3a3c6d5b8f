// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/exactmat/matrix"
)

// errNoInput is returned when neither an argument nor stdin carries a matrix.
var errNoInput = errors.New("exactmat: no matrix given")

// parseLiteral reads a matrix literal. Rows are separated by ';' or newlines,
// cells by commas or whitespace: "1 2; 3 4", "1/2,0\n0,1".
// Blank rows are ignored, so a trailing ';' is harmless.
func parseLiteral(text string) (*matrix.Dense, error) {
	var rows [][]string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' }) {
		cells := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, errNoInput
	}

	m, err := matrix.NewDenseFromStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}

	return m, nil
}

// readMatrix takes the literal from args[0], or from in when args is empty
// or args[0] is "-".
func readMatrix(args []string, in io.Reader) (*matrix.Dense, error) {
	if len(args) > 0 && args[0] != "-" {
		return parseLiteral(args[0])
	}

	var b strings.Builder
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return parseLiteral(b.String())
}
