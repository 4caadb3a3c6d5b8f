// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact scalars with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) with independent lifetime.
//
// Ownership:
//   - Every Dense exclusively owns its buffer; Clone and all constructors deep-copy.
//   - scalar.Scalar values are immutable, so copying the slice copies the values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/exactmat/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"      // method tag used in error wrappers
	ctxSet      = "Set"     // method tag used in error wrappers
	ctxInduce   = "Induced" // ctor/tag for Dense.Induced
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal for empty results.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int             // row and column counts (>=0)
	data []scalar.Scalar // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate buffer; the zero Scalar is the canonical 0.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal: RREF, Submatrix and Inverse return empty
//     matrices for empty inputs.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]scalar.Scalar, rows*cols)}, nil
}

// NewDenseFromRows copies a two-dimensional literal into a new Dense.
// MAIN DESCRIPTION:
//   - Construct from caller-owned rows; the caller's slices are never retained.
//
// Implementation:
//   - Stage 1: read the width from row 0 and require every row to match it.
//   - Stage 2: copy values row by row into the flat buffer.
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 matrix.
//   - Rows of zero length yield an r×0 matrix.
//
// Errors:
//   - ErrBadShape when rows have different lengths (ragged input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]scalar.Scalar) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
	}

	m := &Dense{r: r, c: c, data: make([]scalar.Scalar, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromInts is NewDenseFromRows for integer literals.
func NewDenseFromInts(rows [][]int64) (*Dense, error) {
	grid := make([][]scalar.Scalar, len(rows))
	for i, row := range rows {
		grid[i] = make([]scalar.Scalar, len(row))
		for j, v := range row {
			grid[i][j] = scalar.New(v)
		}
	}

	return NewDenseFromRows(grid)
}

// NewDenseFromStrings parses every cell with scalar.Parse (integers, decimals,
// fractions) and builds a Dense. Parse failures carry the cell coordinates.
func NewDenseFromStrings(rows [][]string) (*Dense, error) {
	grid := make([][]scalar.Scalar, len(rows))
	for i, row := range rows {
		grid[i] = make([]scalar.Scalar, len(row))
		for j, text := range row {
			v, err := scalar.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("NewDenseFromStrings: cell (%d,%d): %w", i, j, err)
			}
			grid[i][j] = v
		}
	}

	return NewDenseFromRows(grid)
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Returns the bare sentinel; public methods wrap it with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Never panics on out-of-range access.
// Complexity: O(1).
func (m *Dense) At(row, col int) (scalar.Scalar, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return scalar.Zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// Zero values are stored in canonical form.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v scalar.Scalar) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v.Normalize()

	return nil
}

// Clone returns a deep copy with a new buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is Clone with the concrete return type for internal callers.
func (m *Dense) clone() *Dense {
	cp := make([]scalar.Scalar, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as "[a, b]\n" lines with exact values ("1/3", "-2").
// Intended for debugging and test failure messages.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed, order kept).
//
// Implementation:
//   - Stage 1: bounds-check every index before allocating.
//   - Stage 2: nested loops with direct offset math.
//
// Behavior highlights:
//   - Zero-length index lists give a legal empty Dense (e.g. 0×0).
//
// Errors:
//   - ErrIndexOutOfBounds (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrIndexOutOfBounds)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrIndexOutOfBounds)
		}
	}

	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense{r: rp, c: cp, data: make([]scalar.Scalar, rp*cp)}
	var i, j int
	for i = 0; i < rp; i++ {
		src := rowsIdx[i] * m.c
		dst := i * cp
		for j = 0; j < cp; j++ {
			res.data[dst+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v scalar.Scalar) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// toDense returns a private deep copy of m as *Dense.
// The *Dense fast-path copies the flat buffer; other implementations are read
// through At in i→j order. The result never aliases m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v scalar.Scalar
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v.Normalize()
		}
	}

	return res, nil
}

// asDense returns m itself when it is a *Dense (read-only use), or a copy.
// Callers MUST NOT write through the result.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return toDense(m)
}
