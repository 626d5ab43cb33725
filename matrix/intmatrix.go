// Package matrix provides the dense 2-D integer matrix view used by the
// nodesup pass to store the distance table and the superiority matrix
// (spec §4.3). IntMatrix is a thin, bounds-checked, row-major view over a
// contiguous []int32 buffer; it does not own transformation logic.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix operations, checked via errors.Is, never
// panicked on a public call path (mirrors the teacher's
// "no algorithm should panic on user-triggered error conditions" policy).
var (
	// ErrInvalidDimensions indicates rows or cols is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// intMatrixErrorf wraps err with the offending method and indices, e.g.
// "IntMatrix.At(3,7): matrix: index out of range".
func intMatrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntMatrix.%s(%d,%d): %w", method, row, col, err)
}

// IntMatrix is a row-major Rows x Columns view over a flat []int32 buffer.
// index = row*Columns + col. It borrows no external storage; NewIntMatrix
// allocates its own backing slice.
type IntMatrix struct {
	rows, cols int
	data       []int32
}

// NewIntMatrix allocates a rows x cols IntMatrix, every cell initialized
// to fill.
func NewIntMatrix(rows, cols int, fill int32) (*IntMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]int32, rows*cols)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &IntMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *IntMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *IntMatrix) Cols() int { return m.cols }

func (m *IntMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, intMatrixErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

// At returns the value at (row, col).
func (m *IntMatrix) At(row, col int) (int32, error) {
	off, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set writes v at (row, col).
func (m *IntMatrix) Set(row, col int, v int32) error {
	off, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

// Get is an unchecked accessor for hot paths inside nodesup where row/col
// are already known to be in range (bounded by NodeCount). It exists to
// avoid the error-return overhead of At/Set in the main loop's inner
// relaxations. Arguments are not bounds-checked: an out-of-range column
// can address a cell of another row, and only an offset past the end of
// the buffer panics. This follows the teacher's distinction between
// public-API bounds checks and private-helper invariants.
func (m *IntMatrix) Get(row, col int) int32 {
	return m.data[row*m.cols+col]
}

// Put is the unchecked counterpart to Get.
func (m *IntMatrix) Put(row, col int, v int32) {
	m.data[row*m.cols+col] = v
}

// Fill overwrites every cell with v.
func (m *IntMatrix) Fill(v int32) {
	for i := range m.data {
		m.data[i] = v
	}
}
