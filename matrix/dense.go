// Package matrix provides the shared data source for the benchmark kernel.
// Dense is a square, row-major matrix storing its elements in one flat slice
// for cache friendliness; it is read-only once construction returns.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// cellBytes is the in-memory size of one float64 cell.
const cellBytes = 8

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an n×n row-major matrix of float64 values.
// data holds n*n elements in row-major order and is never written after the
// constructor that produced the Dense returns.
type Dense struct {
	n    int       // side length
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate dimensions
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewFromValues builds an n×n Dense from a row-major flat slice.
// The values are copied, so later writes to vals do not reach the matrix.
// Complexity: O(n²) time and memory.
func NewFromValues(n int, vals []float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(vals) != n*n {
		return nil, fmt.Errorf("NewFromValues: %d values for %dx%d: %w", len(vals), n, n, ErrDimensionMismatch)
	}
	data := make([]float64, n*n)
	copy(data, vals)

	return newDenseFrom(n, data), nil
}

// newDenseFrom adopts vals as the backing slice of an n×n matrix.
// Callers own the guarantee that len(vals) == n*n and that vals is not
// retained elsewhere.
func newDenseFrom(n int, vals []float64) *Dense {
	return &Dense{n: n, data: vals}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.n
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.n
}

// At retrieves the element at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	// Validate row and column indices
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.n+col], nil
}

// Cell returns the element at (row, col) without the error path of At.
// It is the kernel's inner-loop accessor and small enough to inline; an
// out-of-range index panics through the runtime slice check.
func (m *Dense) Cell(row, col int) float64 {
	return m.data[row*m.n+col]
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Bytes reports the size of the backing storage in bytes (8·n²).
func (m *Dense) Bytes() uint64 {
	return uint64(len(m.data)) * cellBytes
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{n: m.n, data: copyData}
}

// Equal reports whether m and other have the same shape and bit-identical
// cells. NaN payloads compare by bits, so a matrix always equals its clone.
// Complexity: O(n²).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	var i int
	for i = range m.data {
		if math.Float64bits(m.data[i]) != math.Float64bits(other.data[i]) {
			return false
		}
	}

	return true
}

// Mat returns a gonum view that shares storage with m.
// The view exists for read-only numeric work (cross-checks, norms); writing
// through it breaks the immutability every concurrent reader relies on.
func (m *Dense) Mat() *mat.Dense {
	return mat.NewDense(m.n, m.n, m.data)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
