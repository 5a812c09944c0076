package kernel

import (
	"math"

	"github.com/katalvlaran/cpuscore/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Run appends one sum per row of d to v and returns the extended slice.
// Callers pass a slice with capacity d.Rows() to avoid growth; the kernel
// never reads v's existing contents.
// Complexity: O(N²) time, O(N) space.
func Run(d *matrix.Dense, v []float64) []float64 {
	n := d.Rows()
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = 0.0
		for j = 0; j < n; j++ {
			sum += math.Sqrt(d.Cell(i, j) / d.Cell(j, i))
		}
		v = append(v, sum)
	}

	return v
}

// Reference computes the same reduction through gonum: the elementwise
// quotient D ⊘ Dᵀ, an elementwise square root, then per-row sums.
// It allocates two N×N temporaries and sums with floats.Sum, whose
// association order may differ from Run, so compare with a tolerance.
func Reference(d *matrix.Dense) []float64 {
	n := d.Rows()
	view := d.Mat()

	var q mat.Dense
	q.DivElem(view, view.T())
	q.Apply(func(_, _ int, x float64) float64 { return math.Sqrt(x) }, &q)

	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = floats.Sum(q.RawRowView(i))
	}

	return out
}
