// Package matrix holds the shared data source of the benchmark: a square,
// row-major matrix of float64 values drawn uniformly from [0, 1).
//
// The matrix package provides:
//
//   - Dense, a contiguous N×N matrix with bounds-checked (At) and hot-path
//     (Cell) readers and no exported mutator once built.
//   - Seeded and host-seeded generators (NewSeeded, NewHostSeeded) on top of
//     a single math/rand factory.
//   - Shared, the process-wide Size×Size instance, created exactly once on
//     first access and never released.
//   - Mat, a zero-copy gonum view for numeric cross-checks.
//
// A built Dense is immutable by contract, so any number of goroutines may
// read it concurrently without locks. The happens-before edge from
// initialisation to use is provided by Shared's one-shot gate, or by the
// caller building the matrix before starting its readers.
//
// See the kernel package for the workload that streams over this matrix.
package matrix
