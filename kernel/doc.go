// Package kernel implements the benchmark workload: one pass that reduces the
// shared matrix D into a vector v of length N with
//
//	v[i] = Σ_{j=0}^{N-1} sqrt( D[i][j] / D[j][i] )
//
// Each invocation streams 2·N² cells, one row-wise and one column-wise, and
// performs a division and a square root per cell, so both the ALU and the
// cache hierarchy contribute to its cost.
//
// Numeric policy:
//   - float64 accumulation, left to right, starting from 0.0;
//   - IEEE-754 math.Sqrt, no fast-math;
//   - x/0 yields +Inf and 0/0 yields NaN; both propagate into v, never panic.
//
// Run is a pure function of D: two calls on the same matrix produce
// bit-identical vectors.
package kernel
