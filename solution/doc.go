// Package solution is documented in solution.go (the aggregate, New, Cost,
// HammingDistance, Verify) and penalty.go (the four adaptive coefficients).
package solution
