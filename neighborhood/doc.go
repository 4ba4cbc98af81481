// Package neighborhood is documented in types.go (enum, tabu attributes,
// candidate shapes, memoization), intra.go/inter.go/extract.go/ejection.go
// (the generators) and tabulist.go (the per-family FIFO).
package neighborhood
