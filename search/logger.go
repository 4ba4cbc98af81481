package search

import (
	"time"

	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/solution"
)

// LogRow is one per-iteration record handed to Logger.Log (spec §6
// "one row per iteration, carrying cost, working time, feasibility,
// per-channel violations and their penalty coefficients, both route
// lists, chosen neighborhood, and the full tabu list at that moment").
type LogRow struct {
	Iteration   int
	Neighborhood neighborhood.Neighborhood
	Solution    *solution.Solution
	Cost        float64
	PenaltyE, PenaltyC, PenaltyW, PenaltyF float64
	TabuList    []neighborhood.TabuAttribute
}

// FinalizeSummary is handed to Logger.Finalize once at termination (spec §6).
type FinalizeSummary struct {
	Final                 *solution.Solution
	TabuCapacity           int
	ResetAfter             int
	LastImprovedIteration  int
	Elapsed                time.Duration
}

// Logger is the external collaborator that persists search progress and
// the final result (spec §6). The core never retries or swallows a
// Logger error (spec §7) — Run propagates it to its caller.
type Logger interface {
	Log(row LogRow) error
	Finalize(summary FinalizeSummary) error
}

// NopLogger discards every row; useful for tests and dry runs that only
// care about the returned Solution.
type NopLogger struct{}

func (NopLogger) Log(LogRow) error             { return nil }
func (NopLogger) Finalize(FinalizeSummary) error { return nil }
