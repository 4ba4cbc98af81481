package search

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// maxResetAfter effectively disables the periodic restart when a fixed
// iteration budget is in force (spec §4.E "reset_after ... otherwise
// effectively infinite when fix_iteration is set").
const maxResetAfter = 1 << 30

// Run executes the outer tabu-search loop (spec §4.E) starting from
// initial, logging one row per iteration through logger and calling
// logger.Finalize exactly once before returning. It never runs the Go
// toolchain-adjacent retry machinery itself: a Logger error aborts the run
// immediately (spec §7). zlog receives the original's restored progress
// line (iteration, reset countdown, current/best cost, elite occupancy) at
// debug level, gated by cfg.Verbose; pass nil when verbose output is never
// wanted, or zap.NewNop() explicitly. cfg.RunTimeout, when non-zero, stops
// the loop between iterations once exceeded — never mid-move.
func Run(cfg *vrpconfig.Config, initial *solution.Solution, logger Logger, zlog *zap.Logger) (*solution.Solution, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	if zlog == nil {
		zlog = zap.NewNop()
	}

	activeVehicles := 0
	for _, routes := range initial.TruckRoutes {
		if len(routes) > 0 {
			activeVehicles++
		}
	}
	for _, routes := range initial.DroneRoutes {
		if len(routes) > 0 {
			activeVehicles++
		}
	}
	if activeVehicles == 0 {
		activeVehicles = 1
	}
	base := float64(cfg.CustomersCount) / float64(activeVehicles)

	tabuCapacity := int(cfg.TabuSizeFactor * base)
	if tabuCapacity < 0 {
		tabuCapacity = 0
	}

	resetAfter := maxResetAfter
	if cfg.FixIteration == nil {
		resetAfter = int(math.Min(cfg.ResetAfterFactor*base, float64(vrpconfig.DefaultResetAfterCap)))
		if resetAfter < 1 {
			resetAfter = 1
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	tabuLists := make(map[neighborhood.Neighborhood]*neighborhood.TabuList, len(neighborhood.All))
	for _, n := range neighborhood.All {
		tabuLists[n] = neighborhood.NewTabuList(tabuCapacity)
	}
	ejectionTabu := neighborhood.NewTabuList(tabuCapacity)

	elite := NewEliteSet(cfg.MaxEliteSize)
	penalty := solution.NewPenalty()

	best := initial
	current := initial
	lastImproved := 0

	neighborhoodIdx := 0
	lastIterImproved := true
	var preMove *solution.Solution

	start := time.Now()

	i := 0
	for {
		i++

		var family neighborhood.Neighborhood
		switch cfg.Strategy {
		case vrpconfig.Cyclic:
			neighborhoodIdx = (i - 1) % len(neighborhood.All)
			family = neighborhood.All[neighborhoodIdx]
		case vrpconfig.Variable:
			if lastIterImproved {
				neighborhoodIdx = 0
			} else {
				neighborhoodIdx = (neighborhoodIdx + 1) % len(neighborhood.All)
				if neighborhoodIdx != 0 {
					current = preMove
				}
			}
			family = neighborhood.All[neighborhoodIdx]
		default: // vrpconfig.Random
			family = neighborhood.All[rng.Intn(len(neighborhood.All))]
		}

		preMove = current
		neighbor, _, ok := Search(cfg, current, family, tabuLists[family], penalty, best.Cost(penalty))

		lastIterImproved = false
		if ok {
			current = neighbor
			if neighbor.Feasible && neighbor.Cost(penalty) < best.Cost(penalty) {
				best = neighbor
				lastImproved = i
				elite.Add(best)
				lastIterImproved = true
			}
		}

		penalty.Update(current)

		ae, ac, aw, af := penalty.Read()
		if err := logger.Log(LogRow{
			Iteration:    i,
			Neighborhood: family,
			Solution:     current,
			Cost:         current.Cost(penalty),
			PenaltyE:     ae,
			PenaltyC:     ac,
			PenaltyW:     aw,
			PenaltyF:     af,
			TabuList:     tabuLists[family].Entries(),
		}); err != nil {
			return nil, err
		}

		if cfg.Verbose {
			zlog.Debug("tabu search progress",
				zap.Int("iteration", i),
				zap.Int("resetCountdown", resetAfter-(i-lastImproved)),
				zap.Float64("currentCost", current.Cost(penalty)),
				zap.Float64("bestCost", best.Cost(penalty)),
				zap.Int("eliteOccupancy", elite.Len()),
			)
		}

		if cfg.RunTimeout > 0 && time.Since(start) >= cfg.RunTimeout {
			break
		}

		if cfg.FixIteration != nil {
			if i >= *cfg.FixIteration {
				break
			}
			continue
		}

		if i-lastImproved > 0 && (i-lastImproved)%resetAfter == 0 {
			picked, okPop := elite.Pop(rng)
			if !okPop {
				break
			}
			current = picked
			for _, tl := range tabuLists {
				tl.Clear()
			}
			ejectionTabu.Clear()
			current, best = ejectionSweep(cfg, current, ejectionTabu, elite, best, penalty)
		}
	}

	best = postOptimize(cfg, best, penalty)

	if err := logger.Finalize(FinalizeSummary{
		Final:                 best,
		TabuCapacity:          tabuCapacity,
		ResetAfter:            resetAfter,
		LastImprovedIteration: lastImproved,
		Elapsed:               time.Since(start),
	}); err != nil {
		return nil, err
	}

	return best, nil
}
