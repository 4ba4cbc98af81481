package search

import (
	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// postOptimize runs greedy descent to a local fixed point once the main
// loop terminates (spec §4.E step 6): every family gets a zero-capacity
// tabu list, so nothing is ever tabu and the orchestrator returns its best
// feasible cost-improving candidate when one exists, else its overall best
// candidate; only a strictly cost-improving feasible
// candidate is adopted, and the pass repeats until a full sweep across all
// six families finds no improvement.
func postOptimize(cfg *vrpconfig.Config, current *solution.Solution, penalty *solution.Penalty) *solution.Solution {
	zero := map[neighborhood.Neighborhood]*neighborhood.TabuList{}
	for _, n := range neighborhood.All {
		zero[n] = neighborhood.NewTabuList(0)
	}

	for {
		improved := false
		for _, n := range neighborhood.All {
			neighbor, _, ok := Search(cfg, current, n, zero[n], penalty, current.Cost(penalty))
			if !ok {
				continue
			}
			if neighbor.Feasible && neighbor.Cost(penalty) < current.Cost(penalty) {
				current = neighbor
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return current
}
