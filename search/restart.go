package search

import (
	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// ejectionSweepBound caps the number of ejection-chain moves attempted per
// restart (spec §4.E step 5 "a bounded number"). Chosen generously relative
// to typical instance sizes; each step accepts its cheapest non-tabu
// candidate whether or not it improves, so the sweep ends earlier only when
// ejectionSweep runs out of route triples, candidates or non-tabu moves.
const ejectionSweepBound = 20

// ejectionSweep runs up to ejectionSweepBound ejection-chain moves against
// current, always targeting the current decisive vehicle's first route as
// routeI and two other arbitrary slots as routeJ/routeK, greedily accepting
// the cheapest non-tabu candidate each step (spec §4.E step 5: "run a
// bounded number of ejection-chain moves on current against its own tabu
// list, updating best as usual"). It stops early once no candidate route
// triple, no eligible move, or no non-tabu move remains.
func ejectionSweep(
	cfg *vrpconfig.Config,
	current *solution.Solution,
	tabu *neighborhood.TabuList,
	elite *EliteSet,
	best *solution.Solution,
	penalty *solution.Penalty,
) (*solution.Solution, *solution.Solution) {
	for step := 0; step < ejectionSweepBound; step++ {
		kind, vehicle := decisiveVehicle(current)
		if vehicle == -1 {
			break
		}
		decisiveRoutes := routesOf(current, kind, vehicle)
		if len(decisiveRoutes) == 0 {
			break
		}
		routeI := decisiveRoutes[0]

		var otherSlots []slot
		for _, o := range allSlots(current) {
			if o.kind == kind && o.vehicle == vehicle && o.r == routeI {
				continue
			}
			otherSlots = append(otherSlots, o)
		}
		if len(otherSlots) < 2 {
			break
		}
		jSlot, kSlot := otherSlots[0], otherSlots[1]

		candidates := neighborhood.EjectionChain(routeI, jSlot.r, kSlot.r)
		if len(candidates) == 0 {
			break
		}

		var bestIdx = -1
		var bestNeighbor *solution.Solution
		var bestCost float64
		for i, c := range candidates {
			if tabu.Contains(c.Tabu) {
				continue
			}
			edits := []edit{
				{kind, vehicle, 0, c.RouteI},
				{jSlot.kind, jSlot.vehicle, jSlot.index, c.RouteJ},
				{kSlot.kind, kSlot.vehicle, kSlot.index, c.RouteK},
			}
			neighbor := applyEdits(cfg, current, edits)
			cost := neighbor.Cost(penalty)
			if bestIdx == -1 || cost < bestCost {
				bestIdx, bestNeighbor, bestCost = i, neighbor, cost
			}
		}
		if bestNeighbor == nil {
			break
		}

		tabu.Insert(candidates[bestIdx].Tabu)
		current = bestNeighbor
		if current.Feasible && current.Cost(penalty) < best.Cost(penalty) {
			best = current
			elite.Add(best)
		}
	}

	return current, best
}
