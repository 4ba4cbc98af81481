// Package search implements components D and E of the core: the per-kind
// neighborhood orchestrator (Search) and the outer tabu-search driver
// (Run), plus the decisive-vehicle selection and elite-set diversification
// both lean on.
package search

import (
	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

type slot struct {
	kind    route.Kind
	vehicle int
	index   int
	r       *route.Route
}

func allSlots(sol *solution.Solution) []slot {
	var out []slot
	for v, routes := range sol.TruckRoutes {
		for i, r := range routes {
			out = append(out, slot{route.Truck, v, i, r})
		}
	}
	for v, routes := range sol.DroneRoutes {
		for i, r := range routes {
			out = append(out, slot{route.Drone, v, i, r})
		}
	}

	return out
}

func opposite(k route.Kind) route.Kind {
	if k == route.Truck {
		return route.Drone
	}

	return route.Truck
}

type candidate struct {
	edits    []edit
	tabu     neighborhood.TabuAttribute
	neighbor *solution.Solution
	cost     float64
}

// Search is the per-kind neighborhood orchestrator (spec §4.D): it
// identifies the decisive vehicle, enumerates intra/inter/extract
// candidates for neighborhood n restricted to that vehicle's routes, and
// returns the best admissible candidate under the aspiration/tabu
// selection rule. ok is false when no admissible candidate exists (the
// "empty neighborhood" normal control signal, spec §7).
func Search(
	cfg *vrpconfig.Config,
	sol *solution.Solution,
	n neighborhood.Neighborhood,
	tabu *neighborhood.TabuList,
	penalty *solution.Penalty,
	aspirationCost float64,
) (neighbor *solution.Solution, tabuAttr neighborhood.TabuAttribute, ok bool) {
	kind, vehicle := decisiveVehicle(sol)
	if vehicle == -1 {
		return nil, nil, false
	}

	decisiveRoutes := routesOf(sol, kind, vehicle)
	others := allSlots(sol)

	var candidates []candidate

	for idx, r := range decisiveRoutes {
		for _, ic := range neighborhood.IntraRoute(r, n) {
			candidates = append(candidates, candidate{
				edits: []edit{{kind, vehicle, idx, ic.Route}},
				tabu:  ic.Tabu,
			})
		}

		for _, o := range others {
			if o.kind == kind && o.vehicle == vehicle && o.index == idx {
				continue
			}
			sameVehicle := o.kind == kind && o.vehicle == vehicle

			for _, c := range neighborhood.InterRoute(r, o.r, n) {
				candidates = append(candidates, candidate{
					edits: []edit{
						{kind, vehicle, idx, c.Self},
						{o.kind, o.vehicle, o.index, c.Other},
					},
					tabu: c.Tabu,
				})
			}

			if sameVehicle && isDirectional(n) {
				for _, c := range neighborhood.InterRoute(o.r, r, n) {
					candidates = append(candidates, candidate{
						edits: []edit{
							{kind, vehicle, idx, c.Other},
							{o.kind, o.vehicle, o.index, c.Self},
						},
						tabu: c.Tabu,
					})
				}
			}
		}

		if n == neighborhood.Move10 || n == neighborhood.Move20 {
			target := opposite(r.Kind)
			extracted, _ := neighborhood.InterRouteExtract(r, target, n)
			vehicleCount := cfg.TrucksCount
			if target == route.Drone {
				vehicleCount = cfg.DronesCount
			}

			for _, ec := range extracted {
				if cfg.SingleDroneRoute && target == route.Drone && len(ec.New.Interior()) != 1 {
					continue
				}
				for v2 := 0; v2 < vehicleCount; v2++ {
					if cfg.SingleTruckRoute && target == route.Truck && len(routesOf(sol, route.Truck, v2)) != 0 {
						continue
					}
					candidates = append(candidates, candidate{
						edits: []edit{
							{kind, vehicle, idx, ec.Self},
							{target, v2, -1, ec.New},
						},
						tabu: ec.Tabu,
					})
				}
			}
		}
	}

	return selectWinner(cfg, sol, candidates, tabu, penalty, aspirationCost)
}

// isDirectional reports whether n's inter-route form is directional
// (self -> other is not automatically equivalent to other -> self), per
// spec §4.B: Move10, Move20, Move21. Move11/Move22/TwoOpt already
// enumerate every swap/cross-exchange symmetrically.
func isDirectional(n neighborhood.Neighborhood) bool {
	return n == neighborhood.Move10 || n == neighborhood.Move20 || n == neighborhood.Move21
}

func routesOf(sol *solution.Solution, kind route.Kind, vehicle int) []*route.Route {
	if kind == route.Truck {
		return sol.TruckRoutes[vehicle]
	}

	return sol.DroneRoutes[vehicle]
}

// selectWinner applies spec §4.D step 5: aspiration overrides tabu for a
// new globally-best feasible candidate; otherwise the best non-tabu
// candidate wins; ties go to whichever was discovered first.
func selectWinner(
	cfg *vrpconfig.Config,
	sol *solution.Solution,
	candidates []candidate,
	tabu *neighborhood.TabuList,
	penalty *solution.Penalty,
	aspirationCost float64,
) (*solution.Solution, neighborhood.TabuAttribute, bool) {
	var bestAspirant, bestNonTabu *candidate

	for i := range candidates {
		c := &candidates[i]
		c.neighbor = applyEdits(cfg, sol, c.edits)
		c.cost = c.neighbor.Cost(penalty)

		if c.neighbor.Feasible && c.cost < aspirationCost {
			if bestAspirant == nil || c.cost < bestAspirant.cost {
				bestAspirant = c
			}
		}
		if !tabu.Contains(c.tabu) {
			if bestNonTabu == nil || c.cost < bestNonTabu.cost {
				bestNonTabu = c
			}
		}
	}

	var winner *candidate
	if bestAspirant != nil {
		winner = bestAspirant
	} else if bestNonTabu != nil {
		winner = bestNonTabu
	}
	if winner == nil {
		return nil, nil, false
	}

	tabu.Insert(winner.tabu)

	return winner.neighbor, winner.tabu, true
}
