// Package construct implements component F: the greedy initial constructor
// that builds a feasible starting Solution via clustering, truckable/
// dronable singleton probing, and priority-queue insertion (spec §4.F).
package construct

import (
	"container/heap"
	"math/rand"

	"github.com/katalvlaran/taburoute/cluster"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// Greedy builds an initial feasible Solution for cfg (spec §4.F). It calls
// route.Init(cfg) itself, so it must run before any other package touches
// the route cache. clusterer partitions customers into vehicle-sized
// groups; seed drives every randomized tie-break (initial truckable pick,
// and clusterer seeding if the caller built it with the same seed).
func Greedy(cfg *vrpconfig.Config, clusterer cluster.Clusterer, seed int64) (*solution.Solution, error) {
	route.Init(cfg)
	rng := rand.New(rand.NewSource(seed))

	n := cfg.NCustomers()
	customers := make([]int, cfg.CustomersCount)
	for i := range customers {
		customers[i] = i + 1
	}

	truckable := make([]bool, n)
	dronable := make([]bool, n)
	for _, c := range customers {
		if cfg.TrucksCount > 0 {
			truckable[c] = route.Single(route.Truck, c).Feasible()
		}
		if cfg.DronesCount > 0 && route.Servable(route.Drone, c) {
			dronable[c] = route.Single(route.Drone, c).Feasible()
		}
		if !truckable[c] && !dronable[c] {
			return nil, ErrNoFeasibleSingleton
		}
	}

	clusterCount := cfg.TrucksCount
	if clusterCount == 0 {
		clusterCount = cfg.DronesCount
	}
	if clusterCount == 0 {
		clusterCount = 1
	}
	clusters, err := clusterer.Clusterize(customers, clusterCount)
	if err != nil {
		return nil, err
	}

	g := &greedyState{
		cfg:       cfg,
		truckable: truckable,
		dronable:  dronable,
		trucks:    make([][]*route.Route, cfg.TrucksCount),
		drones:    make([][]*route.Route, cfg.DronesCount),
		pool:      make(map[int]bool, len(customers)),
		remaining: make([][]int, len(clusters)),
	}
	for _, c := range customers {
		g.pool[c] = true
	}

	pq := &priorityQueue{state: g}
	heap.Init(pq)
	for ci, members := range clusters {
		g.remaining[ci] = append([]int(nil), members...)

		if cfg.TrucksCount > 0 {
			if c, ok := pickShuffled(members, truckable, rng); ok {
				heap.Push(pq, &pqItem{kind: route.Truck, vehicle: ci % cfg.TrucksCount, cluster: ci, customer: c})
			}
		}
		if cfg.DronesCount > 0 {
			if c, ok := nearestDepot(members, dronable, cfg.DroneDistances); ok {
				heap.Push(pq, &pqItem{kind: route.Drone, vehicle: ci % cfg.DronesCount, cluster: ci, customer: c})
			}
		}
	}

	for pq.Len() > 0 && len(g.pool) > 0 {
		item := heap.Pop(pq).(*pqItem)
		if !g.pool[item.customer] {
			continue
		}

		if !g.accept(item) {
			continue
		}

		delete(g.pool, item.customer)
		g.remaining[item.cluster] = removeValue(g.remaining[item.cluster], item.customer)

		if next, ok := g.nearestEligible(item); ok {
			heap.Push(pq, &pqItem{kind: item.kind, vehicle: item.vehicle, cluster: item.cluster, customer: next})
		}
	}

	if len(g.pool) > 0 {
		return nil, ErrTrivialSolutionImpossible
	}

	g.drones = redistributeDroneRoutes(cfg, g.drones)

	return solution.New(cfg, g.trucks, g.drones), nil
}

type greedyState struct {
	cfg       *vrpconfig.Config
	truckable []bool
	dronable  []bool
	trucks    [][]*route.Route
	drones    [][]*route.Route
	pool      map[int]bool
	remaining [][]int
}

// accept tries the append-then-fresh-route sequence for item (spec §4.F
// step 4), committing g.trucks/g.drones in place on success.
func (g *greedyState) accept(item *pqItem) bool {
	eligible := item.customer != 0 &&
		((item.kind == route.Truck && g.truckable[item.customer]) ||
			(item.kind == route.Drone && g.dronable[item.customer]))
	if !eligible {
		return false
	}

	list := g.vehicleRoutes(item.kind, item.vehicle)
	canAppend := len(*list) > 0 && !(item.kind == route.Drone && g.cfg.SingleDroneRoute)
	if canAppend {
		last := (*list)[len(*list)-1]
		pushed := last.Push(item.customer, len(last.Interior()))
		if g.tryCommit(item.kind, item.vehicle, len(*list)-1, pushed) {
			return true
		}
	}

	canFresh := !(item.kind == route.Truck && g.cfg.SingleTruckRoute && len(*list) > 0)
	if canFresh {
		fresh := route.Single(item.kind, item.customer)
		if g.tryCommit(item.kind, item.vehicle, -1, fresh) {
			return true
		}
	}

	return false
}

// tryCommit builds the trial Solution with vehicle's route at index replaced
// (or appended, if index == -1) by candidate, and commits it if feasible.
func (g *greedyState) tryCommit(kind route.Kind, vehicle, index int, candidate *route.Route) bool {
	trialTrucks := cloneMatrix(g.trucks)
	trialDrones := cloneMatrix(g.drones)
	list := vehicleList(trialTrucks, trialDrones, kind, vehicle)
	if index == -1 {
		*list = append(*list, candidate)
	} else {
		(*list)[index] = candidate
	}

	trial := solution.New(g.cfg, trialTrucks, trialDrones)
	if !trial.Feasible {
		return false
	}
	g.trucks = trialTrucks
	g.drones = trialDrones

	return true
}

func (g *greedyState) vehicleRoutes(kind route.Kind, vehicle int) *[]*route.Route {
	if kind == route.Truck {
		return &g.trucks[vehicle]
	}

	return &g.drones[vehicle]
}

// nearestEligible finds the nearest-by-distance customer still eligible for
// item.kind, first among item's own cluster, then across the whole pool
// (spec §4.F step 4 "nearest eligible customer ... in the same cluster
// (else globally)").
func (g *greedyState) nearestEligible(item *pqItem) (int, bool) {
	dist := g.cfg.TruckDistances
	if item.kind == route.Drone {
		dist = g.cfg.DroneDistances
	}
	eligibleFn := func(c int) bool {
		if !g.pool[c] {
			return false
		}
		if item.kind == route.Truck {
			return g.truckable[c]
		}

		return g.dronable[c]
	}

	if c, ok := nearestTo(item.customer, g.remaining[item.cluster], eligibleFn, dist); ok {
		return c, true
	}

	var all []int
	for c := range g.pool {
		all = append(all, c)
	}

	return nearestTo(item.customer, all, eligibleFn, dist)
}

func nearestTo(from int, candidates []int, eligible func(int) bool, dist [][]float64) (int, bool) {
	best, bestDist := -1, -1.0
	for _, c := range candidates {
		if !eligible(c) {
			continue
		}
		d := dist[from][c]
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != -1
}

func pickShuffled(members []int, truckable []bool, rng *rand.Rand) (int, bool) {
	var eligible []int
	for _, c := range members {
		if truckable[c] {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return 0, false
	}

	return eligible[rng.Intn(len(eligible))], true
}

func nearestDepot(members []int, dronable []bool, droneDistances [][]float64) (int, bool) {
	best, bestDist := -1, -1.0
	for _, c := range members {
		if !dronable[c] {
			continue
		}
		d := droneDistances[0][c]
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != -1
}

func removeValue(s []int, v int) []int {
	for i, c := range s {
		if c == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

func cloneMatrix(m [][]*route.Route) [][]*route.Route {
	out := make([][]*route.Route, len(m))
	for i, l := range m {
		out[i] = append([]*route.Route(nil), l...)
	}

	return out
}

func vehicleList(tr, dr [][]*route.Route, kind route.Kind, vehicle int) *[]*route.Route {
	if kind == route.Truck {
		return &tr[vehicle]
	}

	return &dr[vehicle]
}

// redistributeDroneRoutes bin-packs every drone route, longest-first, into
// the currently least-loaded drone (spec §4.F step 5), once the customer
// pool is exhausted.
func redistributeDroneRoutes(cfg *vrpconfig.Config, drones [][]*route.Route) [][]*route.Route {
	var all []*route.Route
	for _, routes := range drones {
		all = append(all, routes...)
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].WorkingTime > all[i].WorkingTime {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	out := make([][]*route.Route, cfg.DronesCount)
	load := make([]float64, cfg.DronesCount)
	for _, r := range all {
		least := 0
		for v := 1; v < cfg.DronesCount; v++ {
			if load[v] < load[least] {
				least = v
			}
		}
		out[least] = append(out[least], r)
		load[least] += r.WorkingTime
	}

	return out
}
