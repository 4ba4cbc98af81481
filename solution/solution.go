// Package solution implements component C of the core: the aggregate of
// per-vehicle route lists, its derived makespan and four normalized
// violation channels, the penalty-weighted cost function, and the
// Hamming-distance used for elite-set diversity.
//
// Solutions are copy-on-write (spec §3): New never mutates its inputs, and
// neighborhood exploration clones the route-list slices, not the Routes
// themselves (Routes are immutable and shared via route.New's cache).
package solution

import (
	"math"

	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// Solution is the frozen aggregate of every vehicle's route list, plus the
// metrics derived from it at construction time (spec §4.C).
type Solution struct {
	TruckRoutes [][]*route.Route
	DroneRoutes [][]*route.Route

	TruckWorkingTime []float64
	DroneWorkingTime []float64
	WorkingTime      float64

	EnergyViolation      float64
	CapacityViolation    float64
	WaitingTimeViolation float64
	FixedTimeViolation   float64

	Feasible bool

	cfg *vrpconfig.Config
}

// New aggregates truckRoutes/droneRoutes (per-vehicle route lists) into a
// Solution: O(sum of route counts) to recompute per-vehicle working time
// and the four normalized violation totals (spec §4.C). It is a pure
// function of its inputs and cfg (spec §8 property 4).
func New(cfg *vrpconfig.Config, truckRoutes, droneRoutes [][]*route.Route) *Solution {
	s := &Solution{
		TruckRoutes:       cloneRouteLists(truckRoutes),
		DroneRoutes:       cloneRouteLists(droneRoutes),
		TruckWorkingTime:  make([]float64, len(truckRoutes)),
		DroneWorkingTime:  make([]float64, len(droneRoutes)),
		cfg:               cfg,
	}

	var (
		capacityViolation    float64
		energyRaw            float64
		waitingRaw           float64
		fixedTimeRaw         float64
		makespan             float64
	)

	for v, routes := range truckRoutes {
		var wt float64
		for _, r := range routes {
			wt += r.WorkingTime
			capacityViolation += r.CapacityViolation / cfg.TruckCapacity
			waitingRaw += r.WaitingTimeViolation
		}
		s.TruckWorkingTime[v] = wt
		if wt > makespan {
			makespan = wt
		}
	}

	droneCapacity := 0.0
	if cfg.Drone != nil {
		droneCapacity = cfg.Drone.Capacity()
	}
	for v, routes := range droneRoutes {
		var wt float64
		for _, r := range routes {
			wt += r.WorkingTime
			capacityViolation += vrpconfig.DivByInfIsZero(r.CapacityViolation, droneCapacity)
			waitingRaw += r.WaitingTimeViolation
			energyRaw += r.EnergyViolation
			fixedTimeRaw += r.FixedTimeViolation
		}
		s.DroneWorkingTime[v] = wt
		if wt > makespan {
			makespan = wt
		}
	}

	s.WorkingTime = makespan
	s.CapacityViolation = capacityViolation
	s.WaitingTimeViolation = vrpconfig.DivByInfIsZero(waitingRaw, cfg.WaitingTimeLimit)
	if cfg.Drone != nil {
		s.EnergyViolation = vrpconfig.DivByInfIsZero(energyRaw, cfg.Drone.Battery())
		s.FixedTimeViolation = vrpconfig.DivByInfIsZero(fixedTimeRaw, cfg.Drone.FixedTime())
	}
	s.Feasible = s.EnergyViolation == 0 && s.CapacityViolation == 0 &&
		s.WaitingTimeViolation == 0 && s.FixedTimeViolation == 0

	return s
}

func cloneRouteLists(lists [][]*route.Route) [][]*route.Route {
	out := make([][]*route.Route, len(lists))
	for i, l := range lists {
		out[i] = append([]*route.Route(nil), l...)
	}

	return out
}

// Cost implements spec §4.C: working_time * (1 + sum of penalty-weighted
// violations)^E. Feasible solutions (all four violations zero) have
// cost == working_time.
func (s *Solution) Cost(penalty *Penalty) float64 {
	ae, ac, aw, af := penalty.Read()
	weighted := 1 + ae*s.EnergyViolation + ac*s.CapacityViolation +
		aw*s.WaitingTimeViolation + af*s.FixedTimeViolation

	return s.WorkingTime * math.Pow(weighted, s.cfg.PenaltyExponent)
}

// HammingDistance counts customers whose successor (the next stop in their
// route, with the final stop's successor taken as the depot) differs
// between s and other. Used by the elite set for diversity-based eviction
// (spec §4.E).
func (s *Solution) HammingDistance(other *Solution) int {
	a := successors(s)
	b := successors(other)

	distance := 0
	for customer, succA := range a {
		if b[customer] != succA {
			distance++
		}
	}

	return distance
}

func successors(s *Solution) map[int]int {
	out := make(map[int]int)
	record := func(lists [][]*route.Route) {
		for _, routes := range lists {
			for _, r := range routes {
				seq := r.Sequence
				for i := 0; i < len(seq)-1; i++ {
					if seq[i] == 0 {
						continue
					}
					out[seq[i]] = seq[i+1]
				}
			}
		}
	}
	record(s.TruckRoutes)
	record(s.DroneRoutes)

	return out
}

// Verify panics (per spec §7, invariant breaches are fatal) if any
// non-depot customer appears zero or >=2 times across both fleets, if a
// drone route contains a non-dronable customer, or if SingleTruckRoute /
// SingleDroneRoute is configured and breached.
func (s *Solution) Verify() {
	counts := make(map[int]int)
	countCustomer := func(lists [][]*route.Route) {
		for _, routes := range lists {
			for _, r := range routes {
				for _, c := range r.Interior() {
					counts[c]++
				}
			}
		}
	}
	countCustomer(s.TruckRoutes)
	countCustomer(s.DroneRoutes)

	for c := 1; c <= s.cfg.CustomersCount; c++ {
		switch counts[c] {
		case 0:
			panic(ErrCustomerMissing)
		case 1:
			// exactly once, as required
		default:
			panic(ErrCustomerDuplicated)
		}
	}

	for _, routes := range s.DroneRoutes {
		for _, r := range routes {
			for _, c := range r.Interior() {
				if !s.cfg.Dronable[c] {
					panic(ErrNonDronableOnDrone)
				}
			}
			if s.cfg.SingleDroneRoute && len(r.Interior()) != 1 {
				panic(ErrSingleDroneRouteViolated)
			}
		}
	}

	if s.cfg.SingleTruckRoute {
		for _, routes := range s.TruckRoutes {
			if len(routes) > 1 {
				panic(ErrSingleTruckRouteViolated)
			}
		}
	}
}
