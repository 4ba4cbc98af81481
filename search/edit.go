package search

import (
	"sort"

	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// edit describes one route-slot substitution used to build a neighbor
// Solution without mutating the parent (spec §3 "copy-on-write").
// Index == -1 appends newRoute as a brand-new route for vehicle (used by
// inter_route_extract candidates); newRoute == nil removes the existing
// route at Index (spec
// §4.B "None encodes an emptied route").
type edit struct {
	kind     route.Kind
	vehicle  int
	index    int
	newRoute *route.Route
}

// applyEdits builds the neighbor Solution that results from applying edits
// to sol. Edits touching the same vehicle are applied highest-index-first
// so an earlier removal never shifts the index of a not-yet-applied edit;
// appends are applied last.
func applyEdits(cfg *vrpconfig.Config, sol *solution.Solution, edits []edit) *solution.Solution {
	tr := cloneMatrix(sol.TruckRoutes)
	dr := cloneMatrix(sol.DroneRoutes)

	var appends []edit
	var inPlace []edit
	for _, e := range edits {
		if e.index == -1 {
			appends = append(appends, e)
		} else {
			inPlace = append(inPlace, e)
		}
	}

	sort.Slice(inPlace, func(i, j int) bool {
		a, b := inPlace[i], inPlace[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		if a.vehicle != b.vehicle {
			return a.vehicle < b.vehicle
		}

		return a.index > b.index
	})

	for _, e := range inPlace {
		list := vehicleList(tr, dr, e.kind, e.vehicle)
		if e.newRoute == nil {
			*list = append((*list)[:e.index], (*list)[e.index+1:]...)
		} else {
			(*list)[e.index] = e.newRoute
		}
	}
	for _, e := range appends {
		list := vehicleList(tr, dr, e.kind, e.vehicle)
		*list = append(*list, e.newRoute)
	}

	return solution.New(cfg, tr, dr)
}

func vehicleList(tr, dr [][]*route.Route, kind route.Kind, vehicle int) *[]*route.Route {
	if kind == route.Truck {
		return &tr[vehicle]
	}

	return &dr[vehicle]
}

func cloneMatrix(m [][]*route.Route) [][]*route.Route {
	out := make([][]*route.Route, len(m))
	for i, l := range m {
		out[i] = append([]*route.Route(nil), l...)
	}

	return out
}
