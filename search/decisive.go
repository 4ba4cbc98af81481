package search

import (
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/solution"
)

// decisiveVehicle returns the vehicle currently attaining the makespan:
// trucks are scanned before drones, and a drone only overrides a
// truck-found maximum when its working time is strictly greater (spec §4.D
// step 1, tie-break resolved against the reference implementation's literal
// scan order — see DESIGN.md).
func decisiveVehicle(sol *solution.Solution) (route.Kind, int) {
	kind := route.Truck
	vehicle := -1
	best := -1.0

	for v, wt := range sol.TruckWorkingTime {
		if wt > best {
			best = wt
			vehicle = v
		}
	}
	for v, wt := range sol.DroneWorkingTime {
		if wt > best {
			best = wt
			vehicle = v
			kind = route.Drone
		}
	}

	return kind, vehicle
}
