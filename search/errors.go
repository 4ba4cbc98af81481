package search

import "errors"

var (
	// ErrNoVehicles indicates a Solution has zero truck and zero drone
	// vehicles, so no decisive vehicle can be identified.
	ErrNoVehicles = errors.New("search: solution has no vehicles to search")

	// ErrNoFeasibleRestart indicates a restart was required (reset_after
	// elapsed with no improvement) but the elite set was empty, which is
	// the driver's normal termination condition (spec §4.E step 6), not an
	// application error. Run ends its loop in that case and does not return
	// this error.
	ErrNoFeasibleRestart = errors.New("search: restart required but elite set is empty")
)
