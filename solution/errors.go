package solution

import "errors"

var (
	// ErrCustomerMissing indicates verify() found a customer absent from
	// every route.
	ErrCustomerMissing = errors.New("solution: customer missing from every route")

	// ErrCustomerDuplicated indicates verify() found a customer served by
	// two or more routes.
	ErrCustomerDuplicated = errors.New("solution: customer served by more than one route")

	// ErrNonDronableOnDrone indicates a drone route contains a customer
	// whose Dronable bit is false.
	ErrNonDronableOnDrone = errors.New("solution: non-dronable customer on a drone route")

	// ErrSingleTruckRouteViolated indicates SingleTruckRoute is set but a
	// truck was assigned more than one route.
	ErrSingleTruckRouteViolated = errors.New("solution: single_truck_route violated")

	// ErrSingleDroneRouteViolated indicates SingleDroneRoute is set but a
	// drone route serves more than one customer.
	ErrSingleDroneRouteViolated = errors.New("solution: single_drone_route violated")
)
