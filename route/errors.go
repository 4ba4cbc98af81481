package route

import "errors"

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrMalformedSequence indicates a sequence whose first or last element is
	// not the depot (0), or whose length is below 3.
	ErrMalformedSequence = errors.New("route: malformed sequence (must start/end at depot, length >= 3)")

	// ErrNotServable indicates a customer cannot be served by the requested
	// vehicle kind (e.g. a non-dronable customer pushed onto a drone route).
	ErrNotServable = errors.New("route: customer not servable by this vehicle kind")

	// ErrEmptyAfterPop indicates Pop was called on a single-customer route,
	// which would leave no interior customer; callers must detect this case
	// and drop the route instead of calling Pop.
	ErrEmptyAfterPop = errors.New("route: cannot pop the only customer from a route")

	// ErrUnsupportedExtractSize indicates inter_route_extract was requested
	// for a segment size other than 1 (Move10) or 2 (Move20).
	ErrUnsupportedExtractSize = errors.New("route: inter_route_extract only supports segment size 1 or 2")
)
