package neighborhood

import "errors"

var (
	// ErrUnsupportedExtract indicates inter_route_extract was requested for a
	// neighborhood other than Move10 or Move20 (the only two sizes defined).
	ErrUnsupportedExtract = errors.New("neighborhood: inter_route_extract only supports Move10 and Move20")

	// ErrNoEjectionVehicle indicates neither candidate route belongs to the
	// decisive vehicle, violating the ejection-chain precondition.
	ErrNoEjectionVehicle = errors.New("neighborhood: ejection chain requires at least one decisive-vehicle route")
)
