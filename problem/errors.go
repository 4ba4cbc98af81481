package problem

import "errors"

// ErrShapeMismatch is returned when x/y/demands/dronable don't all have
// length customersCount+1.
var ErrShapeMismatch = errors.New("problem: x/y/demands/dronable length must equal customersCount+1")

// ErrUnknownDistanceMetric is returned for a distanceMetric value other
// than "euclidean" or "manhattan".
var ErrUnknownDistanceMetric = errors.New("problem: unknown distance metric")
