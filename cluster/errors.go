package cluster

import "errors"

// ErrNoIndices is returned when Clusterize is asked to partition an empty
// index set.
var ErrNoIndices = errors.New("cluster: no indices to partition")

// ErrNonPositiveClusterCount is returned when clusterCount is zero or
// negative.
var ErrNonPositiveClusterCount = errors.New("cluster: cluster count must be positive")
