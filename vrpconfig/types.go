// Package vrpconfig defines the frozen Config record consumed by the tabu
// search core, the drone energy-model variants, and the neighborhood
// selection strategy.
//
// Design goals:
//   - Single frozen record: everything the core reads about the problem
//     instance and the search hyperparameters lives in one Config, built
//     once (by LoadFile or by hand) and never mutated afterwards.
//   - Determinism: nothing in Config depends on wall-clock time; Seed
//     controls every randomized component.
//   - Zero surprises: DefaultConfig returns the default hyperparameters
//     around an empty instance (no customers, so it does not pass Validate
//     until callers fill in the instance fields).
package vrpconfig

import "time"

// Strategy selects how the driver picks a neighborhood family each iteration.
type Strategy int

const (
	// Random: uniform choice over the six move families each iteration.
	Random Strategy = iota

	// Cyclic: round-robin over the six move families.
	Cyclic

	// Variable: resets to family 0 on improvement, else advances by one and
	// rolls current back to its pre-move state (classic VNS descent).
	Variable
)

// String renders the strategy name, used by report rows and CLI flags.
func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Cyclic:
		return "cyclic"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// Default knobs, mirrored from the teacher's Options register.
const (
	// DefaultTabuSizeFactor scales customers_count/active_vehicles into a
	// per-neighborhood tabu capacity.
	DefaultTabuSizeFactor = 1.0

	// DefaultResetAfterFactor scales the same base into the restart cadence.
	DefaultResetAfterFactor = 2.0

	// DefaultMaxEliteSize bounds the elite set.
	DefaultMaxEliteSize = 8

	// DefaultPenaltyExponent is the exponent E in the cost formula.
	DefaultPenaltyExponent = 1.5

	// DefaultWaitingTimeLimit is a generous per-customer waiting budget (seconds).
	DefaultWaitingTimeLimit = 3600.0

	// DefaultResetAfterCap is the hard ceiling on reset_after (spec §4.E: min(..., 500)).
	DefaultResetAfterCap = 500

	// PenaltyMin and PenaltyMax bound every adaptive penalty coefficient.
	PenaltyMin = 1.0
	PenaltyMax = 1000.0

	// PenaltyUpFactor and PenaltyDownFactor are the per-iteration adaptive multipliers.
	PenaltyUpFactor   = 1.5
	PenaltyDownFactor = 1.0 / 1.5
)

// Config is the frozen record consumed by the core. It is built once (via
// LoadFile or by hand, typically through DefaultConfig()) and never mutated
// after being handed to construct/search — packages read it through a
// pointer they are handed, except route, which keeps the pointer installed
// by route.Init in a package-level variable.
type Config struct {
	CustomersCount int
	TrucksCount    int
	DronesCount    int

	// X, Y are depot-relative coordinates, index 0 is the depot.
	X, Y []float64

	// Demands is per-customer payload demand, index 0 (depot) is always 0.
	Demands []float64

	// Dronable marks which customers a drone route may serve; index 0 is
	// conventionally true (the depot is always "servable").
	Dronable []bool

	// TruckDistances and DroneDistances are dense n x n matrices (n =
	// CustomersCount+1 including the depot row/column).
	TruckDistances [][]float64
	DroneDistances [][]float64

	TruckSpeed    float64
	TruckCapacity float64

	// Drone is the energy-model variant shared by every drone in the fleet.
	Drone DroneModel

	WaitingTimeLimit float64

	TabuSizeFactor   float64
	ResetAfterFactor float64
	MaxEliteSize     int
	PenaltyExponent  float64

	SingleTruckRoute bool
	SingleDroneRoute bool

	Strategy Strategy

	// FixIteration, when non-nil, terminates the driver after exactly that
	// many iterations instead of terminating on elite-set exhaustion.
	FixIteration *int

	// Verbose gates the restored per-iteration progress line (supplemented
	// from the original implementation, see DESIGN.md).
	Verbose bool

	// DryRun, when true, skips the tabu loop entirely and hands the initial
	// solution straight to Finalize (supplemented, see DESIGN.md).
	DryRun bool

	// Seed controls every randomized component (strategy==Random draws,
	// elite-set restart draws, constructor shuffles).
	Seed int64

	// RunTimeout optionally bounds wall-clock search time; zero means no
	// limit. Checked only between iterations, never mid-move.
	RunTimeout time.Duration
}

// NCustomers returns the matrix/row dimension including the depot.
func (c *Config) NCustomers() int {
	return c.CustomersCount + 1
}

// DefaultConfig returns a small, internally consistent Config shape with an
// unlimited drone model and a single truck; callers override fields for
// their actual problem instance.
func DefaultConfig() Config {
	return Config{
		CustomersCount:   0,
		TrucksCount:      1,
		DronesCount:      0,
		TruckSpeed:       1.0,
		TruckCapacity:    1.0,
		Drone:            NewUnlimitedModel(),
		WaitingTimeLimit: DefaultWaitingTimeLimit,
		TabuSizeFactor:   DefaultTabuSizeFactor,
		ResetAfterFactor: DefaultResetAfterFactor,
		MaxEliteSize:     DefaultMaxEliteSize,
		PenaltyExponent:  DefaultPenaltyExponent,
		Strategy:         Cyclic,
		Seed:             0,
	}
}

// Validate checks the structural shape invariants a Config must satisfy
// before it is handed to construct.Greedy or search.Run. It does not check
// feasibility (that is the constructor's job, see construct/greedy.go).
func (c *Config) Validate() error {
	if c.CustomersCount < 1 {
		return ErrNoCustomers
	}
	if c.TrucksCount == 0 && c.DronesCount == 0 {
		return ErrNoVehicles
	}
	n := c.NCustomers()
	if len(c.Demands) != n || len(c.Dronable) != n || len(c.X) != n || len(c.Y) != n {
		return ErrDemandsShape
	}
	if !matrixShapeOK(c.TruckDistances, n) || !matrixShapeOK(c.DroneDistances, n) {
		return ErrMatrixShape
	}
	if c.DronesCount > 0 && c.Drone == nil {
		return ErrNilDroneModel
	}
	if c.PenaltyExponent <= 0 {
		return ErrBadPenaltyExponent
	}

	return nil
}

func matrixShapeOK(m [][]float64, n int) bool {
	if len(m) != n {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}

	return true
}

// divByInfIsZero divides v by limit, returning 0 when limit is +Inf instead
// of the IEEE 754 result (which is already 0 for finite v/+Inf, but NaN
// when v is itself +Inf — e.g. an unlimited-battery drone accumulating
// energy over an unbounded route). Kept as a named helper so every call
// site reads its intent instead of relying on float semantics.
func divByInfIsZero(v, limit float64) float64 {
	if isInf(limit) {
		return 0
	}
	if limit == 0 {
		return 0
	}

	return v / limit
}

func isInf(f float64) bool {
	return f > maxFinite
}

// maxFinite is a practical "effectively infinite" threshold; DroneModel
// implementations that model an unbounded quantity return math.Inf(1),
// which is always greater than this.
const maxFinite = 1e18

// DivByInfIsZero exports divByInfIsZero for use by the solution package, which
// needs the identical semantics when normalizing capacity, waiting-time,
// energy and fixed-time violations.
func DivByInfIsZero(v, limit float64) float64 {
	return divByInfIsZero(v, limit)
}
