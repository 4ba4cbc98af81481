// Package route implements the immutable, content-addressed Route entity
// (component A of the core): a single closed trip of one truck or one
// drone, plus its derived metrics (working time and the four violation
// channels).
//
// Determinism & caching: Route.New is a pure function of (Kind, Sequence)
// and the process-wide Config installed via Init — it returns the same
// *Route pointer for a sequence seen before, so pointer equality doubles as
// value equality and downstream memoization (see neighborhood.IntraRoute)
// can key off the pointer directly. Routes are created once and live for
// the rest of the process; there is no eviction (see spec §5 / DESIGN.md).
//
// Errors: New panics on a malformed sequence (first/last element not the
// depot, or length < 3) — this is a structural bug in caller code, not a
// recoverable condition (spec §7).
package route

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/taburoute/vrpconfig"
)

// Kind distinguishes truck routes from drone routes. The two share every
// operation below; only the metric formulas and the servability rule
// differ, so a tagged int is enough — no deep inheritance (spec §9).
type Kind int

const (
	Truck Kind = iota
	Drone
)

func (k Kind) String() string {
	if k == Drone {
		return "drone"
	}
	return "truck"
}

// Route is an immutable closed trip starting and ending at the depot
// (customer 0). All fields besides Kind and Sequence are derived and
// frozen at construction time.
type Route struct {
	Kind     Kind
	Sequence []int

	Distance float64
	Weight   float64

	WorkingTime          float64
	CapacityViolation    float64
	WaitingTimeViolation float64

	// EnergyViolation and FixedTimeViolation are only ever non-zero for
	// Drone routes; Truck routes carry them as zero.
	EnergyViolation    float64
	FixedTimeViolation float64
}

var cfg *vrpconfig.Config

// Init installs the process-wide Config read by every metric computation.
// It must be called exactly once, before the first call to New, by the
// program's entry point (construct.Greedy or a test's setup).
func Init(c *vrpconfig.Config) {
	cfg = c
	cache = make(map[string]*Route)
}

var cache map[string]*Route

func cacheKey(kind Kind, sequence []int) string {
	var b strings.Builder
	if kind == Drone {
		b.WriteByte('D')
	} else {
		b.WriteByte('T')
	}
	for _, c := range sequence {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// New returns the cached Route for (kind, sequence), constructing and
// caching it on first sight. Panics if sequence is not depot-closed
// (ErrMalformedSequence).
func New(kind Kind, sequence []int) *Route {
	if len(sequence) < 3 || sequence[0] != 0 || sequence[len(sequence)-1] != 0 {
		panic(ErrMalformedSequence)
	}

	key := cacheKey(kind, sequence)
	if r, ok := cache[key]; ok {
		return r
	}

	seq := make([]int, len(sequence))
	copy(seq, sequence)

	r := &Route{Kind: kind, Sequence: seq}
	if kind == Drone {
		computeDroneMetrics(r)
	} else {
		computeTruckMetrics(r)
	}
	cache[key] = r

	return r
}

// Single returns the Route [0, customer, 0].
func Single(kind Kind, customer int) *Route {
	return New(kind, []int{0, customer, 0})
}

// Servable reports whether customer may appear on a route of this kind.
// Trucks can serve any customer; drones are restricted to cfg.Dronable.
func Servable(kind Kind, customer int) bool {
	if kind == Truck {
		return true
	}

	return cfg.Dronable[customer]
}

// Push returns a new Route with customer inserted at position pos (0-based,
// counting from the first interior slot) among the interior customers.
// pos == len(interior) appends immediately before the trailing depot.
func (r *Route) Push(customer int, pos int) *Route {
	interior := r.Sequence[1 : len(r.Sequence)-1]
	next := make([]int, 0, len(interior)+1)
	next = append(next, interior[:pos]...)
	next = append(next, customer)
	next = append(next, interior[pos:]...)

	full := make([]int, 0, len(next)+2)
	full = append(full, 0)
	full = append(full, next...)
	full = append(full, 0)

	return New(r.Kind, full)
}

// Pop returns a new Route with the interior customer at position pos
// removed. Panics (ErrEmptyAfterPop) if r has only one interior customer —
// callers must special-case dropping the whole route instead.
func (r *Route) Pop(pos int) *Route {
	interior := r.Sequence[1 : len(r.Sequence)-1]
	if len(interior) <= 1 {
		panic(ErrEmptyAfterPop)
	}

	next := make([]int, 0, len(interior)-1)
	next = append(next, interior[:pos]...)
	next = append(next, interior[pos+1:]...)

	full := make([]int, 0, len(next)+2)
	full = append(full, 0)
	full = append(full, next...)
	full = append(full, 0)

	return New(r.Kind, full)
}

// Interior returns the customer ids between the two depot bookends.
func (r *Route) Interior() []int {
	return r.Sequence[1 : len(r.Sequence)-1]
}

// Feasible reports whether this route alone, ignoring every other route in
// its solution, violates none of its kind's channels: truck routes check
// capacity and waiting time; drone routes additionally check energy and
// fixed time. Used by the greedy constructor's truckable/dronable singleton
// probe (spec §4.F step 2); Solution.Feasible is the aggregate the rest of
// the core actually cares about.
func (r *Route) Feasible() bool {
	base := r.CapacityViolation == 0 && r.WaitingTimeViolation == 0
	if r.Kind == Truck {
		return base
	}

	return base && r.EnergyViolation == 0 && r.FixedTimeViolation == 0
}
