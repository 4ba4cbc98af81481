// Package neighborhood implements component B of the core: the six move
// families (Move10, Move11, Move20, Move21, Move22, TwoOpt) plus the
// three-route ejection chain, in their intra-route, inter-route and
// inter-route-extract forms, each paired with a sorted tabu attribute.
//
// Determinism: generators iterate positions in increasing index order, so
// the first candidate returned for a given route is stable across runs
// (spec scenario S4). Intra-route results are memoized per (*route.Route,
// Neighborhood) pair — route pointers are already unique per customer
// sequence (route.New's content-addressed cache), so pointer identity is a
// correct and cheap memoization key.
package neighborhood

import (
	"sort"

	"github.com/katalvlaran/taburoute/route"
)

// Neighborhood identifies one of the six move families, or the restart-only
// ejection chain.
type Neighborhood int

const (
	Move10 Neighborhood = iota
	Move11
	Move20
	Move21
	Move22
	TwoOpt
	EjectionChain
)

// All lists the six cyclic-rotation families in the fixed order the Cyclic
// and Variable strategies rotate through (spec §4.E, §8 property 11).
// EjectionChain is intentionally excluded: it is restart-local, never part
// of the cyclic rotation (spec §9).
var All = [6]Neighborhood{Move10, Move11, Move20, Move21, Move22, TwoOpt}

func (n Neighborhood) String() string {
	switch n {
	case Move10:
		return "move10"
	case Move11:
		return "move11"
	case Move20:
		return "move20"
	case Move21:
		return "move21"
	case Move22:
		return "move22"
	case TwoOpt:
		return "two_opt"
	case EjectionChain:
		return "ejection_chain"
	default:
		return "unknown"
	}
}

// TabuAttribute is a sorted vector of customer ids fingerprinting a move.
// Sorted at construction so Key is stable regardless of discovery order.
type TabuAttribute []int

func newTabu(ids ...int) TabuAttribute {
	t := make(TabuAttribute, len(ids))
	copy(t, ids)
	sort.Ints(t)

	return t
}

// Key renders a TabuAttribute as a comparable map key.
func (t TabuAttribute) Key() string {
	b := make([]byte, 0, len(t)*4)
	for i, v := range t {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, v)
	}

	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

// IntraCandidate is one result of Route.IntraRoute: a replacement route for
// the same vehicle plus its tabu fingerprint.
type IntraCandidate struct {
	Route *route.Route
	Tabu  TabuAttribute
}

// InterCandidate is one result of a two-route generator. Self or Other is
// nil when that side's route is fully emptied by the move (spec §4.A/§4.B
// "None encodes an emptied route to be removed by the orchestrator").
type InterCandidate struct {
	Self  *route.Route
	Other *route.Route
	Tabu  TabuAttribute
}

// ExtractCandidate is one result of InterRouteExtract: self loses a
// segment, and a brand-new route of the other kind is formed from it.
type ExtractCandidate struct {
	Self *route.Route
	New  *route.Route
	Tabu TabuAttribute
}

// EjectionCandidate is one result of the three-route ejection chain.
type EjectionCandidate struct {
	RouteI, RouteJ, RouteK *route.Route
	Tabu                   TabuAttribute
}

var intraCache = map[intraKey][]IntraCandidate{}

type intraKey struct {
	r *route.Route
	n Neighborhood
}

// ResetCaches drops every memoized intra-route candidate list. Intended for
// test isolation between runs that install a fresh route.Init config.
func ResetCaches() {
	intraCache = map[intraKey][]IntraCandidate{}
}

func makeRouteOrNil(kind route.Kind, interior []int) *route.Route {
	if len(interior) == 0 {
		return nil
	}
	full := make([]int, 0, len(interior)+2)
	full = append(full, 0)
	full = append(full, interior...)
	full = append(full, 0)

	return route.New(kind, full)
}

func removeAt(interior []int, i int) []int {
	out := make([]int, 0, len(interior)-1)
	out = append(out, interior[:i]...)
	out = append(out, interior[i+1:]...)

	return out
}

func removeSpan(interior []int, i, span int) []int {
	out := make([]int, 0, len(interior)-span)
	out = append(out, interior[:i]...)
	out = append(out, interior[i+span:]...)

	return out
}

func insertAt(interior []int, p int, values ...int) []int {
	out := make([]int, 0, len(interior)+len(values))
	out = append(out, interior[:p]...)
	out = append(out, values...)
	out = append(out, interior[p:]...)

	return out
}
