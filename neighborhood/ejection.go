package neighborhood

import "github.com/katalvlaran/taburoute/route"

// EjectionChain enumerates three-route transformations: a customer a moves
// from routeI into routeJ, and simultaneously a customer b already on
// routeJ moves on into routeK, freeing load from routeI. It is the
// decisive vehicle's route's restart-only move (spec §4.B, §9
// "ejection chain is restart-local") — the caller is responsible for only
// invoking it when routeI (or one of routeJ/routeK) belongs to the
// decisive vehicle; this function performs the pure combinatorial
// transform and does not itself know about vehicle assignment.
//
// New customer insertion position is always the tail of the destination
// route's interior customers: the chain already enumerates every (a, b)
// pair, which is the combinatorially expensive part, and it only runs a
// bounded number of times per restart (spec §4.E step 5), so enumerating
// insertion positions too would buy little for a much larger candidate set.
func EjectionChain(routeI, routeJ, routeK *route.Route) []EjectionCandidate {
	iInterior := routeI.Interior()
	jInterior := routeJ.Interior()
	out := make([]EjectionCandidate, 0)

	for _, a := range iInterior {
		if !route.Servable(routeJ.Kind, a) {
			continue
		}
		for _, b := range jInterior {
			if b == a || !route.Servable(routeK.Kind, b) {
				continue
			}

			newI := removeValue(iInterior, a)
			newJ := append(removeValue(jInterior, b), a)
			newK := append(append([]int(nil), routeK.Interior()...), b)

			out = append(out, EjectionCandidate{
				RouteI: makeRouteOrNil(routeI.Kind, newI),
				RouteJ: route.New(routeJ.Kind, wrap(newJ)),
				RouteK: route.New(routeK.Kind, wrap(newK)),
				Tabu:   newTabu(a, b),
			})
		}
	}

	return out
}

func removeValue(interior []int, value int) []int {
	out := make([]int, 0, len(interior)-1)
	for _, c := range interior {
		if c == value {
			continue
		}
		out = append(out, c)
	}

	return out
}
