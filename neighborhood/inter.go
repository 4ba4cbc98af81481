package neighborhood

import "github.com/katalvlaran/taburoute/route"

// InterRoute enumerates the directional self -> other candidates for n.
// The caller (search.Search) is responsible for also invoking the reverse
// direction (swapping self/other) when the decisive-vehicle rule requires
// it (spec §4.D "the orchestrator separately considers the reverse by
// swapping arguments and renaming outputs").
func InterRoute(self, other *route.Route, n Neighborhood) []InterCandidate {
	switch n {
	case Move10:
		return interMove10(self, other)
	case Move11:
		return interMove11(self, other)
	case Move20:
		return interMove20(self, other)
	case Move21:
		return interMove21(self, other)
	case Move22:
		return interMove22(self, other)
	case TwoOpt:
		return interTwoOpt(self, other)
	default:
		return nil
	}
}

func interMove10(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	out := make([]InterCandidate, 0)

	for i, customer := range selfInterior {
		if !route.Servable(other.Kind, customer) {
			continue
		}
		newSelf := removeAt(selfInterior, i)
		for p := 0; p <= len(otherInterior); p++ {
			newOther := insertAt(otherInterior, p, customer)
			out = append(out, InterCandidate{
				Self:  makeRouteOrNil(self.Kind, newSelf),
				Other: route.New(other.Kind, wrap(newOther)),
				Tabu:  newTabu(customer),
			})
		}
	}

	return out
}

func interMove11(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	out := make([]InterCandidate, 0)

	for i, a := range selfInterior {
		if !route.Servable(other.Kind, a) {
			continue
		}
		for j, b := range otherInterior {
			if !route.Servable(self.Kind, b) {
				continue
			}
			newSelf := append([]int(nil), selfInterior...)
			newSelf[i] = b
			newOther := append([]int(nil), otherInterior...)
			newOther[j] = a
			out = append(out, InterCandidate{
				Self:  route.New(self.Kind, wrap(newSelf)),
				Other: route.New(other.Kind, wrap(newOther)),
				Tabu:  newTabu(a, b),
			})
		}
	}

	return out
}

func interMove20(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	m := len(selfInterior)
	out := make([]InterCandidate, 0)
	if m < 2 {
		return out
	}

	for i := 0; i <= m-2; i++ {
		a, b := selfInterior[i], selfInterior[i+1]
		if !route.Servable(other.Kind, a) || !route.Servable(other.Kind, b) {
			continue
		}
		newSelf := removeSpan(selfInterior, i, 2)
		for p := 0; p <= len(otherInterior); p++ {
			newOther := insertAt(otherInterior, p, a, b)
			out = append(out, InterCandidate{
				Self:  makeRouteOrNil(self.Kind, newSelf),
				Other: route.New(other.Kind, wrap(newOther)),
				Tabu:  newTabu(a, b),
			})
		}
	}

	return out
}

func interMove21(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	m := len(selfInterior)
	out := make([]InterCandidate, 0)
	if m < 2 || len(otherInterior) < 1 {
		return out
	}

	for i := 0; i <= m-2; i++ {
		a, b := selfInterior[i], selfInterior[i+1]
		if !route.Servable(other.Kind, a) || !route.Servable(other.Kind, b) {
			continue
		}
		reducedSelf := removeSpan(selfInterior, i, 2)
		for j, single := range otherInterior {
			if !route.Servable(self.Kind, single) {
				continue
			}
			newSelf := insertAt(reducedSelf, i, single)
			newOther := insertAt(removeAt(otherInterior, j), j, a, b)
			out = append(out, InterCandidate{
				Self:  route.New(self.Kind, wrap(newSelf)),
				Other: route.New(other.Kind, wrap(newOther)),
				Tabu:  newTabu(a, b, single),
			})
		}
	}

	return out
}

func interMove22(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	mS, mO := len(selfInterior), len(otherInterior)
	out := make([]InterCandidate, 0)
	if mS < 2 || mO < 2 {
		return out
	}

	for i := 0; i <= mS-2; i++ {
		a, b := selfInterior[i], selfInterior[i+1]
		if !route.Servable(other.Kind, a) || !route.Servable(other.Kind, b) {
			continue
		}
		for j := 0; j <= mO-2; j++ {
			c, d := otherInterior[j], otherInterior[j+1]
			if !route.Servable(self.Kind, c) || !route.Servable(self.Kind, d) {
				continue
			}
			newSelf := insertAt(removeSpan(selfInterior, i, 2), i, c, d)
			newOther := insertAt(removeSpan(otherInterior, j, 2), j, a, b)
			out = append(out, InterCandidate{
				Self:  route.New(self.Kind, wrap(newSelf)),
				Other: route.New(other.Kind, wrap(newOther)),
				Tabu:  newTabu(a, b, c, d),
			})
		}
	}

	return out
}

// interTwoOpt cross-exchanges tails: self keeps its first i customers and
// adopts other's tail after position j; other keeps its first j customers
// and adopts self's tail after position i.
func interTwoOpt(self, other *route.Route) []InterCandidate {
	selfInterior := self.Interior()
	otherInterior := other.Interior()
	mS, mO := len(selfInterior), len(otherInterior)
	out := make([]InterCandidate, 0)

	for i := 0; i <= mS; i++ {
		selfTail := selfInterior[i:]
		for j := 0; j <= mO; j++ {
			if i == mS && j == mO {
				continue // identity: no tail actually crosses over
			}
			otherTail := otherInterior[j:]
			if !allServable(self.Kind, otherTail) || !allServable(other.Kind, selfTail) {
				continue
			}

			newSelf := append(append([]int(nil), selfInterior[:i]...), otherTail...)
			newOther := append(append([]int(nil), otherInterior[:j]...), selfTail...)

			selfEndpoint, otherEndpoint := 0, 0
			if i > 0 {
				selfEndpoint = selfInterior[i-1]
			}
			if j > 0 {
				otherEndpoint = otherInterior[j-1]
			}

			out = append(out, InterCandidate{
				Self:  makeRouteOrNil(self.Kind, newSelf),
				Other: makeRouteOrNil(other.Kind, newOther),
				Tabu:  newTabu(selfEndpoint, otherEndpoint),
			})
		}
	}

	return out
}

func allServable(kind route.Kind, customers []int) bool {
	for _, c := range customers {
		if !route.Servable(kind, c) {
			return false
		}
	}

	return true
}
