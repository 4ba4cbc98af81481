package neighborhood

import "github.com/katalvlaran/taburoute/route"

// InterRouteExtract removes a segment of size 1 (Move10) or 2 (Move20) from
// self and forms a brand-new route of targetKind from exactly that segment.
// Only Move10 and Move20 are defined (spec §4.A); any other neighborhood
// returns ErrUnsupportedExtract.
func InterRouteExtract(self *route.Route, targetKind route.Kind, n Neighborhood) ([]ExtractCandidate, error) {
	switch n {
	case Move10:
		return extractSize(self, targetKind, 1), nil
	case Move20:
		return extractSize(self, targetKind, 2), nil
	default:
		return nil, ErrUnsupportedExtract
	}
}

func extractSize(self *route.Route, targetKind route.Kind, size int) []ExtractCandidate {
	interior := self.Interior()
	m := len(interior)
	out := make([]ExtractCandidate, 0)
	if m < size {
		return out
	}

	for i := 0; i <= m-size; i++ {
		segment := interior[i : i+size]
		if !allServable(targetKind, segment) {
			continue
		}
		newSelf := removeSpan(interior, i, size)
		newRoute := route.New(targetKind, wrap(append([]int(nil), segment...)))
		out = append(out, ExtractCandidate{
			Self: makeRouteOrNil(self.Kind, newSelf),
			New:  newRoute,
			Tabu: newTabu(segment...),
		})
	}

	return out
}
