package neighborhood

import "github.com/katalvlaran/taburoute/route"

// IntraRoute returns the memoized candidate list for r under the given
// neighborhood family, computing it on first request (spec §4.B "Intra
// results are memoized per route per neighborhood").
func IntraRoute(r *route.Route, n Neighborhood) []IntraCandidate {
	key := intraKey{r: r, n: n}
	if cached, ok := intraCache[key]; ok {
		return cached
	}

	var out []IntraCandidate
	switch n {
	case Move10:
		out = intraMove10(r)
	case Move11:
		out = intraMove11(r)
	case Move20:
		out = intraMove20(r)
	case Move21:
		out = intraMove21(r)
	case Move22:
		out = intraMove22(r)
	case TwoOpt:
		out = intraTwoOpt(r)
	default:
		out = nil
	}
	intraCache[key] = out

	return out
}

// intraMove10 moves each customer to every other position in the same
// route. Candidate count is m*(m-1) for m interior customers (spec §8 S4).
func intraMove10(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	out := make([]IntraCandidate, 0, m*(m-1))

	for i := 0; i < m; i++ {
		customer := interior[i]
		reduced := removeAt(interior, i)
		for p := 0; p <= len(reduced); p++ {
			if p == i {
				continue
			}
			next := insertAt(reduced, p, customer)
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(customer),
			})
		}
	}

	return out
}

// intraMove11 swaps every pair of distinct positions.
func intraMove11(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	out := make([]IntraCandidate, 0, m*(m-1)/2)

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			next := append([]int(nil), interior...)
			next[i], next[j] = next[j], next[i]
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(interior[i], interior[j]),
			})
		}
	}

	return out
}

// intraMove20 relocates every consecutive pair to every other position.
func intraMove20(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	if m < 2 {
		return nil
	}
	out := make([]IntraCandidate, 0, (m-1)*(m-2))

	for i := 0; i <= m-2; i++ {
		a, b := interior[i], interior[i+1]
		reduced := removeSpan(interior, i, 2)
		for p := 0; p <= len(reduced); p++ {
			if p == i {
				continue
			}
			next := insertAt(reduced, p, a, b)
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(a, b),
			})
		}
	}

	return out
}

// intraMove21 swaps a consecutive pair with a disjoint single.
func intraMove21(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	if m < 3 {
		return nil
	}
	out := make([]IntraCandidate, 0, (m-1)*(m-2))

	for i := 0; i <= m-2; i++ {
		a, b := interior[i], interior[i+1]
		for j := 0; j < m; j++ {
			if j == i || j == i+1 {
				continue
			}
			single := interior[j]
			next := make([]int, 0, m)
			for pos := 0; pos < m; pos++ {
				switch pos {
				case i:
					next = append(next, single)
				case i + 1:
					continue
				case j:
					next = append(next, a, b)
				default:
					next = append(next, interior[pos])
				}
			}
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(a, b, single),
			})
		}
	}

	return out
}

// intraMove22 swaps two disjoint consecutive pairs.
func intraMove22(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	if m < 4 {
		return nil
	}
	out := make([]IntraCandidate, 0)

	for i := 0; i <= m-2; i++ {
		for j := i + 2; j <= m-2; j++ {
			next := append([]int(nil), interior...)
			next[i], next[i+1], next[j], next[j+1] = next[j], next[j+1], next[i], next[i+1]
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(interior[i], interior[i+1], interior[j], interior[j+1]),
			})
		}
	}

	return out
}

// intraTwoOpt reverses every interior subsegment of length >= 2.
func intraTwoOpt(r *route.Route) []IntraCandidate {
	interior := r.Interior()
	m := len(interior)
	out := make([]IntraCandidate, 0)

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			next := append([]int(nil), interior...)
			for a, b := i, j; a < b; a, b = a+1, b-1 {
				next[a], next[b] = next[b], next[a]
			}
			out = append(out, IntraCandidate{
				Route: route.New(r.Kind, wrap(next)),
				Tabu:  newTabu(interior[i], interior[j]),
			})
		}
	}

	return out
}

func wrap(interior []int) []int {
	full := make([]int, 0, len(interior)+2)
	full = append(full, 0)
	full = append(full, interior...)
	full = append(full, 0)

	return full
}
