package search

import (
	"math/rand"

	"github.com/katalvlaran/taburoute/solution"
)

// EliteSet is the bounded, diversity-preserving collection of feasible
// best-found solutions used for restarts (spec §4.E). When a new best is
// added past capacity, the member with the smallest Hamming distance to it
// is evicted (spec scenario S5) — the least diverse member, not the oldest.
type EliteSet struct {
	capacity int
	members  []*solution.Solution
}

// NewEliteSet returns an empty EliteSet bounded at capacity members.
func NewEliteSet(capacity int) *EliteSet {
	return &EliteSet{capacity: capacity}
}

// Len reports the current member count.
func (e *EliteSet) Len() int {
	return len(e.members)
}

// Add inserts s, evicting the member closest to s by Hamming distance if
// the set is already at capacity.
func (e *EliteSet) Add(s *solution.Solution) {
	if e.capacity <= 0 {
		return
	}
	if len(e.members) < e.capacity {
		e.members = append(e.members, s)

		return
	}

	evictIdx, minDist := 0, -1
	for i, m := range e.members {
		d := m.HammingDistance(s)
		if minDist == -1 || d < minDist {
			minDist = d
			evictIdx = i
		}
	}
	e.members[evictIdx] = s
}

// Pop removes and returns a uniformly random member (spec §4.E step 5
// "pop a uniformly random elite solution"). Returns nil, false if empty.
func (e *EliteSet) Pop(rng *rand.Rand) (*solution.Solution, bool) {
	if len(e.members) == 0 {
		return nil, false
	}
	i := rng.Intn(len(e.members))
	s := e.members[i]
	e.members = append(e.members[:i], e.members[i+1:]...)

	return s, true
}
