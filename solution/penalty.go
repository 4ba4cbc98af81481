package solution

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/taburoute/vrpconfig"
)

// Penalty holds the four adaptive penalty coefficients (alpha_e, alpha_c,
// alpha_w, alpha_f) as atomically-read scalars (spec §5, §9
// "process-wide penalty coefficients"): Cost reads them from deep inside
// candidate evaluation on every move enumerated, while only the driver's
// adaptive update step (Update) ever writes them. Execution is
// single-threaded (spec §5), so the atomics exist purely to keep the read
// path free of any lock, not to guard against real contention.
type Penalty struct {
	e, c, w, f atomic.Uint64
}

// NewPenalty returns a Penalty with every coefficient at 1 (no penalty).
func NewPenalty() *Penalty {
	p := &Penalty{}
	p.e.Store(math.Float64bits(1))
	p.c.Store(math.Float64bits(1))
	p.w.Store(math.Float64bits(1))
	p.f.Store(math.Float64bits(1))

	return p
}

// Read returns the current (alpha_e, alpha_c, alpha_w, alpha_f) snapshot.
func (p *Penalty) Read() (e, c, w, f float64) {
	return math.Float64frombits(p.e.Load()),
		math.Float64frombits(p.c.Load()),
		math.Float64frombits(p.w.Load()),
		math.Float64frombits(p.f.Load())
}

// Update adapts each channel against the corresponding violation of s:
// multiply by 1.5 if positive, else divide by 1.5, clamped to
// [PenaltyMin, PenaltyMax] (spec §4.E step 3).
func (p *Penalty) Update(s *Solution) {
	adapt(&p.e, s.EnergyViolation)
	adapt(&p.c, s.CapacityViolation)
	adapt(&p.w, s.WaitingTimeViolation)
	adapt(&p.f, s.FixedTimeViolation)
}

func adapt(a *atomic.Uint64, violation float64) {
	current := math.Float64frombits(a.Load())
	if violation > 0 {
		current *= vrpconfig.PenaltyUpFactor
	} else {
		current *= vrpconfig.PenaltyDownFactor
	}
	current = math.Max(vrpconfig.PenaltyMin, math.Min(vrpconfig.PenaltyMax, current))
	a.Store(math.Float64bits(current))
}
