package route

import "math"

// computeTruckMetrics fills distance, weight, working time, capacity
// violation and waiting-time violation for a truck route, per spec §4.A.
func computeTruckMetrics(r *Route) {
	seq := r.Sequence
	nHops := len(seq) - 1

	var distance float64
	accumulated := make([]float64, nHops+1) // accumulated[i] = time to reach seq[i]
	for j := 0; j < nHops; j++ {
		d := cfg.TruckDistances[seq[j]][seq[j+1]]
		distance += d
		accumulated[j+1] = accumulated[j] + d/cfg.TruckSpeed
	}
	r.Distance = distance
	r.WorkingTime = distance / cfg.TruckSpeed

	var weight float64
	for _, c := range r.Interior() {
		weight += cfg.Demands[c]
	}
	r.Weight = weight
	r.CapacityViolation = math.Max(0, weight-cfg.TruckCapacity)

	var waiting float64
	for i := 1; i < len(seq)-1; i++ {
		waiting += math.Max(0, r.WorkingTime-accumulated[i]-cfg.WaitingTimeLimit)
	}
	r.WaitingTimeViolation = waiting
}

// computeDroneMetrics fills distance, weight, working time, capacity,
// waiting-time, energy and fixed-time violations for a drone route, per
// spec §4.A. Energy accumulates hop by hop using the load still on board
// *before* the demand of the customer just reached is dropped (spec §4.A
// "demand still on board ... dropped in order"). This is a delivery-model
// accumulation — onboard starts at the route's full weight and decreases
// as each interior customer is served — and it deliberately does not match
// original_source/src/routes.rs's accumulation, which is pickup-style
// (weight starts at 0 and grows by demands[customers[i]] after each hop's
// power draw is computed); see DESIGN.md.
func computeDroneMetrics(r *Route) {
	seq := r.Sequence
	nHops := len(seq) - 1
	drone := cfg.Drone

	var weight float64
	for _, c := range r.Interior() {
		weight += cfg.Demands[c]
	}
	r.Weight = weight

	var (
		distance    float64
		workingTime float64
		energy      float64
		onboard     = weight
	)
	accumulated := make([]float64, nHops+1)

	for j := 0; j < nHops; j++ {
		d := cfg.DroneDistances[seq[j]][seq[j+1]]
		distance += d
		ct := drone.CruiseTime(d)
		hopTime := drone.TakeoffTime() + ct + drone.LandingTime()
		workingTime += hopTime
		accumulated[j+1] = accumulated[j] + hopTime

		energy += drone.TakeoffPower(onboard)*drone.TakeoffTime() +
			drone.CruisePower(onboard)*ct +
			drone.LandingPower(onboard)*drone.LandingTime()

		// Arrived at seq[j+1]; if it is an interior customer, its demand is
		// dropped off before the next hop departs.
		if j+1 < len(seq)-1 {
			onboard -= cfg.Demands[seq[j+1]]
		}
	}

	r.Distance = distance
	r.WorkingTime = workingTime
	r.CapacityViolation = math.Max(0, weight-drone.Capacity())
	r.EnergyViolation = math.Max(0, energy-drone.Battery())
	r.FixedTimeViolation = math.Max(0, workingTime-drone.FixedTime())

	var waiting float64
	for i := 1; i < len(seq)-1; i++ {
		waiting += math.Max(0, workingTime-accumulated[i]-cfg.WaitingTimeLimit)
	}
	r.WaitingTimeViolation = waiting
}
