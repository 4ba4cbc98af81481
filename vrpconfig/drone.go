package vrpconfig

import "math"

// DroneModel exposes the energy/time surface every drone route computation
// needs. The four implementations below (linear, non-linear, endurance,
// unlimited) are the variants named in §6: they differ only in how power
// scales with carried weight and in which of capacity/battery/fixed_time is
// the binding constraint.
type DroneModel interface {
	Capacity() float64
	Battery() float64
	FixedTime() float64
	TakeoffPower(weight float64) float64
	LandingPower(weight float64) float64
	CruisePower(weight float64) float64
	TakeoffTime() float64
	LandingTime() float64
	CruiseTime(distance float64) float64
}

// LinearModel scales power linearly with carried weight. Fixed-time is
// unconstrained (+Inf): the binding constraint is the battery.
type LinearModel struct {
	CapacityKg        float64
	BatteryWh         float64
	TakeoffPowerW     float64
	LandingPowerW     float64
	CruisePowerBaseW  float64
	CruisePowerPerKgW float64
	TakeoffTimeS      float64
	LandingTimeS      float64
	CruiseSpeedMS     float64
}

// NewLinearModel returns a LinearModel with moderate, physically plausible
// defaults for a small delivery quadcopter.
func NewLinearModel() *LinearModel {
	return &LinearModel{
		CapacityKg:        5.0,
		BatteryWh:         200.0,
		TakeoffPowerW:     450.0,
		LandingPowerW:     350.0,
		CruisePowerBaseW:  300.0,
		CruisePowerPerKgW: 60.0,
		TakeoffTimeS:      10.0,
		LandingTimeS:      10.0,
		CruiseSpeedMS:     15.0,
	}
}

func (m *LinearModel) Capacity() float64  { return m.CapacityKg }
func (m *LinearModel) Battery() float64   { return m.BatteryWh * 3600 }
func (m *LinearModel) FixedTime() float64 { return math.Inf(1) }
func (m *LinearModel) TakeoffPower(weight float64) float64 {
	return m.TakeoffPowerW + weight*m.CruisePowerPerKgW
}
func (m *LinearModel) LandingPower(weight float64) float64 {
	return m.LandingPowerW + weight*m.CruisePowerPerKgW
}
func (m *LinearModel) CruisePower(weight float64) float64 {
	return m.CruisePowerBaseW + weight*m.CruisePowerPerKgW
}
func (m *LinearModel) TakeoffTime() float64            { return m.TakeoffTimeS }
func (m *LinearModel) LandingTime() float64            { return m.LandingTimeS }
func (m *LinearModel) CruiseTime(distance float64) float64 { return distance / m.CruiseSpeedMS }

// NonLinearModel scales power super-linearly with carried weight (a crude
// stand-in for the thrust-vs-disk-loading curve of a real rotor): a
// quadratic term is added on top of the linear one. Fixed-time is
// unconstrained, as in LinearModel.
type NonLinearModel struct {
	CapacityKg         float64
	BatteryWh          float64
	TakeoffPowerW      float64
	LandingPowerW      float64
	CruisePowerBaseW   float64
	CruisePowerPerKgW  float64
	CruisePowerQuadW   float64
	TakeoffTimeS       float64
	LandingTimeS       float64
	CruiseSpeedMS      float64
}

// NewNonLinearModel returns a NonLinearModel with defaults tuned so the
// quadratic term is a visible correction, not a dominant one, at typical
// payloads.
func NewNonLinearModel() *NonLinearModel {
	return &NonLinearModel{
		CapacityKg:        5.0,
		BatteryWh:         200.0,
		TakeoffPowerW:     450.0,
		LandingPowerW:     350.0,
		CruisePowerBaseW:  300.0,
		CruisePowerPerKgW: 60.0,
		CruisePowerQuadW:  6.0,
		TakeoffTimeS:      10.0,
		LandingTimeS:      10.0,
		CruiseSpeedMS:     15.0,
	}
}

func (m *NonLinearModel) Capacity() float64  { return m.CapacityKg }
func (m *NonLinearModel) Battery() float64   { return m.BatteryWh * 3600 }
func (m *NonLinearModel) FixedTime() float64 { return math.Inf(1) }
func (m *NonLinearModel) TakeoffPower(weight float64) float64 {
	return m.TakeoffPowerW + weight*m.CruisePowerPerKgW + weight*weight*m.CruisePowerQuadW
}
func (m *NonLinearModel) LandingPower(weight float64) float64 {
	return m.LandingPowerW + weight*m.CruisePowerPerKgW + weight*weight*m.CruisePowerQuadW
}
func (m *NonLinearModel) CruisePower(weight float64) float64 {
	return m.CruisePowerBaseW + weight*m.CruisePowerPerKgW + weight*weight*m.CruisePowerQuadW
}
func (m *NonLinearModel) TakeoffTime() float64            { return m.TakeoffTimeS }
func (m *NonLinearModel) LandingTime() float64            { return m.LandingTimeS }
func (m *NonLinearModel) CruiseTime(distance float64) float64 { return distance / m.CruiseSpeedMS }

// EnduranceModel is bound by a fixed maximum flight duration rather than a
// tracked energy budget: Battery() is unconstrained (+Inf) so
// energy_violation is always normalized to zero, and FixedTime() carries
// the real limit instead.
type EnduranceModel struct {
	CapacityKg     float64
	EnduranceS     float64
	TakeoffPowerW  float64
	LandingPowerW  float64
	CruisePowerW   float64
	TakeoffTimeS   float64
	LandingTimeS   float64
	CruiseSpeedMS  float64
}

// NewEnduranceModel returns an EnduranceModel with a 25-minute flight budget.
func NewEnduranceModel() *EnduranceModel {
	return &EnduranceModel{
		CapacityKg:    4.0,
		EnduranceS:    1500.0,
		TakeoffPowerW: 400.0,
		LandingPowerW: 320.0,
		CruisePowerW:  280.0,
		TakeoffTimeS:  8.0,
		LandingTimeS:  8.0,
		CruiseSpeedMS: 17.0,
	}
}

func (m *EnduranceModel) Capacity() float64                     { return m.CapacityKg }
func (m *EnduranceModel) Battery() float64                      { return math.Inf(1) }
func (m *EnduranceModel) FixedTime() float64                    { return m.EnduranceS }
func (m *EnduranceModel) TakeoffPower(weight float64) float64   { return m.TakeoffPowerW }
func (m *EnduranceModel) LandingPower(weight float64) float64   { return m.LandingPowerW }
func (m *EnduranceModel) CruisePower(weight float64) float64    { return m.CruisePowerW }
func (m *EnduranceModel) TakeoffTime() float64                  { return m.TakeoffTimeS }
func (m *EnduranceModel) LandingTime() float64                  { return m.LandingTimeS }
func (m *EnduranceModel) CruiseTime(distance float64) float64   { return distance / m.CruiseSpeedMS }

// UnlimitedModel has no binding constraint: capacity, battery, and
// fixed-time are all +Inf. Used when the fleet-of-one drone config models a
// purely time-cost carrier (spec scenario S1).
type UnlimitedModel struct {
	TakeoffTimeS  float64
	LandingTimeS  float64
	CruiseSpeedMS float64
}

// NewUnlimitedModel returns an UnlimitedModel with a nominal cruise speed
// and near-zero takeoff/landing overhead.
func NewUnlimitedModel() *UnlimitedModel {
	return &UnlimitedModel{
		TakeoffTimeS:  0,
		LandingTimeS:  0,
		CruiseSpeedMS: 15.0,
	}
}

func (m *UnlimitedModel) Capacity() float64                     { return math.Inf(1) }
func (m *UnlimitedModel) Battery() float64                      { return math.Inf(1) }
func (m *UnlimitedModel) FixedTime() float64                    { return math.Inf(1) }
func (m *UnlimitedModel) TakeoffPower(weight float64) float64   { return 0 }
func (m *UnlimitedModel) LandingPower(weight float64) float64   { return 0 }
func (m *UnlimitedModel) CruisePower(weight float64) float64    { return 0 }
func (m *UnlimitedModel) TakeoffTime() float64                  { return m.TakeoffTimeS }
func (m *UnlimitedModel) LandingTime() float64                  { return m.LandingTimeS }
func (m *UnlimitedModel) CruiseTime(distance float64) float64   { return distance / m.CruiseSpeedMS }
