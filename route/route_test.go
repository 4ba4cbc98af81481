package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

func gridConfig() *vrpconfig.Config {
	// Depot at 0, three colinear customers at (1,0),(2,0),(3,0), matching
	// spec scenario S2's layout.
	n := 4
	dist := make([][]float64, n)
	coords := []float64{0, 1, 2, 3}
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dist[i][j] = math.Abs(coords[i] - coords[j])
		}
	}

	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = 3
	cfg.X = []float64{0, 1, 2, 3}
	cfg.Y = []float64{0, 0, 0, 0}
	cfg.Demands = []float64{0, 1, 1, 1}
	cfg.Dronable = []bool{true, true, true, true}
	cfg.TruckDistances = dist
	cfg.DroneDistances = dist
	cfg.TruckSpeed = 1.0
	cfg.TruckCapacity = 10.0
	cfg.WaitingTimeLimit = 1000.0

	return &cfg
}

func TestNew_IsContentAddressed(t *testing.T) {
	cfg := gridConfig()
	route.Init(cfg)

	a := route.New(route.Truck, []int{0, 1, 2, 0})
	b := route.New(route.Truck, []int{0, 1, 2, 0})
	require.Same(t, a, b)

	c := route.New(route.Truck, []int{0, 2, 1, 0})
	require.NotSame(t, a, c)
}

func TestNew_PanicsOnMalformedSequence(t *testing.T) {
	cfg := gridConfig()
	route.Init(cfg)

	require.Panics(t, func() { route.New(route.Truck, []int{1, 2, 0}) })
	require.Panics(t, func() { route.New(route.Truck, []int{0, 1}) })
}

func TestTruckMetrics_WorkingTimeAndCapacity(t *testing.T) {
	cfg := gridConfig()
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 2, 3, 0})
	require.Equal(t, 6.0, r.Distance) // 0->2 (2) + 2->3 (1) + 3->0 (3)
	require.Equal(t, 6.0, r.WorkingTime)
	require.Equal(t, 2.0, r.Weight)
	require.Equal(t, 0.0, r.CapacityViolation)
}

func TestTruckMetrics_CapacityViolation(t *testing.T) {
	cfg := gridConfig()
	cfg.TruckCapacity = 1.0
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	require.Equal(t, 1.0, r.CapacityViolation) // weight 2 - capacity 1
}

func TestPushPop_RoundTrip(t *testing.T) {
	cfg := gridConfig()
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 0})
	pushed := r.Push(2, 1)
	require.Equal(t, []int{0, 1, 2, 0}, pushed.Sequence)

	popped := pushed.Pop(1)
	require.Equal(t, []int{0, 1, 0}, popped.Sequence)
}

func TestServable_TruckAlwaysTrue(t *testing.T) {
	cfg := gridConfig()
	cfg.Dronable = []bool{true, false, false, false}
	route.Init(cfg)

	require.True(t, route.Servable(route.Truck, 1))
	require.False(t, route.Servable(route.Drone, 1))
}

func TestDroneMetrics_UnlimitedModelHasZeroEnergyAndFixedTimeViolation(t *testing.T) {
	cfg := gridConfig()
	cfg.Drone = vrpconfig.NewUnlimitedModel()
	route.Init(cfg)

	r := route.New(route.Drone, []int{0, 1, 2, 3, 0})
	require.Equal(t, 0.0, r.EnergyViolation)
	require.Equal(t, 0.0, r.FixedTimeViolation)
}

func TestDroneMetrics_LoadDropsInOrder(t *testing.T) {
	cfg := gridConfig()
	linear := vrpconfig.NewLinearModel()
	linear.CruisePowerPerKgW = 100
	linear.CruisePowerBaseW = 0
	linear.TakeoffPowerW = 0
	linear.LandingPowerW = 0
	linear.TakeoffTimeS = 0
	linear.LandingTimeS = 0
	linear.CruiseSpeedMS = 1.0
	linear.BatteryWh = 0
	cfg.Drone = linear
	cfg.Demands = []float64{0, 2, 0, 0}
	route.Init(cfg)

	// Single customer with demand 2: hop out carries load 2, hop back carries 0.
	r := route.New(route.Drone, []int{0, 1, 0})
	wantEnergy := linear.CruisePower(2)*1 + linear.CruisePower(0)*1
	require.InDelta(t, wantEnergy, r.EnergyViolation, 1e-9)
}
