package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

func lineConfig(customers int, capacity float64) *vrpconfig.Config {
	n := customers + 1
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = 1
			}
		}
	}
	demands := make([]float64, n)
	dronable := make([]bool, n)
	for i := range dronable {
		dronable[i] = true
		demands[i] = 1
	}
	demands[0] = 0

	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = customers
	cfg.Demands = demands
	cfg.Dronable = dronable
	cfg.X = make([]float64, n)
	cfg.Y = make([]float64, n)
	cfg.TruckDistances = dist
	cfg.DroneDistances = dist
	cfg.TruckSpeed = 1.0
	cfg.TruckCapacity = capacity
	cfg.WaitingTimeLimit = 1000.0

	return &cfg
}

func TestNew_FeasibleSolutionCostEqualsWorkingTime(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	sol := solution.New(cfg, [][]*route.Route{{r}}, nil)

	require.True(t, sol.Feasible)
	penalty := solution.NewPenalty()
	require.Equal(t, sol.WorkingTime, sol.Cost(penalty))
}

func TestNew_InfeasibleSolutionHasPositiveCapacityViolation(t *testing.T) {
	cfg := lineConfig(2, 1)
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	sol := solution.New(cfg, [][]*route.Route{{r}}, nil)

	require.False(t, sol.Feasible)
	require.Greater(t, sol.CapacityViolation, 0.0)

	penalty := solution.NewPenalty()
	require.Greater(t, sol.Cost(penalty), sol.WorkingTime)
}

func TestPenalty_AdaptsUpAndClamps(t *testing.T) {
	cfg := lineConfig(2, 1)
	route.Init(cfg)
	r := route.New(route.Truck, []int{0, 1, 2, 0})
	sol := solution.New(cfg, [][]*route.Route{{r}}, nil)

	p := solution.NewPenalty()
	for i := 0; i < 100; i++ {
		p.Update(sol)
	}
	e, c, w, f := p.Read()
	require.Equal(t, 1.0, e)
	require.Equal(t, vrpconfig.PenaltyMax, c)
	require.Equal(t, 1.0, w)
	require.Equal(t, 1.0, f)
}

func TestHammingDistance_ZeroForIdenticalRoutes(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	a := solution.New(cfg, [][]*route.Route{{r}}, nil)
	b := solution.New(cfg, [][]*route.Route{{r}}, nil)

	require.Equal(t, 0, a.HammingDistance(b))
}

func TestHammingDistance_CountsDifferingSuccessors(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r1 := route.New(route.Truck, []int{0, 1, 2, 0})
	r2 := route.New(route.Truck, []int{0, 2, 1, 0})
	a := solution.New(cfg, [][]*route.Route{{r1}}, nil)
	b := solution.New(cfg, [][]*route.Route{{r2}}, nil)

	require.Equal(t, 2, a.HammingDistance(b))
}

func TestVerify_PanicsOnMissingCustomer(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 0})
	sol := solution.New(cfg, [][]*route.Route{{r}}, nil)

	require.PanicsWithValue(t, solution.ErrCustomerMissing, sol.Verify)
}

func TestVerify_PanicsOnDuplicateCustomer(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r1 := route.New(route.Truck, []int{0, 1, 0})
	r2 := route.New(route.Truck, []int{0, 1, 2, 0})
	sol := solution.New(cfg, [][]*route.Route{{r1, r2}}, nil)

	require.PanicsWithValue(t, solution.ErrCustomerDuplicated, sol.Verify)
}

func TestVerify_OKOnCompleteCoverage(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	sol := solution.New(cfg, [][]*route.Route{{r}}, nil)

	require.NotPanics(t, sol.Verify)
}
