package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/metrics"
	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/search"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

func smallSolution(t *testing.T) *solution.Solution {
	t.Helper()
	dist := [][]float64{{0, 1}, {1, 0}}
	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = 1
	cfg.Demands = []float64{0, 1}
	cfg.Dronable = []bool{true, true}
	cfg.X = []float64{0, 1}
	cfg.Y = []float64{0, 0}
	cfg.TruckDistances = dist
	cfg.DroneDistances = dist
	cfg.TruckSpeed = 1
	cfg.TruckCapacity = 10
	cfg.WaitingTimeLimit = 1000

	route.Init(&cfg)
	r := route.New(route.Truck, []int{0, 1, 0})

	return solution.New(&cfg, [][]*route.Route{{r}}, nil)
}

// gaugeValue finds the single sample of a registered metric family by its
// fully-qualified name, failing the test if it isn't present exactly once.
func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		m := f.GetMetric()[0]
		if m.GetGauge() != nil {
			return m.GetGauge().GetValue()
		}

		return m.GetCounter().GetValue()
	}

	t.Fatalf("metric %s not found", name)

	return 0
}

func TestCollector_LogReflectsRowIntoGauges(t *testing.T) {
	sol := smallSolution(t)
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	penalty := solution.NewPenalty()
	cost := sol.Cost(penalty)
	require.NoError(t, c.Log(search.LogRow{
		Iteration:    1,
		Neighborhood: neighborhood.Move10,
		Solution:     sol,
		Cost:         cost,
		PenaltyE:     1, PenaltyC: 1, PenaltyW: 1, PenaltyF: 1,
	}))

	require.Equal(t, cost, gaugeValue(t, reg, "taburoute_current_cost"))
	require.Equal(t, sol.WorkingTime, gaugeValue(t, reg, "taburoute_current_working_time"))
	require.Equal(t, float64(1), gaugeValue(t, reg, "taburoute_current_feasible"))
	require.Equal(t, float64(1), gaugeValue(t, reg, "taburoute_iterations_total"))
}

func TestCollector_FinalizeRecordsSummary(t *testing.T) {
	sol := smallSolution(t)
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	require.NoError(t, c.Finalize(search.FinalizeSummary{
		Final:                 sol,
		LastImprovedIteration: 3,
		Elapsed:               2 * time.Second,
	}))

	require.Equal(t, float64(3), gaugeValue(t, reg, "taburoute_last_improved_iteration"))
	require.Equal(t, float64(2), gaugeValue(t, reg, "taburoute_run_elapsed_seconds"))
}
