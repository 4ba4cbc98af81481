package report_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/report"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/search"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

func smallSolution(t *testing.T) (*vrpconfig.Config, *solution.Solution) {
	t.Helper()
	n := 2
	dist := [][]float64{{0, 1}, {1, 0}}
	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = n - 1
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
	sol := solution.New(&cfg, [][]*route.Route{{r}}, nil)

	return &cfg, sol
}

func TestWriter_LogAndFinalizeProduceAllArtifacts(t *testing.T) {
	cfg, sol := smallSolution(t)
	dir := t.TempDir()

	w, err := report.NewWriter(zap.NewNop(), cfg, dir)
	require.NoError(t, err)

	penalty := solution.NewPenalty()
	require.NoError(t, w.Log(search.LogRow{
		Iteration:    1,
		Neighborhood: neighborhood.Move10,
		Solution:     sol,
		Cost:         sol.Cost(penalty),
		TabuList:     nil,
	}))

	require.NoError(t, w.Finalize(search.FinalizeSummary{
		Final:                 sol,
		TabuCapacity:          5,
		ResetAfter:            10,
		LastImprovedIteration: 1,
		Elapsed:               time.Millisecond,
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 5) // csv + summary.json + solution.json + config.json + convergence.html

	var sawCSV bool
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".csv" {
			sawCSV = true
			f, openErr := os.Open(filepath.Join(dir, e.Name()))
			require.NoError(t, openErr)
			defer f.Close()
			rows, readErr := csv.NewReader(f).ReadAll()
			require.NoError(t, readErr)
			require.Len(t, rows, 2) // header + one logged row
		}
	}
	require.True(t, sawCSV)
}

func TestWriter_LogAfterFinalizeFails(t *testing.T) {
	cfg, sol := smallSolution(t)
	dir := t.TempDir()

	w, err := report.NewWriter(zap.NewNop(), cfg, dir)
	require.NoError(t, err)
	require.NoError(t, w.Finalize(search.FinalizeSummary{Final: sol}))

	err = w.Log(search.LogRow{Iteration: 1, Solution: sol})
	require.ErrorIs(t, err, report.ErrAlreadyFinalized)
}
