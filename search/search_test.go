package search_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/search"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

var errBoom = errors.New("boom")

// lineConfig builds a depot + n colinear customers instance, unit distances
// apart, with a single truck and no drones.
func lineConfig(customers int, capacity float64) *vrpconfig.Config {
	n := customers + 1
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Abs(float64(i - j))
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
	cfg.MaxEliteSize = 4

	return &cfg
}

func TestSearch_FindsImprovingTwoOptMove(t *testing.T) {
	cfg := lineConfig(3, 10)
	route.Init(cfg)

	// A deliberately crossed order: 0 -> 2 -> 1 -> 3 -> 0 is longer than the
	// sorted order on this colinear instance.
	bad := route.New(route.Truck, []int{0, 2, 1, 3, 0})
	sol := solution.New(cfg, [][]*route.Route{{bad}}, nil)
	penalty := solution.NewPenalty()

	tabu := neighborhood.NewTabuList(10)
	neighbor, _, ok := search.Search(cfg, sol, neighborhood.TwoOpt, tabu, penalty, sol.Cost(penalty))
	require.True(t, ok)
	require.Less(t, neighbor.Cost(penalty), sol.Cost(penalty))
}

func TestSearch_ReturnsFalseWhenNoVehicles(t *testing.T) {
	cfg := lineConfig(2, 10)
	route.Init(cfg)

	sol := solution.New(cfg, [][]*route.Route{}, nil)
	penalty := solution.NewPenalty()
	tabu := neighborhood.NewTabuList(10)

	_, _, ok := search.Search(cfg, sol, neighborhood.Move10, tabu, penalty, sol.Cost(penalty))
	require.False(t, ok)
}

type recordingLogger struct {
	rows     []search.LogRow
	finalize *search.FinalizeSummary
}

func (l *recordingLogger) Log(row search.LogRow) error {
	l.rows = append(l.rows, row)

	return nil
}

func (l *recordingLogger) Finalize(summary search.FinalizeSummary) error {
	l.finalize = &summary

	return nil
}

func TestRun_ImprovesOrMatchesInitialCostAndFinalizes(t *testing.T) {
	cfg := lineConfig(4, 10)
	cfg.Seed = 7
	iters := 50
	cfg.FixIteration = &iters
	route.Init(cfg)

	bad := route.New(route.Truck, []int{0, 4, 2, 1, 3, 0})
	initial := solution.New(cfg, [][]*route.Route{{bad}}, nil)
	logger := &recordingLogger{}

	final, err := search.Run(cfg, initial, logger, nil)
	require.NoError(t, err)
	require.NotNil(t, final)
	require.LessOrEqual(t, final.WorkingTime, initial.WorkingTime)
	require.Len(t, logger.rows, iters)
	require.NotNil(t, logger.finalize)
	require.Equal(t, final, logger.finalize.Final)
}

func TestRun_VerboseEmitsDebugProgressLine(t *testing.T) {
	cfg := lineConfig(3, 10)
	cfg.Seed = 1
	cfg.Verbose = true
	iters := 5
	cfg.FixIteration = &iters
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 3, 0})
	initial := solution.New(cfg, [][]*route.Route{{r}}, nil)

	core, logs := observer.New(zapcore.DebugLevel)
	zlog := zap.New(core)

	_, err := search.Run(cfg, initial, &recordingLogger{}, zlog)
	require.NoError(t, err)
	require.Equal(t, iters, logs.Len())
	for _, entry := range logs.All() {
		require.Equal(t, "tabu search progress", entry.Message)
	}
}

func TestRun_NonVerboseEmitsNoDebugProgressLine(t *testing.T) {
	cfg := lineConfig(3, 10)
	cfg.Seed = 1
	iters := 5
	cfg.FixIteration = &iters
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 3, 0})
	initial := solution.New(cfg, [][]*route.Route{{r}}, nil)

	core, logs := observer.New(zapcore.DebugLevel)
	zlog := zap.New(core)

	_, err := search.Run(cfg, initial, &recordingLogger{}, zlog)
	require.NoError(t, err)
	require.Equal(t, 0, logs.Len())
}

func TestRun_StopsBetweenIterationsOnceRunTimeoutElapses(t *testing.T) {
	cfg := lineConfig(4, 10)
	cfg.Seed = 3
	cfg.RunTimeout = time.Nanosecond
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 4, 2, 1, 3, 0})
	initial := solution.New(cfg, [][]*route.Route{{r}}, nil)
	logger := &recordingLogger{}

	final, err := search.Run(cfg, initial, logger, nil)
	require.NoError(t, err)
	require.NotNil(t, final)
	// A timeout this small elapses after the very first iteration, well
	// short of elite-set exhaustion or a fixed iteration budget.
	require.Less(t, len(logger.rows), 50)
}

func TestRun_PropagatesLoggerError(t *testing.T) {
	cfg := lineConfig(2, 10)
	one := 3
	cfg.FixIteration = &one
	route.Init(cfg)

	r := route.New(route.Truck, []int{0, 1, 2, 0})
	initial := solution.New(cfg, [][]*route.Route{{r}}, nil)

	boom := errLogger{}
	_, err := search.Run(cfg, initial, boom, nil)
	require.Error(t, err)
}

type errLogger struct{}

func (errLogger) Log(search.LogRow) error               { return errBoom }
func (errLogger) Finalize(search.FinalizeSummary) error { return nil }
