// Package report implements the external Logger collaborator (spec §6):
// Writer persists one CSV row per iteration, three JSON snapshots and an
// optional HTML convergence chart at Finalize, and narrates its own
// progress through a zap.Logger.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/search"
	"github.com/katalvlaran/taburoute/solution"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

// Writer is the report package's search.Logger implementation. One Writer
// serves exactly one Run call: construct it with NewWriter, hand it to
// search.Run, and read the output directory once Run returns.
type Writer struct {
	mu sync.Mutex

	runID  uuid.UUID
	dir    string
	cfg    *vrpconfig.Config
	logger *zap.Logger

	csvFile *os.File
	csv     *csv.Writer

	points    []convergencePoint
	finalized bool
}

type convergencePoint struct {
	iteration int
	cost      float64
}

// NewWriter creates outDir (if needed) and opens its per-iteration CSV
// file, writing the header row. logger is used for the Writer's own
// diagnostics, never for the per-iteration data itself.
func NewWriter(logger *zap.Logger, cfg *vrpconfig.Config, outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	id := uuid.New()
	csvPath := filepath.Join(outDir, fmt.Sprintf("%s-iterations.csv", id))
	f, err := os.Create(csvPath)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	header := []string{
		"iteration", "neighborhood", "cost", "working_time", "feasible",
		"energy_violation", "capacity_violation", "waiting_time_violation", "fixed_time_violation",
		"penalty_energy", "penalty_capacity", "penalty_waiting", "penalty_fixed",
		"tabu_list",
	}
	if err = w.Write(header); err != nil {
		f.Close()

		return nil, err
	}

	logger.Info("report writer started", zap.String("runID", id.String()), zap.String("dir", outDir))

	return &Writer{
		runID:   id,
		dir:     outDir,
		cfg:     cfg,
		logger:  logger,
		csvFile: f,
		csv:     w,
	}, nil
}

// Log writes one CSV row and records the (iteration, cost) pair for the
// convergence chart rendered at Finalize.
func (wr *Writer) Log(row search.LogRow) error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.finalized {
		return ErrAlreadyFinalized
	}

	tabuKeys := make([]string, len(row.TabuList))
	for i, t := range row.TabuList {
		tabuKeys[i] = t.Key()
	}

	record := []string{
		strconv.Itoa(row.Iteration),
		row.Neighborhood.String(),
		formatFloat(row.Cost),
		formatFloat(row.Solution.WorkingTime),
		strconv.FormatBool(row.Solution.Feasible),
		formatFloat(row.Solution.EnergyViolation),
		formatFloat(row.Solution.CapacityViolation),
		formatFloat(row.Solution.WaitingTimeViolation),
		formatFloat(row.Solution.FixedTimeViolation),
		formatFloat(row.PenaltyE),
		formatFloat(row.PenaltyC),
		formatFloat(row.PenaltyW),
		formatFloat(row.PenaltyF),
		strings.Join(tabuKeys, ";"),
	}
	if err := wr.csv.Write(record); err != nil {
		return err
	}

	wr.points = append(wr.points, convergencePoint{iteration: row.Iteration, cost: row.Cost})

	return nil
}

// Finalize flushes the CSV file and concurrently writes the run summary,
// final solution, frozen config and convergence chart. The first error from
// any of the four is returned; the others still run to completion.
func (wr *Writer) Finalize(summary search.FinalizeSummary) error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.finalized {
		return ErrAlreadyFinalized
	}
	wr.finalized = true

	wr.csv.Flush()
	csvErr := wr.csv.Error()
	closeErr := wr.csvFile.Close()
	if csvErr != nil {
		return csvErr
	}
	if closeErr != nil {
		return closeErr
	}

	var g errgroup.Group
	g.Go(func() error { return wr.writeSummary(summary) })
	g.Go(func() error { return wr.writeSolution(summary.Final) })
	g.Go(func() error { return wr.writeConfig() })
	g.Go(func() error { return wr.writeChart() })

	if err := g.Wait(); err != nil {
		wr.logger.Error("finalize failed", zap.Error(err))

		return err
	}

	wr.logger.Info("report writer finalized",
		zap.String("runID", wr.runID.String()),
		zap.Duration("elapsed", summary.Elapsed),
		zap.Int("lastImprovedIteration", summary.LastImprovedIteration),
		zap.Int("tabuCapacity", summary.TabuCapacity),
		zap.Int("resetAfter", summary.ResetAfter),
	)

	return nil
}

type runSummary struct {
	RunID                 string  `json:"runId"`
	TabuCapacity          int     `json:"tabuCapacity"`
	ResetAfter            int     `json:"resetAfter"`
	LastImprovedIteration int     `json:"lastImprovedIteration"`
	ElapsedSeconds        float64 `json:"elapsedSeconds"`
	FinalWorkingTime      float64 `json:"finalWorkingTime"`
	FinalFeasible         bool    `json:"finalFeasible"`
}

func (wr *Writer) writeSummary(summary search.FinalizeSummary) error {
	s := runSummary{
		RunID:                 wr.runID.String(),
		TabuCapacity:          summary.TabuCapacity,
		ResetAfter:            summary.ResetAfter,
		LastImprovedIteration: summary.LastImprovedIteration,
		ElapsedSeconds:        summary.Elapsed.Seconds(),
		FinalWorkingTime:      summary.Final.WorkingTime,
		FinalFeasible:         summary.Final.Feasible,
	}

	return writeJSON(filepath.Join(wr.dir, fmt.Sprintf("%s-summary.json", wr.runID)), s)
}

type routeJSON struct {
	Kind     string `json:"kind"`
	Sequence []int  `json:"sequence"`
}

type solutionJSON struct {
	TruckRoutes [][]routeJSON `json:"truckRoutes"`
	DroneRoutes [][]routeJSON `json:"droneRoutes"`
	WorkingTime float64       `json:"workingTime"`
	Feasible    bool          `json:"feasible"`
}

func (wr *Writer) writeSolution(final *solution.Solution) error {
	s := solutionJSON{
		TruckRoutes: routesToJSON(final.TruckRoutes),
		DroneRoutes: routesToJSON(final.DroneRoutes),
		WorkingTime: final.WorkingTime,
		Feasible:    final.Feasible,
	}

	return writeJSON(filepath.Join(wr.dir, fmt.Sprintf("%s-solution.json", wr.runID)), s)
}

func (wr *Writer) writeConfig() error {
	return writeJSON(filepath.Join(wr.dir, fmt.Sprintf("%s-config.json", wr.runID)), wr.cfg)
}

func (wr *Writer) writeChart() error {
	if len(wr.points) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cost convergence"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cost"}),
	)

	x := make([]string, len(wr.points))
	y := make([]opts.LineData, len(wr.points))
	for i, p := range wr.points {
		x[i] = strconv.Itoa(p.iteration)
		y[i] = opts.LineData{Value: p.cost}
	}
	line.SetXAxis(x).AddSeries("cost", y)

	f, err := os.Create(filepath.Join(wr.dir, fmt.Sprintf("%s-convergence.html", wr.runID)))
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

func routesToJSON(lists [][]*route.Route) [][]routeJSON {
	out := make([][]routeJSON, len(lists))
	for i, routes := range lists {
		rs := make([]routeJSON, len(routes))
		for j, r := range routes {
			rs[j] = routeJSON{Kind: r.Kind.String(), Sequence: r.Sequence}
		}
		out[i] = rs
	}

	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
