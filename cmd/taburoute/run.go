package main

import (
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/taburoute/cluster"
	"github.com/katalvlaran/taburoute/construct"
	"github.com/katalvlaran/taburoute/metrics"
	"github.com/katalvlaran/taburoute/problem"
	"github.com/katalvlaran/taburoute/report"
	"github.com/katalvlaran/taburoute/search"
)

var (
	runConfigPath  string
	runOutDir      string
	runVerboseLogs bool
	runMetricsAddr string
	runStrategy    = newStrategyFlag()
)

// strategyFlag implements pflag.Value so --strategy rejects unrecognised
// names at parse time instead of surfacing an error deep inside Validate.
type strategyFlag struct {
	set   bool
	value string
}

func newStrategyFlag() *strategyFlag { return &strategyFlag{} }

func (f *strategyFlag) String() string { return f.value }
func (f *strategyFlag) Type() string   { return "string" }
func (f *strategyFlag) Set(s string) error {
	if _, err := strategyFromFlag(s); err != nil {
		return err
	}
	f.value = s
	f.set = true

	return nil
}

var _ pflag.Value = (*strategyFlag)(nil)

var runCmd = &cobra.Command{
	Use:   "run <problem-file>",
	Short: "Build an initial solution and refine it with tabu search",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	flags := runCmd.Flags()
	flags.StringVar(&runConfigPath, "config", "", "optional hyperparameter file (YAML or JSON)")
	flags.StringVar(&runOutDir, "out", "./taburoute-report", "directory to write the report into")
	flags.BoolVar(&runVerboseLogs, "verbose", false, "use a development (human-readable) zap logger")
	flags.StringVar(&runMetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while the run is in flight")
	flags.Var(runStrategy, "strategy", "neighborhood selection strategy: random, cyclic, or variable (overrides --config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := problem.ReadFile(args[0])
	if err != nil {
		return err
	}

	if runConfigPath != "" {
		if err = applyHyperparams(&cfg, runConfigPath); err != nil {
			return err
		}
	}
	if runStrategy.set {
		strategy, strategyErr := strategyFromFlag(runStrategy.value)
		if strategyErr != nil {
			return strategyErr
		}
		cfg.Strategy = strategy
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(runVerboseLogs)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	writer, err := report.NewWriter(logger, &cfg, runOutDir)
	if err != nil {
		return err
	}

	var searchLogger search.Logger = writer
	if runMetricsAddr != "" {
		reg := registerer()
		collector := metrics.NewCollector(reg)
		srv := metrics.Serve(runMetricsAddr, reg)
		defer metrics.Shutdown(srv) //nolint:errcheck
		searchLogger = multiLogger{writer, collector}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	clusterer := cluster.NewKMeans(cfg.X, cfg.Y, seed)

	initial, err := construct.Greedy(&cfg, clusterer, seed)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		return writer.Finalize(search.FinalizeSummary{Final: initial})
	}

	_, err = search.Run(&cfg, initial, searchLogger, logger)

	return err
}

// multiLogger fans one LogRow/FinalizeSummary out to every wrapped Logger,
// stopping at (and returning) the first error.
type multiLogger []search.Logger

func (m multiLogger) Log(row search.LogRow) error {
	for _, l := range m {
		if err := l.Log(row); err != nil {
			return err
		}
	}

	return nil
}

func (m multiLogger) Finalize(summary search.FinalizeSummary) error {
	for _, l := range m {
		if err := l.Finalize(summary); err != nil {
			return err
		}
	}

	return nil
}
