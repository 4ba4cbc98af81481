// Package metrics adapts search.LogRow/FinalizeSummary into Prometheus
// gauges (spec §6's Logger collaborator has an ambient Prometheus-facing
// sibling, not named by the core spec but expected of a service that
// wants to be scraped while a long search run is in flight).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/taburoute/search"
)

// Namespace groups every taburoute metric under one Prometheus prefix.
const Namespace = "taburoute"

// Collector is a search.Logger that only ever reflects the latest values
// into gauges; it never writes to disk. Pair it with a report.Writer
// (e.g. a tiny multi-logger) when both live persistence and a scrape
// endpoint are wanted.
type Collector struct {
	iterations prometheus.Counter
	cost       prometheus.Gauge
	workingTime prometheus.Gauge
	feasible   prometheus.Gauge

	energyViolation   prometheus.Gauge
	capacityViolation prometheus.Gauge
	waitingViolation  prometheus.Gauge
	fixedViolation    prometheus.Gauge

	penaltyEnergy   prometheus.Gauge
	penaltyCapacity prometheus.Gauge
	penaltyWaiting  prometheus.Gauge
	penaltyFixed    prometheus.Gauge

	lastImprovedIteration prometheus.Gauge
	elapsedSeconds        prometheus.Gauge
}

// NewCollector registers every gauge/counter against reg and returns the
// ready-to-use Collector. Pass prometheus.NewRegistry() for an isolated
// registry, or prometheus.DefaultRegisterer to expose it on the process's
// default /metrics endpoint.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		iterations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "iterations_total",
			Help:      "Number of tabu search iterations executed so far.",
		}),
		cost: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "current_cost",
			Help:      "Penalty-weighted cost of the current solution.",
		}),
		workingTime: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "current_working_time",
			Help:      "Makespan of the current solution.",
		}),
		feasible: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "current_feasible",
			Help:      "1 if the current solution violates no constraint, 0 otherwise.",
		}),
		energyViolation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "violation",
			Name:      "energy",
			Help:      "Normalized drone energy violation of the current solution.",
		}),
		capacityViolation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "violation",
			Name:      "capacity",
			Help:      "Normalized truck and drone capacity violation of the current solution.",
		}),
		waitingViolation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "violation",
			Name:      "waiting_time",
			Help:      "Normalized customer waiting-time violation of the current solution.",
		}),
		fixedViolation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "violation",
			Name:      "fixed_time",
			Help:      "Normalized fixed-time-window violation of the current solution.",
		}),
		penaltyEnergy: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "penalty",
			Name:      "energy",
			Help:      "Adaptive penalty coefficient for the energy violation channel.",
		}),
		penaltyCapacity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "penalty",
			Name:      "capacity",
			Help:      "Adaptive penalty coefficient for the capacity violation channel.",
		}),
		penaltyWaiting: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "penalty",
			Name:      "waiting_time",
			Help:      "Adaptive penalty coefficient for the waiting-time violation channel.",
		}),
		penaltyFixed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "penalty",
			Name:      "fixed_time",
			Help:      "Adaptive penalty coefficient for the fixed-time violation channel.",
		}),
		lastImprovedIteration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_improved_iteration",
			Help:      "Iteration index at which the best-known solution was last improved.",
		}),
		elapsedSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_elapsed_seconds",
			Help:      "Wall-clock seconds spent in the run that last called Finalize.",
		}),
	}
}

// Log implements search.Logger: it reflects row into the current-state
// gauges and increments the iteration counter. It never returns an error.
func (c *Collector) Log(row search.LogRow) error {
	c.iterations.Inc()
	c.cost.Set(row.Cost)
	c.workingTime.Set(row.Solution.WorkingTime)
	c.feasible.Set(boolToFloat(row.Solution.Feasible))

	c.energyViolation.Set(row.Solution.EnergyViolation)
	c.capacityViolation.Set(row.Solution.CapacityViolation)
	c.waitingViolation.Set(row.Solution.WaitingTimeViolation)
	c.fixedViolation.Set(row.Solution.FixedTimeViolation)

	c.penaltyEnergy.Set(row.PenaltyE)
	c.penaltyCapacity.Set(row.PenaltyC)
	c.penaltyWaiting.Set(row.PenaltyW)
	c.penaltyFixed.Set(row.PenaltyF)

	return nil
}

// Finalize implements search.Logger: it records the run's terminal
// bookkeeping. It never returns an error.
func (c *Collector) Finalize(summary search.FinalizeSummary) error {
	c.lastImprovedIteration.Set(float64(summary.LastImprovedIteration))
	c.elapsedSeconds.Set(summary.Elapsed.Seconds())
	c.cost.Set(summary.Final.WorkingTime)
	c.feasible.Set(boolToFloat(summary.Final.Feasible))

	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
