package vrpconfig

import (
	"os"

	"sigs.k8s.io/yaml"
)

// fileConfig mirrors Config but with a JSON/YAML-friendly DroneModel
// encoding (sigs.k8s.io/yaml round-trips through encoding/json, which
// cannot marshal the DroneModel interface directly).
type fileConfig struct {
	CustomersCount int         `json:"customersCount"`
	TrucksCount    int         `json:"trucksCount"`
	DronesCount    int         `json:"dronesCount"`
	X              []float64   `json:"x"`
	Y              []float64   `json:"y"`
	Demands        []float64   `json:"demands"`
	Dronable       []bool      `json:"dronable"`
	TruckDistances [][]float64 `json:"truckDistances"`
	DroneDistances [][]float64 `json:"droneDistances"`

	TruckSpeed    float64 `json:"truckSpeed"`
	TruckCapacity float64 `json:"truckCapacity"`

	Drone fileDroneModel `json:"drone"`

	WaitingTimeLimit float64 `json:"waitingTimeLimit"`
	TabuSizeFactor   float64 `json:"tabuSizeFactor"`
	ResetAfterFactor float64 `json:"resetAfterFactor"`
	MaxEliteSize     int     `json:"maxEliteSize"`
	PenaltyExponent  float64 `json:"penaltyExponent"`

	SingleTruckRoute bool `json:"singleTruckRoute"`
	SingleDroneRoute bool `json:"singleDroneRoute"`

	Strategy     string `json:"strategy"`
	FixIteration *int   `json:"fixIteration,omitempty"`

	Verbose bool  `json:"verbose"`
	DryRun  bool  `json:"dryRun"`
	Seed    int64 `json:"seed"`
}

// fileDroneModel is the tagged-union-by-string-field encoding for DroneModel.
type fileDroneModel struct {
	Kind string `json:"kind"`

	LinearModel
	NonLinearModel
	EnduranceModel
	UnlimitedModel
}

func strategyFromString(s string) (Strategy, error) {
	switch s {
	case "", "random":
		return Random, nil
	case "cyclic":
		return Cyclic, nil
	case "variable":
		return Variable, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

func (f fileDroneModel) build() (DroneModel, error) {
	switch f.Kind {
	case "linear":
		m := f.LinearModel
		return &m, nil
	case "nonlinear", "non_linear", "non-linear":
		m := f.NonLinearModel
		return &m, nil
	case "endurance":
		m := f.EnduranceModel
		return &m, nil
	case "unlimited", "":
		m := f.UnlimitedModel
		return &m, nil
	default:
		return nil, ErrUnknownDroneModel
	}
}

// LoadFile reads a frozen Config from a YAML or JSON problem/config file
// (sigs.k8s.io/yaml accepts both; YAML is a superset of JSON). The
// problem-file *format* beyond this flat schema is a non-goal of the core
// (see spec §1). The problem package does not go through LoadFile: it reads
// its own instance schema and builds a Config directly.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var fc fileConfig
	if err = yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, err
	}

	strategy, err := strategyFromString(fc.Strategy)
	if err != nil {
		return Config{}, err
	}
	drone, err := fc.Drone.build()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CustomersCount:   fc.CustomersCount,
		TrucksCount:      fc.TrucksCount,
		DronesCount:      fc.DronesCount,
		X:                fc.X,
		Y:                fc.Y,
		Demands:          fc.Demands,
		Dronable:         fc.Dronable,
		TruckDistances:   fc.TruckDistances,
		DroneDistances:   fc.DroneDistances,
		TruckSpeed:       fc.TruckSpeed,
		TruckCapacity:    fc.TruckCapacity,
		Drone:            drone,
		WaitingTimeLimit: fc.WaitingTimeLimit,
		TabuSizeFactor:   fc.TabuSizeFactor,
		ResetAfterFactor: fc.ResetAfterFactor,
		MaxEliteSize:     fc.MaxEliteSize,
		PenaltyExponent:  fc.PenaltyExponent,
		SingleTruckRoute: fc.SingleTruckRoute,
		SingleDroneRoute: fc.SingleDroneRoute,
		Strategy:         strategy,
		FixIteration:     fc.FixIteration,
		Verbose:          fc.Verbose,
		DryRun:           fc.DryRun,
		Seed:             fc.Seed,
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
