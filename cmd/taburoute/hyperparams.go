package main

import (
	"os"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/taburoute/vrpconfig"
)

// hyperparamFile is the schema for the optional --config file: search
// hyperparameters and the drone model only, never instance geometry (that
// always comes from the problem file — see problem.ReadFile's doc comment).
// Every field is optional; a zero value leaves the problem-derived default
// untouched.
type hyperparamFile struct {
	TruckSpeed    float64 `json:"truckSpeed"`
	TruckCapacity float64 `json:"truckCapacity"`

	DroneKind string `json:"droneKind"`

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

func droneModelFromKind(kind string) (vrpconfig.DroneModel, error) {
	switch kind {
	case "", "unlimited":
		return vrpconfig.NewUnlimitedModel(), nil
	case "linear":
		return vrpconfig.NewLinearModel(), nil
	case "nonlinear", "non_linear", "non-linear":
		return vrpconfig.NewNonLinearModel(), nil
	case "endurance":
		return vrpconfig.NewEnduranceModel(), nil
	default:
		return nil, vrpconfig.ErrUnknownDroneModel
	}
}

func strategyFromFlag(s string) (vrpconfig.Strategy, error) {
	switch s {
	case "", "random":
		return vrpconfig.Random, nil
	case "cyclic":
		return vrpconfig.Cyclic, nil
	case "variable":
		return vrpconfig.Variable, nil
	default:
		return 0, vrpconfig.ErrUnknownStrategy
	}
}

// applyHyperparams reads path (YAML or JSON) and overrides cfg's
// hyperparameter fields in place, leaving instance geometry untouched.
func applyHyperparams(cfg *vrpconfig.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var hp hyperparamFile
	if err = yaml.Unmarshal(raw, &hp); err != nil {
		return err
	}

	if hp.TruckSpeed != 0 {
		cfg.TruckSpeed = hp.TruckSpeed
	}
	if hp.TruckCapacity != 0 {
		cfg.TruckCapacity = hp.TruckCapacity
	}
	if hp.DroneKind != "" {
		drone, droneErr := droneModelFromKind(hp.DroneKind)
		if droneErr != nil {
			return droneErr
		}
		cfg.Drone = drone
	}
	if hp.WaitingTimeLimit != 0 {
		cfg.WaitingTimeLimit = hp.WaitingTimeLimit
	}
	if hp.TabuSizeFactor != 0 {
		cfg.TabuSizeFactor = hp.TabuSizeFactor
	}
	if hp.ResetAfterFactor != 0 {
		cfg.ResetAfterFactor = hp.ResetAfterFactor
	}
	if hp.MaxEliteSize != 0 {
		cfg.MaxEliteSize = hp.MaxEliteSize
	}
	if hp.PenaltyExponent != 0 {
		cfg.PenaltyExponent = hp.PenaltyExponent
	}
	cfg.SingleTruckRoute = hp.SingleTruckRoute
	cfg.SingleDroneRoute = hp.SingleDroneRoute
	if hp.Strategy != "" {
		strategy, strategyErr := strategyFromFlag(hp.Strategy)
		if strategyErr != nil {
			return strategyErr
		}
		cfg.Strategy = strategy
	}
	cfg.FixIteration = hp.FixIteration
	cfg.Verbose = hp.Verbose
	cfg.DryRun = hp.DryRun
	if hp.Seed != 0 {
		cfg.Seed = hp.Seed
	}

	return nil
}
