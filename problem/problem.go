// Package problem is the thin, deliberately minimal problem-file reader
// (spec §1 external collaborator): a JSON schema covering customer
// coordinates, demands and the dronable bitmap, from which it derives dense
// truck/drone distance matrices. It never touches search hyperparameters or
// the drone energy model — cmd/taburoute's run command applies those from
// its optional --config hyperparameter file over ReadFile's result (see
// DESIGN.md).
package problem

import (
	"encoding/json"
	"math"
	"os"

	"github.com/katalvlaran/taburoute/vrpconfig"
)

// fileProblem is the on-disk JSON schema. Index 0 in every per-customer
// array is the depot.
type fileProblem struct {
	CustomersCount int     `json:"customersCount"`
	TrucksCount    int     `json:"trucksCount"`
	DronesCount    int     `json:"dronesCount"`
	TruckSpeed     float64 `json:"truckSpeed"`
	TruckCapacity  float64 `json:"truckCapacity"`

	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Demands  []float64 `json:"demands"`
	Dronable []bool    `json:"dronable"`

	// DistanceMetric is "euclidean" (default) or "manhattan".
	DistanceMetric string `json:"distanceMetric"`
}

// ReadFile parses path and returns a Config with only the instance fields
// populated (CustomersCount, TrucksCount, DronesCount, TruckSpeed,
// TruckCapacity, X, Y, Demands, Dronable, TruckDistances, DroneDistances);
// every search hyperparameter and the drone model are left at their
// DefaultConfig() values for the caller to override or merge in from a
// separate config file.
func ReadFile(path string) (vrpconfig.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return vrpconfig.Config{}, err
	}

	var fp fileProblem
	if err = json.Unmarshal(raw, &fp); err != nil {
		return vrpconfig.Config{}, err
	}

	n := fp.CustomersCount + 1
	if len(fp.X) != n || len(fp.Y) != n || len(fp.Demands) != n || len(fp.Dronable) != n {
		return vrpconfig.Config{}, ErrShapeMismatch
	}

	dist, err := buildMatrix(fp.X, fp.Y, fp.DistanceMetric)
	if err != nil {
		return vrpconfig.Config{}, err
	}

	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = fp.CustomersCount
	cfg.TrucksCount = fp.TrucksCount
	cfg.DronesCount = fp.DronesCount
	cfg.TruckSpeed = fp.TruckSpeed
	cfg.TruckCapacity = fp.TruckCapacity
	cfg.X = fp.X
	cfg.Y = fp.Y
	cfg.Demands = fp.Demands
	cfg.Dronable = fp.Dronable
	cfg.TruckDistances = dist
	cfg.DroneDistances = dist

	return cfg, nil
}

func buildMatrix(x, y []float64, metric string) ([][]float64, error) {
	var edge func(i, j int) float64
	switch metric {
	case "", "euclidean":
		edge = func(i, j int) float64 {
			dx, dy := x[i]-x[j], y[i]-y[j]

			return math.Sqrt(dx*dx + dy*dy)
		}
	case "manhattan":
		edge = func(i, j int) float64 {
			return math.Abs(x[i]-x[j]) + math.Abs(y[i]-y[j])
		}
	default:
		return nil, ErrUnknownDistanceMetric
	}

	n := len(x)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = edge(i, j)
		}
	}

	return m, nil
}
