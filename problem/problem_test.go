package problem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/problem"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadFile_BuildsEuclideanMatrix(t *testing.T) {
	path := writeTemp(t, `{
		"customersCount": 1,
		"trucksCount": 1,
		"dronesCount": 0,
		"truckSpeed": 1,
		"truckCapacity": 10,
		"x": [0, 3],
		"y": [0, 4],
		"demands": [0, 1],
		"dronable": [true, true]
	}`)

	cfg, err := problem.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.CustomersCount)
	require.InDelta(t, 5.0, cfg.TruckDistances[0][1], 1e-9)
	require.InDelta(t, 5.0, cfg.DroneDistances[1][0], 1e-9)
}

func TestReadFile_ManhattanMetric(t *testing.T) {
	path := writeTemp(t, `{
		"customersCount": 1,
		"x": [0, 3],
		"y": [0, 4],
		"demands": [0, 1],
		"dronable": [true, true],
		"distanceMetric": "manhattan"
	}`)

	cfg, err := problem.ReadFile(path)
	require.NoError(t, err)
	require.InDelta(t, 7.0, cfg.TruckDistances[0][1], 1e-9)
}

func TestReadFile_RejectsShapeMismatch(t *testing.T) {
	path := writeTemp(t, `{"customersCount": 2, "x": [0, 1], "y": [0, 0], "demands": [0, 1, 1], "dronable": [true, true, true]}`)

	_, err := problem.ReadFile(path)
	require.ErrorIs(t, err, problem.ErrShapeMismatch)
}

func TestReadFile_RejectsUnknownMetric(t *testing.T) {
	path := writeTemp(t, `{
		"customersCount": 1,
		"x": [0, 1],
		"y": [0, 0],
		"demands": [0, 1],
		"dronable": [true, true],
		"distanceMetric": "haversine"
	}`)

	_, err := problem.ReadFile(path)
	require.ErrorIs(t, err, problem.ErrUnknownDistanceMetric)
}
