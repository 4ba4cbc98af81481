package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/cluster"
)

func TestClusterize_RejectsEmptyIndices(t *testing.T) {
	k := cluster.NewKMeans([]float64{0}, []float64{0}, 1)
	_, err := k.Clusterize(nil, 2)
	require.ErrorIs(t, err, cluster.ErrNoIndices)
}

func TestClusterize_RejectsNonPositiveClusterCount(t *testing.T) {
	k := cluster.NewKMeans([]float64{0, 1}, []float64{0, 0}, 1)
	_, err := k.Clusterize([]int{1}, 0)
	require.ErrorIs(t, err, cluster.ErrNonPositiveClusterCount)
}

func TestClusterize_ClampsClusterCountAndCoversEveryIndex(t *testing.T) {
	x := []float64{0, 0, 10, 20}
	y := []float64{0, 0, 0, 0}
	k := cluster.NewKMeans(x, y, 42)

	groups, err := k.Clusterize([]int{1, 2, 3}, 10)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	seen := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g {
			seen[idx] = true
		}
	}
	require.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
}

func TestClusterize_IsDeterministicForFixedSeed(t *testing.T) {
	x := []float64{0, 0, 1, 10, 11}
	y := []float64{0, 0, 0, 0, 0}

	a, err := cluster.NewKMeans(x, y, 7).Clusterize([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	b, err := cluster.NewKMeans(x, y, 7).Clusterize([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestClusterize_GroupsNearbyPointsTogether(t *testing.T) {
	x := []float64{0, 0, 1, 100, 101}
	y := []float64{0, 0, 0, 0, 0}

	groups, err := cluster.NewKMeans(x, y, 1).Clusterize([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var near, far []int
	for _, g := range groups {
		for _, idx := range g {
			if idx <= 2 {
				near = append(near, idx)
			} else {
				far = append(far, idx)
			}
		}
	}
	require.ElementsMatch(t, []int{1, 2}, near)
	require.ElementsMatch(t, []int{3, 4}, far)
}
