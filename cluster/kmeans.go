// Package cluster provides the greedy constructor's external clusterer
// (spec.md §6 clusterize(indices, cluster_count)): the Clusterer interface
// plus a deterministic, seeded k-means-style default implementation over
// depot-relative (x, y) coordinates.
package cluster

import "math/rand"

// Clusterer partitions a set of customer indices into clusterCount groups.
// Implementations must be deterministic for a fixed seed: the greedy
// constructor relies on reproducible clustering for reproducible solutions
// (spec §8 property — same Config and Seed, same result).
type Clusterer interface {
	Clusterize(indices []int, clusterCount int) ([][]int, error)
}

// KMeans clusters indices by nearest-centroid iteration over the (X, Y)
// coordinate arrays it was built with. Centroid seeding is driven by a
// *rand.Rand seeded at construction, and an index equidistant from several
// centroids goes to the lowest-numbered one, so the same (X, Y, Seed) always
// yields the same partition.
type KMeans struct {
	x, y          []float64
	rng           *rand.Rand
	maxIterations int
}

// NewKMeans returns a KMeans clusterer over coordinates x/y (index 0 is the
// depot; only indices passed to Clusterize are ever read), seeded by seed.
func NewKMeans(x, y []float64, seed int64) *KMeans {
	return &KMeans{
		x:             x,
		y:             y,
		rng:           rand.New(rand.NewSource(seed)),
		maxIterations: 50,
	}
}

// Clusterize partitions indices into clusterCount groups by Lloyd's
// algorithm: seed centroids at clusterCount distinct member coordinates,
// assign every index to its nearest centroid, recompute centroids as the
// mean of their members, and repeat until no assignment changes or
// maxIterations is reached. clusterCount is clamped to len(indices) when
// larger, so one seed member exists per cluster; a returned group can still
// be empty (for example when several indices share the same coordinates, all
// of them go to the lowest-numbered of the coinciding centroids).
func (k *KMeans) Clusterize(indices []int, clusterCount int) ([][]int, error) {
	if len(indices) == 0 {
		return nil, ErrNoIndices
	}
	if clusterCount <= 0 {
		return nil, ErrNonPositiveClusterCount
	}
	if clusterCount > len(indices) {
		clusterCount = len(indices)
	}

	order := k.rng.Perm(len(indices))
	centroids := make([][2]float64, clusterCount)
	for i := 0; i < clusterCount; i++ {
		idx := indices[order[i]]
		centroids[i] = [2]float64{k.x[idx], k.y[idx]}
	}

	assignment := make([]int, len(indices))
	for iter := 0; iter < k.maxIterations; iter++ {
		changed := false
		for i, idx := range indices {
			nearest := nearestCentroid(centroids, k.x[idx], k.y[idx])
			if nearest != assignment[i] {
				assignment[i] = nearest
				changed = true
			}
		}

		sums := make([][2]float64, clusterCount)
		counts := make([]int, clusterCount)
		for i, idx := range indices {
			c := assignment[i]
			sums[c][0] += k.x[idx]
			sums[c][1] += k.y[idx]
			counts[c]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			centroids[c] = [2]float64{sums[c][0] / float64(counts[c]), sums[c][1] / float64(counts[c])}
		}

		if !changed && iter > 0 {
			break
		}
	}

	groups := make([][]int, clusterCount)
	for i, idx := range indices {
		c := assignment[i]
		groups[c] = append(groups[c], idx)
	}

	return groups, nil
}

func nearestCentroid(centroids [][2]float64, x, y float64) int {
	best := 0
	bestDist := -1.0
	for c, centroid := range centroids {
		dx := x - centroid[0]
		dy := y - centroid[1]
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best
}
