package analysis

import (
	"math"
	"math/rand"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"gonum.org/v1/gonum/mat"
)

// KMeansConfig controls one clustering run. The defaults mirror the fixed
// analysis parameters of the dashboard: three clusters, seed 42.
type KMeansConfig struct {
	K       int
	Seed    int64
	MaxIter int
}

// DefaultKMeansConfig returns the fixed configuration used by the analysis
// section.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{K: 3, Seed: 42, MaxIter: 300}
}

// KMeans partitions the rows of m into cfg.K clusters with Lloyd's algorithm:
// assign each row to the nearest centroid by squared Euclidean distance, then
// recompute each centroid as the mean of its rows, until no assignment changes
// or cfg.MaxIter iterations have run. Initial centroids are K distinct rows
// drawn with a rand.Rand seeded from cfg.Seed, so the same matrix and seed
// always produce the same assignment.
func KMeans(m *mat.Dense, features []string, cfg KMeansConfig) (*dataset.ClusterResult, error) {
	rows, cols := m.Dims()
	if cfg.K <= 0 {
		return nil, errors.InvalidInput("cluster count must be positive")
	}
	if rows < cfg.K {
		return nil, errors.ComputationFailedf("cannot form %d clusters from %d rows", cfg.K, rows)
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Seed centroids from K distinct rows.
	centroids := make([][]float64, cfg.K)
	for i, idx := range rng.Perm(rows)[:cfg.K] {
		centroids[i] = mat.Row(nil, idx, m)
	}

	assignments := make([]int, rows)
	for i := range assignments {
		assignments[i] = -1
	}

	row := make([]float64, cols)
	iterations := 0
	converged := false

	for iterations < cfg.MaxIter {
		iterations++

		changes := 0
		for i := 0; i < rows; i++ {
			mat.Row(row, i, m)
			best := nearestCentroid(row, centroids)
			if best != assignments[i] {
				assignments[i] = best
				changes++
			}
		}
		if changes == 0 {
			converged = true
			break
		}

		recomputeCentroids(m, assignments, centroids)
		repairEmptyClusters(m, assignments, centroids)
	}

	return &dataset.ClusterResult{
		K:           cfg.K,
		Assignments: assignments,
		Centroids:   centroids,
		Features:    append([]string(nil), features...),
		Iterations:  iterations,
		Converged:   converged,
	}, nil
}

func nearestCentroid(row []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		d := squaredDistance(row, centroid)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func recomputeCentroids(m *mat.Dense, assignments []int, centroids [][]float64) {
	rows, cols := m.Dims()
	counts := make([]int, len(centroids))
	for c := range centroids {
		for j := 0; j < cols; j++ {
			centroids[c][j] = 0
		}
	}
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		c := assignments[i]
		counts[c]++
		mat.Row(row, i, m)
		for j := 0; j < cols; j++ {
			centroids[c][j] += row[j]
		}
	}
	for c := range centroids {
		if counts[c] == 0 {
			continue // handled by repairEmptyClusters
		}
		for j := 0; j < cols; j++ {
			centroids[c][j] /= float64(counts[c])
		}
	}
}

// repairEmptyClusters reseeds any centroid that lost all its rows to the row
// farthest from its current centroid, keeping the run deterministic.
func repairEmptyClusters(m *mat.Dense, assignments []int, centroids [][]float64) {
	rows, cols := m.Dims()
	counts := make([]int, len(centroids))
	for _, a := range assignments {
		counts[a]++
	}

	row := make([]float64, cols)
	for c := range centroids {
		if counts[c] > 0 {
			continue
		}

		farthest := -1
		farthestDist := -1.0
		for i := 0; i < rows; i++ {
			if counts[assignments[i]] <= 1 {
				continue
			}
			mat.Row(row, i, m)
			d := squaredDistance(row, centroids[assignments[i]])
			if d > farthestDist {
				farthestDist = d
				farthest = i
			}
		}
		if farthest < 0 {
			continue
		}

		counts[assignments[farthest]]--
		assignments[farthest] = c
		counts[c] = 1
		centroids[c] = mat.Row(nil, farthest, m)
	}
}
