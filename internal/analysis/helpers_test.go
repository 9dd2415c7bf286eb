package analysis

import (
	"math/rand"
	"testing"

	"winelab/domain/dataset"

	"gonum.org/v1/gonum/mat"
)

// testTable builds a small table shaped like the wine data: a handful of
// continuous feature columns plus an integer quality column.
func testTable(t *testing.T, rows int) *dataset.Table {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	names := []string{"alcohol", "density", "sulphates", dataset.QualityColumn}
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, rows)
	}
	for i := 0; i < rows; i++ {
		cols[0][i] = 9 + rng.Float64()*5       // alcohol
		cols[1][i] = 0.99 + rng.Float64()*0.01 // density
		cols[2][i] = 0.4 + rng.Float64()*0.8   // sulphates
		cols[3][i] = float64(3 + rng.Intn(6))  // quality 3..8
	}

	table, err := dataset.NewTable(names, cols)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

// testMatrix returns a rows×cols matrix of reproducible noise.
func testMatrix(rows, cols int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}
