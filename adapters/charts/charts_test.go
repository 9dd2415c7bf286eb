package charts

import (
	"bytes"
	"math/rand"
	"testing"

	"winelab/domain/dataset"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, img []byte) {
	t.Helper()
	if len(img) == 0 {
		t.Fatal("Rendered chart is empty")
	}
	if !bytes.HasPrefix(img, pngHeader) {
		t.Fatal("Rendered chart is not a PNG")
	}
}

// TestHeatmap_RendersPNG renders a small correlation matrix.
func TestHeatmap_RendersPNG(t *testing.T) {
	corr := &dataset.CorrelationMatrix{
		Names: []string{"a", "b", "c"},
		Values: [][]float64{
			{1, 0.5, -0.3},
			{0.5, 1, 0.1},
			{-0.3, 0.1, 1},
		},
	}
	img, err := Heatmap(corr)
	if err != nil {
		t.Fatalf("Heatmap failed: %v", err)
	}
	assertPNG(t, img)
}

// TestScatter_RendersPNG renders clustered points, including the degenerate
// same-column-on-both-axes case.
func TestScatter_RendersPNG(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 120
	x := make([]float64, n)
	y := make([]float64, n)
	clusters := make([]int, n)
	for i := range x {
		x[i] = rng.Float64() * 10
		y[i] = rng.Float64() * 10
		clusters[i] = i % 3
	}

	img, err := Scatter("alcohol", "density", x, y, clusters, 3)
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	assertPNG(t, img)

	// Same column on both axes degrades to a diagonal band, not an error.
	img, err = Scatter("alcohol", "alcohol", x, x, clusters, 3)
	if err != nil {
		t.Fatalf("Degenerate scatter failed: %v", err)
	}
	assertPNG(t, img)
}

// TestScatter_MismatchedInputs verifies length mismatches are rejected.
func TestScatter_MismatchedInputs(t *testing.T) {
	_, err := Scatter("x", "y", []float64{1, 2}, []float64{1}, []int{0, 1}, 3)
	if err == nil {
		t.Fatal("Expected error for mismatched inputs, got nil")
	}
}

// TestBoxPlot_RendersPNG renders one box per quality level.
func TestBoxPlot_RendersPNG(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	groups := make(map[int][]float64)
	for q := 3; q <= 8; q++ {
		values := make([]float64, 40)
		for i := range values {
			values[i] = float64(q) + rng.NormFloat64()
		}
		groups[q] = values
	}

	img, err := BoxPlot("Alcohol vs Wine Quality", "Alcohol Content", groups)
	if err != nil {
		t.Fatalf("BoxPlot failed: %v", err)
	}
	assertPNG(t, img)
}
