package analysis

import (
	"math"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Correlation computes the full pairwise Pearson correlation matrix over all
// numeric columns, quality included. The result is symmetric with a unit
// diagonal.
func Correlation(t *dataset.Table) (*dataset.CorrelationMatrix, error) {
	names := t.Names()
	m, err := tableMatrix(t, names)
	if err != nil {
		return nil, err
	}

	dst := mat.NewSymDense(len(names), nil)
	stat.CorrelationMatrix(dst, m, nil)

	values := make([][]float64, len(names))
	for i := range names {
		row := make([]float64, len(names))
		for j := range names {
			v := dst.At(i, j)
			if math.IsNaN(v) {
				return nil, errors.ComputationFailedf("correlation of %q and %q is undefined", names[i], names[j])
			}
			row[j] = v
		}
		values[i] = row
	}

	return &dataset.CorrelationMatrix{Names: names, Values: values}, nil
}

// tableMatrix copies the named columns into a rows×cols dense matrix.
func tableMatrix(t *dataset.Table, names []string) (*mat.Dense, error) {
	m := mat.NewDense(t.Rows(), len(names), nil)
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m, nil
}
