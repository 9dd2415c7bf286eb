package analysis

import (
	"math"
	"strconv"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// minStdDev is the threshold below which a column is treated as constant.
// Dividing by a (near-)zero standard deviation must surface as a computation
// failure, never as Inf/NaN flowing into the clustering step.
const minStdDev = 1e-12

// StandardizeFeatures standardizes every column of the table except the
// quality target to zero mean and unit variance, using moments computed over
// the full dataset. It returns the standardized matrix and the feature names
// in column order.
func StandardizeFeatures(t *dataset.Table) (*mat.Dense, []string, error) {
	features := t.FeatureNames()
	m, err := tableMatrix(t, features)
	if err != nil {
		return nil, nil, err
	}
	if err := StandardizeDense(m, features); err != nil {
		return nil, nil, err
	}
	return m, features, nil
}

// StandardizeDense standardizes each column of m in place. names is used for
// error reporting only and may be nil.
func StandardizeDense(m *mat.Dense, names []string) error {
	rows, cols := m.Dims()
	if rows == 0 {
		return errors.ComputationFailed("cannot standardize an empty matrix")
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		for _, v := range col {
			if math.IsNaN(v) {
				return errors.ComputationFailedf("column %s contains missing values", colName(names, j))
			}
		}

		mean := stat.Mean(col, nil)
		stdDev := stat.PopStdDev(col, nil)
		if stdDev < minStdDev {
			return errors.ComputationFailedf("column %s has (near-)zero standard deviation", colName(names, j))
		}

		for i := 0; i < rows; i++ {
			m.Set(i, j, (col[i]-mean)/stdDev)
		}
	}
	return nil
}

func colName(names []string, j int) string {
	if j < len(names) {
		return "\"" + names[j] + "\""
	}
	return "#" + strconv.Itoa(j)
}
