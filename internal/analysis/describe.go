package analysis

import (
	"math"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"github.com/montanaflynn/stats"
)

// Summarize builds the schema overview: one FieldSummary per column with the
// inferred type and non-null count. Quality is the only integer column.
func Summarize(t *dataset.Table) ([]dataset.FieldSummary, error) {
	summaries := make([]dataset.FieldSummary, 0, len(t.Names()))
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		nonNull := 0
		for _, v := range col {
			if !math.IsNaN(v) {
				nonNull++
			}
		}
		dataType := "float64"
		if name == dataset.QualityColumn {
			dataType = "int64"
		}
		summaries = append(summaries, dataset.FieldSummary{
			Name:     name,
			DataType: dataType,
			NonNull:  nonNull,
		})
	}
	return summaries, nil
}

// Describe computes count/mean/std/min/quartiles/max for every column.
func Describe(t *dataset.Table) ([]dataset.DescribeRow, error) {
	rows := make([]dataset.DescribeRow, 0, len(t.Names()))
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		values := dropNaN(col)
		if len(values) == 0 {
			return nil, errors.ComputationFailedf("column %q has no usable values", name)
		}

		mean, _ := stats.Mean(values)
		stdDev, _ := stats.StandardDeviation(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		median, _ := stats.Median(values)
		q25, _ := stats.Percentile(values, 25)
		q75, _ := stats.Percentile(values, 75)

		rows = append(rows, dataset.DescribeRow{
			Column: name,
			Count:  len(values),
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Q25:    q25,
			Median: median,
			Q75:    q75,
			Max:    max,
		})
	}
	return rows, nil
}

// MissingCounts reports the number of missing (NaN) values per column,
// computed on demand when the exploration view requests it.
func MissingCounts(t *dataset.Table) ([]dataset.MissingCount, error) {
	counts := make([]dataset.MissingCount, 0, len(t.Names()))
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		missing := 0
		for _, v := range col {
			if math.IsNaN(v) {
				missing++
			}
		}
		counts = append(counts, dataset.MissingCount{Column: name, Count: missing})
	}
	return counts, nil
}

func dropNaN(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	return clean
}
