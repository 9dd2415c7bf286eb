package analysis

import (
	"math"
	"testing"

	"winelab/domain/dataset"
)

// TestDescribe_CoversEveryColumn verifies one describe row per column with
// consistent ordering statistics.
func TestDescribe_CoversEveryColumn(t *testing.T) {
	table := testTable(t, 100)

	rows, err := Describe(table)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 describe rows, got %d", len(rows))
	}

	for _, row := range rows {
		if row.Count != 100 {
			t.Errorf("Column %s count = %d, want 100", row.Column, row.Count)
		}
		if row.Min > row.Q25 || row.Q25 > row.Median || row.Median > row.Q75 || row.Q75 > row.Max {
			t.Errorf("Column %s quartiles are not ordered: %+v", row.Column, row)
		}
		if row.StdDev < 0 {
			t.Errorf("Column %s has negative std dev", row.Column)
		}
	}
}

// TestSummarize_TypesAndNonNull verifies the schema summary marks quality as
// the integer column and counts non-null values.
func TestSummarize_TypesAndNonNull(t *testing.T) {
	table := testTable(t, 60)

	summaries, err := Summarize(table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	for _, s := range summaries {
		wantType := "float64"
		if s.Name == dataset.QualityColumn {
			wantType = "int64"
		}
		if s.DataType != wantType {
			t.Errorf("Column %s type = %s, want %s", s.Name, s.DataType, wantType)
		}
		if s.NonNull != 60 {
			t.Errorf("Column %s non-null = %d, want 60", s.Name, s.NonNull)
		}
	}
}

// TestMissingCounts_CleanDataset verifies a dataset without nulls reports a
// zero count for every column.
func TestMissingCounts_CleanDataset(t *testing.T) {
	table := testTable(t, 80)

	counts, err := MissingCounts(table)
	if err != nil {
		t.Fatalf("MissingCounts failed: %v", err)
	}
	for _, c := range counts {
		if c.Count != 0 {
			t.Errorf("Column %s missing count = %d, want 0", c.Column, c.Count)
		}
	}
}

// TestMissingCounts_DetectsNaN verifies NaN cells are counted per column.
func TestMissingCounts_DetectsNaN(t *testing.T) {
	names := []string{"a", dataset.QualityColumn}
	cols := [][]float64{
		{1, math.NaN(), 3, math.NaN()},
		{5, 6, 7, 8},
	}
	table, err := dataset.NewTable(names, cols)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	counts, err := MissingCounts(table)
	if err != nil {
		t.Fatalf("MissingCounts failed: %v", err)
	}
	if counts[0].Count != 2 {
		t.Errorf("Column a missing count = %d, want 2", counts[0].Count)
	}
	if counts[1].Count != 0 {
		t.Errorf("Quality missing count = %d, want 0", counts[1].Count)
	}
}
