package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Table is a column-oriented view of the wine sample data. Columns are loaded
// once and treated as read-only; the only mutation a Table supports is
// attaching the derived cluster column after a clustering run.
type Table struct {
	names    []string
	cols     map[string][]float64
	rows     int
	clusters []int
}

// NewTable builds a Table from column names and matching value slices.
func NewTable(names []string, cols [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("got %d column names for %d columns", len(names), len(cols))
	}
	rows := len(cols[0])
	byName := make(map[string][]float64, len(names))
	for i, name := range names {
		if len(cols[i]) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(cols[i]), rows)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		byName[name] = cols[i]
	}
	return &Table{
		names: append([]string(nil), names...),
		cols:  byName,
		rows:  rows,
	}, nil
}

// Rows returns the number of samples.
func (t *Table) Rows() int { return t.rows }

// Names returns the column names in file order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// FeatureNames returns the column names excluding the quality target, in file
// order. These are the columns eligible for standardization and the scatter
// axis pickers.
func (t *Table) FeatureNames() []string {
	names := make([]string, 0, len(t.names))
	for _, n := range t.names {
		if n != QualityColumn {
			names = append(names, n)
		}
	}
	return names
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return col, nil
}

// Head returns the first n rows as formatted cells, for display.
func (t *Table) Head(n int) [][]float64 {
	if n > t.rows {
		n = t.rows
	}
	head := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(t.names))
		for j, name := range t.names {
			row[j] = t.cols[name][i]
		}
		head[i] = row
	}
	return head
}

// QualityLevels returns the distinct quality scores present, ascending.
func (t *Table) QualityLevels() []int {
	col, ok := t.cols[QualityColumn]
	if !ok {
		return nil
	}
	seen := make(map[int]bool)
	for _, v := range col {
		if !math.IsNaN(v) {
			seen[int(v)] = true
		}
	}
	levels := make([]int, 0, len(seen))
	for q := range seen {
		levels = append(levels, q)
	}
	sort.Ints(levels)
	return levels
}

// AttachClusters records the per-row cluster assignment for the rest of the
// session. The assignment must cover every row.
func (t *Table) AttachClusters(assignments []int) error {
	if len(assignments) != t.rows {
		return fmt.Errorf("got %d cluster assignments for %d rows", len(assignments), t.rows)
	}
	t.clusters = append([]int(nil), assignments...)
	return nil
}

// Clusters returns the attached cluster assignment, or nil if clustering has
// not run in this session.
func (t *Table) Clusters() []int { return t.clusters }

// Clone returns a session-scoped copy sharing the read-only column data but
// with its own (empty) cluster assignment.
func (t *Table) Clone() *Table {
	return &Table{
		names: append([]string(nil), t.names...),
		cols:  t.cols,
		rows:  t.rows,
	}
}
