package charts

import (
	"sort"
	"strconv"

	"winelab/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxPlot renders one box per discrete quality level for the chosen feature,
// levels ascending left to right.
func BoxPlot(title, yLabel string, groups map[int][]float64) ([]byte, error) {
	if len(groups) == 0 {
		return nil, errors.InvalidInput("no quality groups to plot")
	}

	levels := make([]int, 0, len(groups))
	for q := range groups {
		levels = append(levels, q)
	}
	sort.Ints(levels)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Wine Quality"
	p.Y.Label.Text = yLabel

	labels := make([]string, 0, len(levels))
	for i, q := range levels {
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(groups[q]))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build box for quality %d", q)
		}
		box.FillColor = ClusterColor(i)
		p.Add(box)
		labels = append(labels, strconv.Itoa(q))
	}
	p.NominalX(labels...)

	return renderPNG(p, 7*vg.Inch, 5*vg.Inch)
}
