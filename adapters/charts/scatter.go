package charts

import (
	"fmt"

	"winelab/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scatter renders a 2D scatter plot of two feature columns, one series per
// cluster with the fixed categorical palette.
func Scatter(xName, yName string, x, y []float64, clusters []int, k int) ([]byte, error) {
	if len(x) != len(y) || len(x) != len(clusters) {
		return nil, errors.InvalidInput("scatter inputs have mismatched lengths")
	}
	if k <= 0 {
		return nil, errors.InvalidInput("cluster count must be positive")
	}

	p := plot.New()
	p.Title.Text = "Cluster Visualization"
	p.X.Label.Text = xName
	p.Y.Label.Text = yName
	p.Legend.Top = true

	for c := 0; c < k; c++ {
		xys := make(plotter.XYs, 0, len(x)/k+1)
		for i := range x {
			if clusters[i] == c {
				xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
			}
		}
		if len(xys) == 0 {
			continue
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build scatter series for cluster %d", c)
		}
		s.GlyphStyle.Color = ClusterColor(c)
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), s)
	}

	return renderPNG(p, 7*vg.Inch, 5*vg.Inch)
}
