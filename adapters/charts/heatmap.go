package charts

import (
	"fmt"
	"math"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// corrGrid adapts a correlation matrix to the plotter heatmap grid.
type corrGrid struct {
	corr *dataset.CorrelationMatrix
}

func (g corrGrid) Dims() (c, r int)   { return len(g.corr.Names), len(g.corr.Names) }
func (g corrGrid) Z(c, r int) float64 { return g.corr.Values[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// nameTicks labels integer axis positions with column names.
type nameTicks struct {
	names []string
}

func (t nameTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.names))
	for i, name := range t.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: name})
	}
	return ticks
}

// Heatmap renders the correlation matrix as an annotated heatmap on a fixed
// diverging blue-to-red scale over [-1, 1].
func Heatmap(corr *dataset.CorrelationMatrix) ([]byte, error) {
	if corr == nil || len(corr.Names) == 0 {
		return nil, errors.InvalidInput("correlation matrix is empty")
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.X.Tick.Marker = nameTicks{names: corr.Names}
	p.Y.Tick.Marker = nameTicks{names: corr.Names}
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	hm := plotter.NewHeatMap(corrGrid{corr: corr}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	labels, err := cellLabels(corr)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	return renderPNG(p, 8*vg.Inch, 6*vg.Inch)
}

// cellLabels annotates each cell with its coefficient, in the manner of an
// annotated seaborn heatmap.
func cellLabels(corr *dataset.CorrelationMatrix) (*plotter.Labels, error) {
	n := len(corr.Names)
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, n*n),
		Labels: make([]string, 0, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.2f", corr.Values[r][c]))
		}
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build heatmap annotations")
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	return labels, nil
}
