// Package charts renders the dashboard's PNG visualizations: the correlation
// heatmap, the cluster scatter plot, and the per-quality box plots.
package charts

import (
	"bytes"
	"image/color"

	"winelab/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// clusterPalette is the fixed categorical palette keyed by cluster id.
var clusterPalette = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	{R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
}

// ClusterColor returns the palette color for a cluster id, cycling past the
// palette length.
func ClusterColor(cluster int) color.RGBA {
	if cluster < 0 {
		cluster = 0
	}
	return clusterPalette[cluster%len(clusterPalette)]
}

// renderPNG rasterizes a plot at the given size.
func renderPNG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare chart renderer")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render chart")
	}
	return buf.Bytes(), nil
}
