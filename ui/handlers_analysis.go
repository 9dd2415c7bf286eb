package ui

import (
	"fmt"

	"winelab/internal/errors"

	"github.com/gin-gonic/gin"
)

// CentroidRow presents one feature's centroid coordinate across all clusters.
type CentroidRow struct {
	Feature string
	Values  []float64
}

// handleAnalysis renders the clustering section: runs (or reuses) the fixed
// k-means partition, shows the centroids, and offers the axis pickers for the
// cluster scatter plot.
func (s *Server) handleAnalysis(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := sess.Clusters()
	if err != nil {
		s.renderError(c, err)
		return
	}

	axes := sess.Table.Names()
	x := c.DefaultQuery("x", axes[0])
	y := c.DefaultQuery("y", axes[1])
	if err := validateAxis(axes, x, y); err != nil {
		s.renderError(c, err)
		return
	}

	centroidRows := make([]CentroidRow, len(result.Features))
	for j, feature := range result.Features {
		values := make([]float64, result.K)
		for k := 0; k < result.K; k++ {
			values[k] = result.Centroids[k][j]
		}
		centroidRows[j] = CentroidRow{Feature: feature, Values: values}
	}

	s.renderTemplate(c, "analysis.html", map[string]interface{}{
		"Title":        "Analysis and Insights",
		"Active":       "analysis",
		"K":            result.K,
		"Iterations":   result.Iterations,
		"Converged":    result.Converged,
		"Sizes":        result.Sizes(),
		"CentroidRows": centroidRows,
		"Axes":         axes,
		"X":            x,
		"Y":            y,
	})
}

// validateAxis rejects unknown column names. Any table column is a valid
// axis, quality included; only the cluster id is off the menu. Picking the
// same column twice is allowed and yields a degenerate plot, matching the
// closed-selector UI.
func validateAxis(columns []string, axes ...string) error {
	for _, axis := range axes {
		known := false
		for _, col := range columns {
			if col == axis {
				known = true
				break
			}
		}
		if !known {
			return errors.InvalidInput(fmt.Sprintf("unknown axis column %q", axis))
		}
	}
	return nil
}
