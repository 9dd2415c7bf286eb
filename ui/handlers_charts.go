package ui

import (
	"fmt"
	"net/http"

	"winelab/adapters/charts"
	"winelab/domain/dataset"
	"winelab/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleHeatmapChart serves the correlation heatmap for the session.
func (s *Server) handleHeatmapChart(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	img, err := charts.Heatmap(sess.Correlation())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// handleScatterChart serves the 2D cluster scatter plot for the requested
// axis columns.
func (s *Server) handleScatterChart(c *gin.Context) {
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
	xName := c.DefaultQuery("x", axes[0])
	yName := c.DefaultQuery("y", axes[1])
	if err := validateAxis(axes, xName, yName); err != nil {
		s.renderError(c, err)
		return
	}

	x, err := sess.Table.Column(xName)
	if err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}
	y, err := sess.Table.Column(yName)
	if err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	img, err := charts.Scatter(xName, yName, x, y, result.Assignments, result.K)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// handleBoxChart serves the box plot for one of the fixed insight pairings.
func (s *Server) handleBoxChart(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	key := c.DefaultQuery("insight", insightCatalog[0].Key)
	insight := findInsight(key)
	if insight == nil {
		s.renderError(c, errors.InvalidInput(fmt.Sprintf("unknown insight %q", key)))
		return
	}

	groups, err := qualityGroups(sess.Table, insight.Feature)
	if err != nil {
		s.renderError(c, err)
		return
	}

	img, err := charts.BoxPlot(insight.Title, insight.YLabel, groups)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// qualityGroups splits one feature column by discrete quality score.
func qualityGroups(t *dataset.Table, feature string) (map[int][]float64, error) {
	values, err := t.Column(feature)
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}
	quality, err := t.Column(dataset.QualityColumn)
	if err != nil {
		return nil, err
	}

	groups := make(map[int][]float64)
	for i, v := range values {
		groups[int(quality[i])] = append(groups[int(quality[i])], v)
	}
	return groups, nil
}
