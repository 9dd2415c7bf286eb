package ui

import (
	"winelab/domain/dataset"
	"winelab/internal/analysis"

	"github.com/gin-gonic/gin"
)

// handleExplore renders the exploration section: correlation heatmap plus the
// optional missing-values table, computed only when the checkbox is on.
func (s *Server) handleExplore(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	showMissing := c.Query("missing") == "1"
	var missing []dataset.MissingCount
	if showMissing {
		missing, err = analysis.MissingCounts(sess.Table)
		if err != nil {
			s.renderError(c, err)
			return
		}
	}

	s.renderTemplate(c, "explore.html", map[string]interface{}{
		"Title":       "Data Exploration and Preparation",
		"Active":      "explore",
		"ShowMissing": showMissing,
		"Missing":     missing,
	})
}
