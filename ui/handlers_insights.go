package ui

import (
	"fmt"

	"winelab/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleInsights renders the conclusions section: authored takeaways and
// recommendations, plus the selectable feature-vs-quality box plots.
func (s *Server) handleInsights(c *gin.Context) {
	if _, err := s.session(c); err != nil {
		s.renderError(c, err)
		return
	}

	key := c.DefaultQuery("insight", insightCatalog[0].Key)
	insight := findInsight(key)
	if insight == nil {
		s.renderError(c, errors.InvalidInput(fmt.Sprintf("unknown insight %q", key)))
		return
	}

	s.renderTemplate(c, "insights.html", map[string]interface{}{
		"Title":           "Conclusions and Recommendations",
		"Active":          "insights",
		"Takeaways":       renderMarkdown(takeawaysMarkdown),
		"Recommendations": renderMarkdown(recommendationsMarkdown),
		"Catalog":         insightCatalog,
		"Selected":        insight,
		"Body":            renderMarkdown(insight.Body),
	})
}
