package ui

import (
	"github.com/gin-gonic/gin"
)

// handleOverview renders the first section: table head, schema summary and
// descriptive statistics. Pure read of the session table.
func (s *Server) handleOverview(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderTemplate(c, "overview.html", map[string]interface{}{
		"Title":    "Wine Quality Analysis",
		"Active":   "overview",
		"Names":    sess.Table.Names(),
		"Head":     sess.Table.Head(5),
		"Rows":     sess.Table.Rows(),
		"Fields":   sess.Fields(),
		"Describe": sess.Describe(),
	})
}
