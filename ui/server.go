package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"winelab/domain/core"
	"winelab/domain/dataset"
	"winelab/internal"
	"winelab/internal/errors"

	"github.com/gin-gonic/gin"
)

// Server is the web server for the wine quality dashboard. It owns the loaded
// base table and the per-browser sessions derived from it.
type Server struct {
	router    *gin.Engine
	base      *dataset.Table
	templates *template.Template
	embedded  fs.FS
	log       *internal.Logger

	sessions *sessionStore
}

// NewServer creates the dashboard server around an already loaded table.
// embedded must contain the templates/ and static/ asset trees, either at its
// root or under ui/ (the repo-root embed).
func NewServer(base *dataset.Table, embedded fs.FS, logger *internal.Logger) (*Server, error) {
	s := &Server{
		router:   gin.Default(),
		base:     base,
		embedded: embedded,
		log:      logger.With("ui"),
		sessions: newSessionStore(),
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) parseTemplates() error {
	funcMap := template.FuncMap{
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"f4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
		"cell": func(v float64) string {
			// Trim trailing zeros so the head table reads like the raw file.
			out := fmt.Sprintf("%.4f", v)
			out = strings.TrimRight(out, "0")
			return strings.TrimRight(out, ".")
		},
	}

	templatesFS, err := s.assetFS("templates")
	if err != nil {
		return errors.Wrap(err, "failed to create templates filesystem")
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html")
	if err != nil {
		return errors.Wrap(err, "failed to parse templates")
	}
	s.templates = templates
	return nil
}

// assetFS resolves an asset subtree from either the repo-root embed
// ("ui/<name>") or a package-local one ("<name>").
func (s *Server) assetFS(name string) (fs.FS, error) {
	if sub, err := fs.Sub(s.embedded, "ui/"+name); err == nil {
		if matches, _ := fs.Glob(sub, "*"); len(matches) > 0 {
			return sub, nil
		}
	}
	return fs.Sub(s.embedded, name)
}

func (s *Server) setupRoutes() {
	staticFS, err := s.assetFS("static")
	if err == nil {
		s.router.StaticFS("/static", http.FS(staticFS))
	} else {
		s.log.Warn("Static filesystem unavailable: %v", err)
	}

	// One route per dashboard section.
	s.router.GET("/", s.handleOverview)
	s.router.GET("/explore", s.handleExplore)
	s.router.GET("/analysis", s.handleAnalysis)
	s.router.GET("/insights", s.handleInsights)

	// Chart images referenced by the section pages.
	s.router.GET("/charts/heatmap.png", s.handleHeatmapChart)
	s.router.GET("/charts/scatter.png", s.handleScatterChart)
	s.router.GET("/charts/box.png", s.handleBoxChart)

	s.router.GET("/export.xlsx", s.handleExport)
}

// Start starts the web server.
func (s *Server) Start(addr string) error {
	s.log.Info("Starting wine quality dashboard on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine, for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		s.log.Error("Template %s failed: %v", name, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// renderError maps an error to its HTTP status and shows the generic error
// surface for the active section.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeDataUnavailable:
		status = http.StatusServiceUnavailable
	}
	s.log.Error("Request %s failed: %v", c.Request.URL.Path, err)

	c.Status(status)
	s.renderTemplate(c, "error.html", map[string]interface{}{
		"Title":   "Something went wrong",
		"Active":  "",
		"Code":    errors.GetCode(err),
		"Message": err.Error(),
	})
	c.Abort()
}

// session returns the session for the request's cookie, creating one (and the
// cookie) on first contact.
func (s *Server) session(c *gin.Context) (*Session, error) {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.get(core.SessionID(id)); ok {
			return sess, nil
		}
	}

	sess, err := s.sessions.create(s.base)
	if err != nil {
		return nil, err
	}
	c.SetCookie(sessionCookie, sess.ID.String(), 0, "/", "", false, true)
	s.log.Debug("Created session %s", sess.ID)
	return sess, nil
}
