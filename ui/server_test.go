package ui

import (
	"embed"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"winelab/domain/dataset"
	"winelab/internal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed templates/* static/*
var testAssets embed.FS

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := NewServer(wineTable(t, 60), testAssets, internal.NewLogger(internal.LogLevelError))
	require.NoError(t, err)
	return srv
}

// wineTable builds a table with the full canonical schema and reproducible
// values.
func wineTable(t *testing.T, rows int) *dataset.Table {
	t.Helper()

	rng := rand.New(rand.NewSource(17))
	cols := make([][]float64, len(dataset.Columns))
	for j := range cols {
		cols[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			if dataset.Columns[j] == dataset.QualityColumn {
				cols[j][i] = float64(3 + rng.Intn(6))
			} else {
				cols[j][i] = rng.Float64()*10 + 1
			}
		}
	}

	table, err := dataset.NewTable(dataset.Columns, cols)
	require.NoError(t, err)
	return table
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

// TestServer_OverviewSection verifies the overview renders head, schema and
// describe tables.
func TestServer_OverviewSection(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Wine Quality Analysis")
	assert.Contains(t, body, "Descriptive Statistics")
	assert.Contains(t, body, "volatile acidity")
}

// TestServer_ExploreMissingToggle verifies the missing-values table appears
// only when requested and reports zero for a clean dataset.
func TestServer_ExploreMissingToggle(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/explore")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Missing Values")

	w = get(t, srv, "/explore?missing=1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Missing Values")
	assert.Contains(t, body, "<td>0</td>")
}

// TestServer_AnalysisSection verifies the clustering section renders the
// centroid table and the axis pickers.
func TestServer_AnalysisSection(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/analysis")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Cluster Centers")
	assert.Contains(t, body, "Cluster 2")
	assert.NotContains(t, body, "Cluster 3")
}

// TestServer_AnalysisQualityAxis verifies quality is a selectable scatter
// axis: the pickers cover every table column, only the cluster id is held
// back.
func TestServer_AnalysisQualityAxis(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/analysis?x=quality&y=alcohol")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="quality" selected>`)
}

// TestServer_AnalysisRejectsUnknownAxis verifies unknown column names are a
// 400, not a silent default.
func TestServer_AnalysisRejectsUnknownAxis(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/analysis?x=bogus&y=alcohol")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestServer_ScatterChart verifies the scatter endpoint returns a PNG for
// valid axes, including the degenerate same-column case.
func TestServer_ScatterChart(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/charts/scatter.png?x=alcohol&y=density")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))

	w = get(t, srv, "/charts/scatter.png?x=alcohol&y=alcohol")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, srv, "/charts/scatter.png?x=quality&y=alcohol")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))
}

// TestServer_HeatmapChart verifies the heatmap endpoint returns a PNG.
func TestServer_HeatmapChart(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/charts/heatmap.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))
}

// TestServer_InsightsSection verifies the insight selector and the unknown
// key rejection.
func TestServer_InsightsSection(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/insights")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Key Takeaways")

	w = get(t, srv, "/insights?insight=sulphates")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sulphates vs Quality")

	w = get(t, srv, "/insights?insight=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestServer_BoxChart verifies the insight box plot endpoint returns a PNG.
func TestServer_BoxChart(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/charts/box.png?insight=volatile-acidity")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

// TestServer_Export verifies the xlsx export is a zip container.
func TestServer_Export(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/export.xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

// TestSession_ClustersOncePerSession verifies repeated calls reuse the first
// partition and the cluster column sticks to the session table.
func TestSession_ClustersOncePerSession(t *testing.T) {
	store := newSessionStore()
	sess, err := store.create(wineTable(t, 50))
	require.NoError(t, err)
	require.Nil(t, sess.Table.Clusters())

	first, err := sess.Clusters()
	require.NoError(t, err)
	second, err := sess.Clusters()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, sess.Table.Clusters(), 50)
}

// TestSessionStore_EvictsIdleSessions verifies sessions idle past the TTL
// are dropped on the next creation, while active ones are kept alive by
// their requests.
func TestSessionStore_EvictsIdleSessions(t *testing.T) {
	store := newSessionStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	stale, err := store.create(wineTable(t, 30))
	require.NoError(t, err)

	current = current.Add(sessionTTL + time.Minute)
	fresh, err := store.create(wineTable(t, 30))
	require.NoError(t, err)

	_, ok := store.get(stale.ID)
	assert.False(t, ok)

	// Requests refresh the idle clock, so the fresh session outlives a full
	// TTL as long as it keeps being touched.
	current = current.Add(sessionTTL / 2)
	_, ok = store.get(fresh.ID)
	require.True(t, ok)

	current = current.Add(sessionTTL / 2)
	_, err = store.create(wineTable(t, 30))
	require.NoError(t, err)
	_, ok = store.get(fresh.ID)
	assert.True(t, ok)
}
