package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DatasetURL is the fixed remote address of the semicolon-delimited wine
// quality file. It is deliberately not configurable.
const DatasetURL = "https://archive.ics.uci.edu/ml/machine-learning-databases/wine-quality/winequality-red.csv"

// Loader fetches and parses the dataset. A zero CacheFile disables the
// offline fallback.
type Loader struct {
	client    *http.Client
	cacheFile string
}

// NewLoader creates a dataset loader with an optional cache file path.
func NewLoader(cacheFile string) *Loader {
	return &Loader{
		client:    &http.Client{Timeout: 60 * time.Second},
		cacheFile: cacheFile,
	}
}

// Load fetches the remote dataset and parses it into a table. On fetch
// failure it falls back to the cached copy when one is configured and
// present; otherwise the error is fatal to the session.
func (l *Loader) Load(ctx context.Context) (*dataset.Table, error) {
	start := time.Now()

	body, err := l.fetch(ctx)
	if err != nil {
		if cached, cacheErr := l.readCache(); cacheErr == nil {
			log.Printf("[Loader] Remote fetch failed (%v), using cached dataset", err)
			return parseSemicolonCSV(strings.NewReader(string(cached)))
		}
		return nil, errors.Wrap(errors.DataUnavailable("failed to fetch dataset"), err.Error())
	}

	table, err := parseSemicolonCSV(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	l.writeCache(body)
	log.Printf("[Loader] Dataset loaded in %.2fms (%d rows, %d columns)",
		float64(time.Since(start).Nanoseconds())/1e6, table.Rows(), len(table.Names()))
	return table, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, DatasetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) readCache() ([]byte, error) {
	if l.cacheFile == "" {
		return nil, fmt.Errorf("no cache configured")
	}
	return os.ReadFile(l.cacheFile)
}

func (l *Loader) writeCache(body []byte) {
	if l.cacheFile == "" {
		return
	}
	if err := os.WriteFile(l.cacheFile, body, 0o644); err != nil {
		log.Printf("[Loader] Warning: failed to write dataset cache: %v", err)
	}
}

// LoadFile reads the dataset from a local file, supporting semicolon-delimited
// .csv and .xlsx (Sheet1).
func LoadFile(path string) (*dataset.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.DataUnavailable(fmt.Sprintf("dataset file not found: %s", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.DataUnavailable("failed to open dataset file"), err.Error())
		}
		defer f.Close()
		return parseSemicolonCSV(f)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, errors.DataUnavailable(fmt.Sprintf("unsupported dataset file type: %s", filepath.Ext(path)))
	}
}

// readXLSX reads Sheet1 of an xlsx workbook into a table.
func readXLSX(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.DataUnavailable("failed to open xlsx file"), err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(errors.DataUnavailable("failed to read Sheet1"), err.Error())
	}
	if len(rows) < 2 {
		return nil, errors.DataUnavailable("xlsx file must have a header row and at least one data row")
	}
	return buildTable(rows[0], rows[1:])
}

// parseSemicolonCSV parses the semicolon-delimited wine quality format.
func parseSemicolonCSV(r io.Reader) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.DataUnavailable("malformed dataset content"), err.Error())
	}
	if len(records) < 2 {
		return nil, errors.DataUnavailable("dataset must have a header row and at least one data row")
	}
	return buildTable(records[0], records[1:])
}

// buildTable validates the header against the canonical schema and coerces
// every cell to float64. Any mismatch or unparseable cell is fatal.
func buildTable(header []string, records [][]string) (*dataset.Table, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(h), `"`))
	}
	if err := validateHeader(names); err != nil {
		return nil, err
	}

	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, len(records))
	}
	for i, record := range records {
		if len(record) != len(names) {
			return nil, errors.DataUnavailable(fmt.Sprintf("row %d has %d fields, expected %d", i+1, len(record), len(names)))
		}
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.DataUnavailable(fmt.Sprintf("row %d column %q: non-numeric value %q", i+1, names[j], cell))
			}
			cols[j][i] = v
		}
	}

	table, err := dataset.NewTable(names, cols)
	if err != nil {
		return nil, errors.Wrap(errors.DataUnavailable("invalid dataset shape"), err.Error())
	}
	return table, nil
}

func validateHeader(names []string) error {
	if len(names) != len(dataset.Columns) {
		return errors.DataUnavailable(fmt.Sprintf("expected %d columns, got %d", len(dataset.Columns), len(names)))
	}
	for i, want := range dataset.Columns {
		if names[i] != want {
			return errors.DataUnavailable(fmt.Sprintf("column %d is %q, expected %q", i, names[i], want))
		}
	}
	return nil
}
