package ui

import (
	"fmt"
	"net/http"

	"winelab/domain/dataset"
	"winelab/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExport streams the session table as an xlsx workbook, including the
// cluster column when clustering has run this session.
func (s *Server) handleExport(c *gin.Context) {
	sess, err := s.session(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	buf, err := exportWorkbook(sess.Table)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="winequality-red.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf)
}

func exportWorkbook(t *dataset.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	names := t.Names()
	clusters := t.Clusters()

	header := make([]interface{}, 0, len(names)+1)
	for _, n := range names {
		header = append(header, n)
	}
	if clusters != nil {
		header = append(header, dataset.ClusterColumn)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write export header")
	}

	cols := make([][]float64, len(names))
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	for i := 0; i < t.Rows(); i++ {
		row := make([]interface{}, 0, len(names)+1)
		for j := range names {
			if names[j] == dataset.QualityColumn {
				row = append(row, int(cols[j][i]))
			} else {
				row = append(row, cols[j][i])
			}
		}
		if clusters != nil {
			row = append(row, clusters[i])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute export cell")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write export row %d", i+1)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build xlsx workbook")
	}
	if buf.Len() == 0 {
		return nil, errors.New(errors.CodeInternalError, fmt.Sprintf("empty export for %d rows", t.Rows()))
	}
	return buf.Bytes(), nil
}
