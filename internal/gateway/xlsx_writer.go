package gateway

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gst-reconciliation/internal/domain"
)

const reportSheet = "Sheet1"

// XLSXReportWriter serializes reconciliation reports to a spreadsheet with
// the same column layout as the CSV export.
type XLSXReportWriter struct{}

// NewXLSXReportWriter creates a new writer instance.
func NewXLSXReportWriter() *XLSXReportWriter {
	return &XLSXReportWriter{}
}

// Write renders the report into a single-sheet workbook.
func (w *XLSXReportWriter) Write(out io.Writer, report *domain.ReconciliationReport) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, header := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}

	for i, res := range report.Results {
		for col, value := range resultRow(res) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile writes the XLSX export into dir, named for the target period, and
// returns the full path.
func (w *XLSXReportWriter) WriteFile(dir string, period domain.Period, report *domain.ReconciliationReport) (string, error) {
	path := filepath.Join(dir, period.FileStem()+".xlsx")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	if err := w.Write(f, report); err != nil {
		return "", err
	}
	return path, nil
}
