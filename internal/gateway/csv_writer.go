package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/domain"
)

// reportColumns is the fixed export layout shared by the CSV and XLSX
// writers.
var reportColumns = []string{
	"Document Number",
	"Document Date",
	"Counterparty Tax ID",
	"Document Value",
	"Authority Taxable Value",
	"Ledger Taxable Value",
	"Authority GST Amount",
	"Ledger GST Amount",
	"Status",
	"Mismatch Reasons",
}

// CSVReportWriter serializes reconciliation reports to CSV.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// Write renders the sorted result list. Numeric cells carry exactly two
// decimal places; an absent optional amount renders as an empty cell, never
// as zero.
func (w *CSVReportWriter) Write(out io.Writer, report *domain.ReconciliationReport) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(reportColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, res := range report.Results {
		if err := cw.Write(resultRow(res)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", res.DocumentNumber, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV export into dir, named for the target period, and
// returns the full path.
func (w *CSVReportWriter) WriteFile(dir string, period domain.Period, report *domain.ReconciliationReport) (string, error) {
	path := filepath.Join(dir, period.FileStem()+".csv")
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

func resultRow(res domain.ReconciliationResult) []string {
	return []string{
		res.DocumentNumber,
		res.DocumentDate,
		res.CounterpartyTaxID,
		formatAmount(res.DocumentValue),
		formatAmount(res.AuthorityTaxableValue),
		formatAmount(res.LedgerTaxableValue),
		formatAmount(res.AuthorityGSTAmount),
		formatAmount(res.LedgerGSTAmount),
		string(res.Status),
		strings.Join(res.MismatchReasons, "; "),
	}
}

func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
