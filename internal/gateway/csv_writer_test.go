package gateway_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gst-reconciliation/internal/domain"
	"gst-reconciliation/internal/gateway"
)

func amount(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

func sampleReport() *domain.ReconciliationReport {
	return &domain.ReconciliationReport{
		ReconciliationSummary: domain.Summary{
			Period:                  "04-2024",
			TotalAuthorityDocuments: 2,
			TotalLedgerBills:        1,
			Mismatched:              1,
			MissingInLedger:         1,
		},
		Results: []domain.ReconciliationResult{
			{
				DocumentNumber:        "INV100",
				DocumentDate:          "22/04/2024",
				CounterpartyTaxID:     "22AAAAA0000A1Z5",
				DocumentValue:         amount(1180),
				AuthorityTaxableValue: amount(1000),
				LedgerTaxableValue:    amount(1000),
				AuthorityGSTAmount:    amount(180),
				LedgerGSTAmount:       amount(185),
				PresentIn:             domain.PresentInBoth,
				Status:                domain.StatusMismatched,
				MismatchReasons: []string{
					"GST amount mismatch: Authority(180.00) vs Ledger(185.00)",
				},
			},
			{
				DocumentNumber:        "INV200",
				DocumentDate:          "10/04/2024",
				CounterpartyTaxID:     "29BBBBB0000B1Z4",
				DocumentValue:         amount(590),
				AuthorityTaxableValue: amount(500),
				AuthorityGSTAmount:    amount(90),
				PresentIn:             domain.PresentInAuthorityOnly,
				Status:                domain.StatusMissingInLedger,
				MismatchReasons:       []string{},
			},
		},
	}
}

func TestCSVReportWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	err := gateway.NewCSVReportWriter().Write(&buf, sampleReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Document Number", "Document Date", "Counterparty Tax ID", "Document Value",
		"Authority Taxable Value", "Ledger Taxable Value", "Authority GST Amount",
		"Ledger GST Amount", "Status", "Mismatch Reasons",
	}, rows[0])

	assert.Equal(t, []string{
		"INV100", "22/04/2024", "22AAAAA0000A1Z5", "1180.00",
		"1000.00", "1000.00", "180.00", "185.00",
		"MISMATCHED", "GST amount mismatch: Authority(180.00) vs Ledger(185.00)",
	}, rows[1])

	// Absent ledger-side amounts render as empty cells, not zeros.
	assert.Equal(t, []string{
		"INV200", "10/04/2024", "29BBBBB0000B1Z4", "590.00",
		"500.00", "", "90.00", "",
		"MISSING_IN_LEDGER", "",
	}, rows[2])
}

func TestCSVReportWriter_WriteFile(t *testing.T) {
	dir := t.TempDir()
	period := domain.Period{Month: time.April, Year: 2024}

	path, err := gateway.NewCSVReportWriter().WriteFile(dir, period, sampleReport())
	require.NoError(t, err)
	assert.Contains(t, path, "gstr2a_reconciliation_042024.csv")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INV100")
}

func TestCSVReportWriter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.ReconciliationReport{Results: []domain.ReconciliationResult{}}

	err := gateway.NewCSVReportWriter().Write(&buf, report)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
