package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/domain"
)

// purchaseBillRow mirrors the ledger server's DBF-derived column names.
type purchaseBillRow struct {
	BillNumber    string              `json:"PBILL"`
	SupplierTaxID string              `json:"C_CST"`
	BillDate      string              `json:"PBILLDATE"`
	NetAmount     decimal.NullDecimal `json:"N_B_AMT"`
	TaxableValue  decimal.Decimal     `json:"TOTAL_TAXABLE_VALUE"`
	GSTAmount     decimal.Decimal     `json:"TOTAL_GST_AMOUNT"`
}

// GetPurchaseBills reads and parses a purchase ledger payload file.
func (r *JSONSourceRepository) GetPurchaseBills(ctx context.Context, path string) ([]domain.PurchaseBill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger payload %s: %w", path, err)
	}
	return ParsePurchaseBills(data)
}

// ParsePurchaseBills decodes a sequence of purchase-bill objects. Dates stay
// raw here; parsing and period checks happen in the filter so a single bad
// date cannot abort the run.
func ParsePurchaseBills(data []byte) ([]domain.PurchaseBill, error) {
	var rows []purchaseBillRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: ledger payload: %v", domain.ErrMalformedPayload, err)
	}

	bills := make([]domain.PurchaseBill, 0, len(rows))
	for _, row := range rows {
		bills = append(bills, domain.PurchaseBill{
			BillNumber:    row.BillNumber,
			SupplierTaxID: row.SupplierTaxID,
			BillDate:      row.BillDate,
			NetAmount:     row.NetAmount,
			TaxableValue:  row.TaxableValue,
			GSTAmount:     row.GSTAmount,
		})
	}
	return bills, nil
}
