package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/domain"
)

// JSONSourceRepository implements the SourceRepository interface over JSON
// payload files already fetched from the tax data source and the ledger
// server.
type JSONSourceRepository struct{}

// NewJSONSourceRepository creates a new repository instance.
func NewJSONSourceRepository() *JSONSourceRepository {
	return &JSONSourceRepository{}
}

// Wire shape of the authority payload. The two families carry the same data
// under different field names: invoices under "inv" with inum/idt, notes
// under "nt" with nt_num/nt_dt.
type authorityPayload struct {
	B2B []b2bSupplierGroup `json:"b2b"`
	CDN []cdnSupplierGroup `json:"cdn"`
}

type b2bSupplierGroup struct {
	CTIN     string       `json:"ctin"`
	Invoices []b2bInvoice `json:"inv"`
}

type b2bInvoice struct {
	Number string          `json:"inum"`
	Date   string          `json:"idt"`
	Value  decimal.Decimal `json:"val"`
	Items  []payloadItem   `json:"itms"`
}

type cdnSupplierGroup struct {
	CTIN  string    `json:"ctin"`
	Notes []cdnNote `json:"nt"`
}

type cdnNote struct {
	Number string          `json:"nt_num"`
	Date   string          `json:"nt_dt"`
	Value  decimal.Decimal `json:"val"`
	Items  []payloadItem   `json:"itms"`
}

type payloadItem struct {
	Num    int        `json:"num"`
	Detail itemDetail `json:"itm_det"`
}

type itemDetail struct {
	TaxableValue  decimal.Decimal `json:"txval"`
	RatePercent   decimal.Decimal `json:"rt"`
	IntegratedTax decimal.Decimal `json:"iamt"`
	CentralTax    decimal.Decimal `json:"camt"`
	StateTax      decimal.Decimal `json:"samt"`
	Cess          decimal.Decimal `json:"csamt"`
}

// GetAuthorityDocuments reads and flattens an authority payload file.
func (r *JSONSourceRepository) GetAuthorityDocuments(ctx context.Context, path string, families []domain.Family) ([]domain.AuthorityDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open authority payload %s: %w", path, err)
	}
	return ParseAuthorityPayload(data, families)
}

// ParseAuthorityPayload decodes the nested supplier-to-invoice-list payload
// and flattens it into one record per document, each stamped with its
// supplier group's CTIN. A group with an empty item list contributes zero
// records. An empty family list selects both families.
func ParseAuthorityPayload(data []byte, families []domain.Family) ([]domain.AuthorityDocument, error) {
	var payload authorityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: authority payload: %v", domain.ErrMalformedPayload, err)
	}

	include := familySet(families)
	var docs []domain.AuthorityDocument
	if include[domain.FamilyB2B] {
		for _, group := range payload.B2B {
			for _, inv := range group.Invoices {
				docs = append(docs, domain.B2BInvoice{
					SupplierTaxID: group.CTIN,
					InvoiceNumber: inv.Number,
					InvoiceDate:   inv.Date,
					InvoiceValue:  inv.Value,
					LineItems:     toTaxLines(inv.Items),
				})
			}
		}
	}
	if include[domain.FamilyCDN] {
		for _, group := range payload.CDN {
			for _, nt := range group.Notes {
				docs = append(docs, domain.CreditDebitNote{
					SupplierTaxID: group.CTIN,
					NoteNumber:    nt.Number,
					NoteDate:      nt.Date,
					NoteValue:     nt.Value,
					LineItems:     toTaxLines(nt.Items),
				})
			}
		}
	}
	return docs, nil
}

func toTaxLines(items []payloadItem) domain.TaxLines {
	lines := make(domain.TaxLines, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.TaxLine{
			TaxableValue:  it.Detail.TaxableValue,
			RatePercent:   it.Detail.RatePercent,
			IntegratedTax: it.Detail.IntegratedTax,
			CentralTax:    it.Detail.CentralTax,
			StateTax:      it.Detail.StateTax,
			Cess:          it.Detail.Cess,
		})
	}
	return lines
}

func familySet(families []domain.Family) map[domain.Family]bool {
	if len(families) == 0 {
		return map[domain.Family]bool{domain.FamilyB2B: true, domain.FamilyCDN: true}
	}
	set := make(map[domain.Family]bool, len(families))
	for _, f := range families {
		set[f] = true
	}
	return set
}
