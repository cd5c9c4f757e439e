package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Family identifies which authority record family a document belongs to.
type Family string

const (
	FamilyB2B Family = "B2B" // ordinary tax invoices
	FamilyCDN Family = "CDN" // credit and debit notes
)

// ParseFamilies maps caller-supplied family names to Family values.
func ParseFamilies(names []string) ([]Family, error) {
	families := make([]Family, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "b2b":
			families = append(families, FamilyB2B)
		case "cdn":
			families = append(families, FamilyCDN)
		default:
			return nil, fmt.Errorf("unknown record family %q: expected b2b or cdn", name)
		}
	}
	return families, nil
}

// TaxLine is a single line item of an authority document.
type TaxLine struct {
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	RatePercent   decimal.Decimal `json:"rate_percent"`
	IntegratedTax decimal.Decimal `json:"integrated_tax"`
	CentralTax    decimal.Decimal `json:"central_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`
	Cess          decimal.Decimal `json:"cess"`
}

// TaxLines carries the per-document aggregations over line items.
type TaxLines []TaxLine

// TotalTaxableValue sums the taxable value across all lines.
func (ls TaxLines) TotalTaxableValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.TaxableValue)
	}
	return total
}

// TotalGSTAmount sums the four tax components across all lines.
func (ls TaxLines) TotalGSTAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.IntegratedTax).Add(l.CentralTax).Add(l.StateTax).Add(l.Cess)
	}
	return total
}

// AuthorityDocument is implemented by both record families so that matching
// stays family-agnostic.
type AuthorityDocument interface {
	Family() Family
	DocumentNumber() string
	// DocumentDate returns the date exactly as the authority reported it,
	// DD-MM-YYYY or DD/MM/YYYY depending on the payload.
	DocumentDate() string
	CounterpartyTaxID() string
	DocumentValue() decimal.Decimal
	Lines() TaxLines
}

// B2BInvoice is an ordinary tax invoice reported by a supplier.
type B2BInvoice struct {
	SupplierTaxID string          `json:"supplier_tax_id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	InvoiceValue  decimal.Decimal `json:"invoice_value"`
	LineItems     TaxLines        `json:"line_items"`
}

func (i B2BInvoice) Family() Family                 { return FamilyB2B }
func (i B2BInvoice) DocumentNumber() string         { return i.InvoiceNumber }
func (i B2BInvoice) DocumentDate() string           { return i.InvoiceDate }
func (i B2BInvoice) CounterpartyTaxID() string      { return i.SupplierTaxID }
func (i B2BInvoice) DocumentValue() decimal.Decimal { return i.InvoiceValue }
func (i B2BInvoice) Lines() TaxLines                { return i.LineItems }

// CreditDebitNote is a credit or debit note reported by a supplier.
type CreditDebitNote struct {
	SupplierTaxID string          `json:"supplier_tax_id"`
	NoteNumber    string          `json:"note_number"`
	NoteDate      string          `json:"note_date"`
	NoteValue     decimal.Decimal `json:"note_value"`
	LineItems     TaxLines        `json:"line_items"`
}

func (n CreditDebitNote) Family() Family                 { return FamilyCDN }
func (n CreditDebitNote) DocumentNumber() string         { return n.NoteNumber }
func (n CreditDebitNote) DocumentDate() string           { return n.NoteDate }
func (n CreditDebitNote) CounterpartyTaxID() string      { return n.SupplierTaxID }
func (n CreditDebitNote) DocumentValue() decimal.Decimal { return n.NoteValue }
func (n CreditDebitNote) Lines() TaxLines                { return n.LineItems }

// PurchaseBill is one bill from the organization's own purchase ledger.
// TaxableValue and GSTAmount arrive pre-aggregated upstream from the
// item-level purchase detail records sharing the same bill number.
type PurchaseBill struct {
	BillNumber    string `json:"bill_number"`
	SupplierTaxID string `json:"supplier_tax_id"`
	// BillDate is the raw ISO datetime string as stored in the ledger.
	BillDate string `json:"bill_date"`
	// BillDateParsed is populated by the period filter; zero until then.
	BillDateParsed time.Time           `json:"-"`
	NetAmount      decimal.NullDecimal `json:"net_amount"`
	TaxableValue   decimal.Decimal     `json:"taxable_value"`
	GSTAmount      decimal.Decimal     `json:"gst_amount"`
}
