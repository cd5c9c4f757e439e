package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"gst-reconciliation/internal/config"
	"gst-reconciliation/internal/domain"
)

// DefaultTolerance is the maximum absolute difference, in currency units,
// between two compared amounts still treated as equal. The boundary is
// inclusive: a difference of exactly the tolerance matches.
var DefaultTolerance = decimal.NewFromFloat(2.00)

// ledgerDateLayout is the single separator convention both dates are
// normalized to before comparison.
const ledgerDateLayout = "02/01/2006"

// Match classifies every key in the union of both sides. Results are sorted
// ascending by document number, ties broken by counterparty tax ID so that
// identical inputs always produce identical output.
//
// Duplicate keys within one side keep the first-seen record; later records
// with the same key are logged and dropped instead of silently overwriting.
func Match(docs []domain.AuthorityDocument, bills []domain.PurchaseBill, tolerance decimal.Decimal) []domain.ReconciliationResult {
	authorityIndex := make(map[domain.ReconciliationKey]domain.AuthorityDocument, len(docs))
	for _, d := range docs {
		k := domain.DocumentKey(d)
		if _, ok := authorityIndex[k]; ok {
			logDuplicateKey("authority", k)
			continue
		}
		authorityIndex[k] = d
	}

	ledgerIndex := make(map[domain.ReconciliationKey]domain.PurchaseBill, len(bills))
	for _, b := range bills {
		k := b.Key()
		if _, ok := ledgerIndex[k]; ok {
			logDuplicateKey("ledger", k)
			continue
		}
		ledgerIndex[k] = b
	}

	results := make([]domain.ReconciliationResult, 0, len(authorityIndex)+len(ledgerIndex))
	for k, d := range authorityIndex {
		if b, ok := ledgerIndex[k]; ok {
			results = append(results, compare(d, b, tolerance))
		} else {
			results = append(results, missingInLedger(d))
		}
	}
	for k, b := range ledgerIndex {
		if _, ok := authorityIndex[k]; ok {
			continue
		}
		results = append(results, missingInAuthority(b))
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DocumentNumber != results[j].DocumentNumber {
			return results[i].DocumentNumber < results[j].DocumentNumber
		}
		return results[i].CounterpartyTaxID < results[j].CounterpartyTaxID
	})
	return results
}

// compare checks a pair present on both sides. Invoice value against net bill
// amount is deliberately not compared; only dates, GST amounts and taxable
// values contribute mismatch reasons.
func compare(d domain.AuthorityDocument, b domain.PurchaseBill, tolerance decimal.Decimal) domain.ReconciliationResult {
	authorityTaxable := d.Lines().TotalTaxableValue()
	authorityGST := d.Lines().TotalGSTAmount()
	authorityDate := normalizeDocumentDate(d.DocumentDate())
	ledgerDate := ledgerDisplayDate(b)

	reasons := make([]string, 0, 3)
	if authorityDate != ledgerDate {
		reasons = append(reasons, fmt.Sprintf("Date mismatch: Authority(%s) vs Ledger(%s)", authorityDate, ledgerDate))
	}
	if authorityGST.Sub(b.GSTAmount).Abs().GreaterThan(tolerance) {
		reasons = append(reasons, fmt.Sprintf("GST amount mismatch: Authority(%s) vs Ledger(%s)",
			authorityGST.StringFixed(2), b.GSTAmount.StringFixed(2)))
	}
	if authorityTaxable.Sub(b.TaxableValue).Abs().GreaterThan(tolerance) {
		reasons = append(reasons, fmt.Sprintf("Taxable value mismatch: Authority(%s) vs Ledger(%s)",
			authorityTaxable.StringFixed(2), b.TaxableValue.StringFixed(2)))
	}

	status := domain.StatusMatched
	if len(reasons) > 0 {
		status = domain.StatusMismatched
	}

	return domain.ReconciliationResult{
		DocumentNumber:        d.DocumentNumber(),
		DocumentDate:          authorityDate,
		CounterpartyTaxID:     d.CounterpartyTaxID(),
		DocumentValue:         present(d.DocumentValue()),
		AuthorityTaxableValue: present(authorityTaxable),
		LedgerTaxableValue:    present(b.TaxableValue),
		AuthorityGSTAmount:    present(authorityGST),
		LedgerGSTAmount:       present(b.GSTAmount),
		PresentIn:             domain.PresentInBoth,
		Status:                status,
		MismatchReasons:       reasons,
	}
}

func missingInLedger(d domain.AuthorityDocument) domain.ReconciliationResult {
	return domain.ReconciliationResult{
		DocumentNumber:        d.DocumentNumber(),
		DocumentDate:          normalizeDocumentDate(d.DocumentDate()),
		CounterpartyTaxID:     d.CounterpartyTaxID(),
		DocumentValue:         present(d.DocumentValue()),
		AuthorityTaxableValue: present(d.Lines().TotalTaxableValue()),
		AuthorityGSTAmount:    present(d.Lines().TotalGSTAmount()),
		PresentIn:             domain.PresentInAuthorityOnly,
		Status:                domain.StatusMissingInLedger,
		MismatchReasons:       []string{},
	}
}

func missingInAuthority(b domain.PurchaseBill) domain.ReconciliationResult {
	r := domain.ReconciliationResult{
		DocumentNumber:     b.BillNumber,
		DocumentDate:       ledgerDisplayDate(b),
		CounterpartyTaxID:  b.SupplierTaxID,
		LedgerTaxableValue: present(b.TaxableValue),
		LedgerGSTAmount:    present(b.GSTAmount),
		PresentIn:          domain.PresentInLedgerOnly,
		Status:             domain.StatusMissingInAuthority,
		MismatchReasons:    []string{},
	}
	if b.NetAmount.Valid {
		r.DocumentValue = b.NetAmount
	}
	return r
}

// normalizeDocumentDate rewrites an authority date to the "/" separator
// convention, so DD-MM-YYYY and DD/MM/YYYY compare equal.
func normalizeDocumentDate(date string) string {
	return strings.ReplaceAll(date, "-", "/")
}

func ledgerDisplayDate(b domain.PurchaseBill) string {
	if !b.BillDateParsed.IsZero() {
		return b.BillDateParsed.Format(ledgerDateLayout)
	}
	if t, ok := parseBillDate(b.BillDate); ok {
		return t.Format(ledgerDateLayout)
	}
	return b.BillDate
}

func present(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func logDuplicateKey(side string, k domain.ReconciliationKey) {
	config.GetLogger().WithFields(logrus.Fields{
		"side":         side,
		"document":     k.DocumentNumber,
		"counterparty": k.CounterpartyTaxID,
	}).Warn("duplicate reconciliation key, keeping first record")
}
