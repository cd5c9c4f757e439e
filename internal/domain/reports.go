package domain

import "github.com/shopspring/decimal"

// MatchStatus classifies one reconciliation key.
type MatchStatus string

const (
	StatusMatched            MatchStatus = "MATCHED"
	StatusMismatched         MatchStatus = "MISMATCHED"
	StatusMissingInLedger    MatchStatus = "MISSING_IN_LEDGER"
	StatusMissingInAuthority MatchStatus = "MISSING_IN_AUTHORITY"
)

// Presence records which side of the reconciliation had data for a key.
type Presence string

const (
	PresentInAuthorityOnly Presence = "AUTHORITY_ONLY"
	PresentInLedgerOnly    Presence = "LEDGER_ONLY"
	PresentInBoth          Presence = "BOTH"
)

// ReconciliationResult is the outcome for a single key in the union of both
// sides. Optional amounts are null when the corresponding side had no data;
// they are never rendered as zero.
type ReconciliationResult struct {
	DocumentNumber        string              `json:"document_number"`
	DocumentDate          string              `json:"document_date"`
	CounterpartyTaxID     string              `json:"counterparty_tax_id"`
	DocumentValue         decimal.NullDecimal `json:"document_value"`
	AuthorityTaxableValue decimal.NullDecimal `json:"authority_taxable_value"`
	LedgerTaxableValue    decimal.NullDecimal `json:"ledger_taxable_value"`
	AuthorityGSTAmount    decimal.NullDecimal `json:"authority_gst_amount"`
	LedgerGSTAmount       decimal.NullDecimal `json:"ledger_gst_amount"`
	PresentIn             Presence            `json:"present_in"`
	Status                MatchStatus         `json:"status"`
	MismatchReasons       []string            `json:"mismatch_reasons"`
}

// Summary provides the headline counts of a reconciliation run.
type Summary struct {
	Period                  string `json:"period"`
	TotalAuthorityDocuments int    `json:"total_authority_documents"`
	TotalLedgerBills        int    `json:"total_ledger_bills"`
	Matched                 int    `json:"matched"`
	Mismatched              int    `json:"mismatched"`
	MissingInLedger         int    `json:"missing_in_ledger"`
	MissingInAuthority      int    `json:"missing_in_authority"`
}

// ReconciliationReport is the top-level structure of a run's output.
type ReconciliationReport struct {
	ReconciliationSummary Summary                `json:"reconciliation_summary"`
	Results               []ReconciliationResult `json:"results"`
}
