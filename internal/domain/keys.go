package domain

// ReconciliationKey joins an authority document to a ledger bill. It is a
// struct rather than a delimited string so field values that contain any
// separator character cannot collide.
type ReconciliationKey struct {
	DocumentNumber    string
	CounterpartyTaxID string
}

// KeyFor builds the join key from its two components. Keys are
// case-preserved, exact-match strings; no fuzzy joining happens anywhere.
func KeyFor(documentNumber, counterpartyTaxID string) ReconciliationKey {
	return ReconciliationKey{
		DocumentNumber:    documentNumber,
		CounterpartyTaxID: counterpartyTaxID,
	}
}

// DocumentKey returns the join key for an authority document.
func DocumentKey(d AuthorityDocument) ReconciliationKey {
	return KeyFor(d.DocumentNumber(), d.CounterpartyTaxID())
}

// Key returns the join key for a purchase bill.
func (b PurchaseBill) Key() ReconciliationKey {
	return KeyFor(b.BillNumber, b.SupplierTaxID)
}
