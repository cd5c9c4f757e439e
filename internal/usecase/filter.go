package usecase

import (
	"time"

	"github.com/sirupsen/logrus"

	"gst-reconciliation/internal/config"
	"gst-reconciliation/internal/domain"
)

// Ledger timestamps show up both with and without a zone or a time part.
var billDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseBillDate(raw string) (time.Time, bool) {
	for _, layout := range billDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterBillsByPeriod keeps the bills whose date falls inside the target
// month. Comparison is on parsed calendar components, never on the raw
// string. A bill whose date cannot be parsed is dropped rather than carried
// forward, so it can never surface as missing on the authority side.
func FilterBillsByPeriod(bills []domain.PurchaseBill, period domain.Period) []domain.PurchaseBill {
	var filtered []domain.PurchaseBill
	for _, b := range bills {
		parsed, ok := parseBillDate(b.BillDate)
		if !ok {
			config.GetLogger().WithFields(logrus.Fields{
				"bill": b.BillNumber,
				"date": b.BillDate,
			}).Warn("skipping purchase bill with unparsable date")
			continue
		}
		if !period.Contains(parsed) {
			continue
		}
		b.BillDateParsed = parsed
		filtered = append(filtered, b)
	}
	return filtered
}
