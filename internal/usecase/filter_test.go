package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gst-reconciliation/internal/domain"
	"gst-reconciliation/internal/usecase"
)

func TestFilterBillsByPeriod(t *testing.T) {
	april2024 := domain.Period{Month: time.April, Year: 2024}

	tests := []struct {
		name      string
		bills     []domain.PurchaseBill
		wantBills []string
	}{
		{
			name: "keeps only bills inside the target month",
			bills: []domain.PurchaseBill{
				{BillNumber: "B1", BillDate: "2024-04-15T00:00:00Z"},
				{BillNumber: "B2", BillDate: "2024-03-31T23:59:59Z"},
				{BillNumber: "B3", BillDate: "2024-05-01T00:00:00Z"},
				{BillNumber: "B4", BillDate: "2024-04-01T00:00:00Z"},
			},
			wantBills: []string{"B1", "B4"},
		},
		{
			name: "accepts dates without zone or time part",
			bills: []domain.PurchaseBill{
				{BillNumber: "B1", BillDate: "2024-04-15T10:30:00"},
				{BillNumber: "B2", BillDate: "2024-04-20"},
			},
			wantBills: []string{"B1", "B2"},
		},
		{
			name: "drops bills with unparsable dates",
			bills: []domain.PurchaseBill{
				{BillNumber: "B1", BillDate: "not-a-date"},
				{BillNumber: "B2", BillDate: ""},
				{BillNumber: "B3", BillDate: "2024-04-10T00:00:00Z"},
			},
			wantBills: []string{"B3"},
		},
		{
			name: "same month of a different year is excluded",
			bills: []domain.PurchaseBill{
				{BillNumber: "B1", BillDate: "2023-04-15T00:00:00Z"},
			},
			wantBills: nil,
		},
		{
			name:      "empty input yields empty output",
			bills:     nil,
			wantBills: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.FilterBillsByPeriod(tt.bills, april2024)

			var numbers []string
			for _, b := range got {
				numbers = append(numbers, b.BillNumber)
			}
			assert.Equal(t, tt.wantBills, numbers)
		})
	}
}

func TestFilterBillsByPeriod_SetsParsedDate(t *testing.T) {
	april2024 := domain.Period{Month: time.April, Year: 2024}
	bills := []domain.PurchaseBill{
		{BillNumber: "B1", BillDate: "2024-04-15T10:30:00Z"},
	}

	got := usecase.FilterBillsByPeriod(bills, april2024)

	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC), got[0].BillDateParsed)
}
