package domain

import (
	"fmt"
	"time"
)

// Period is a tax period, one calendar month.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod validates the month and year of a tax period.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	if year < 2017 || year > 9999 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// Contains reports whether t falls inside the period's calendar month.
func (p Period) Contains(t time.Time) bool {
	return t.Month() == p.Month && t.Year() == p.Year
}

// FileStem is the base name, without extension, used for period exports.
func (p Period) FileStem() string {
	return fmt.Sprintf("gstr2a_reconciliation_%02d%04d", p.Month, p.Year)
}
