package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a closed, inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the period, inclusive of both ends.
func (p Period) Contains(d time.Time) bool {
	d = truncateToDate(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Fridays counts the number of Fridays within the period, inclusive.
func (p Period) Fridays() int {
	n := 0
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Friday {
			n++
		}
	}
	return n
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Paycheck is constructed empty at payday and populated by Employee.Payday.
type Paycheck struct {
	Period     Period
	GrossPay   decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal
}

// NewPaycheck builds an empty paycheck for the given pay period.
func NewPaycheck(period Period) *Paycheck {
	return &Paycheck{
		Period:     period,
		GrossPay:   decimal.Zero,
		Deductions: decimal.Zero,
		NetPay:     decimal.Zero,
	}
}
