package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	eightHours        = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
)

// TimeCard is one in-period-or-not hour entry against an Hourly employee.
// Duplicate dates are permitted; each entry counts independently.
type TimeCard struct {
	Date  time.Time
	Hours decimal.Decimal
}

// SalesReceipt is one dated sale against a Commissioned employee.
type SalesReceipt struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Classification is the polymorphic aspect answering "how much gross pay for
// this pay period." Kind names the variant.
type Classification interface {
	CalculatePay(pc *Paycheck) decimal.Decimal
	Kind() string
}

// SalariedClassification pays Salary every pay period, unconditionally.
type SalariedClassification struct {
	Salary decimal.Decimal
}

func NewSalariedClassification(salary decimal.Decimal) *SalariedClassification {
	return &SalariedClassification{Salary: salary}
}

func (s *SalariedClassification) CalculatePay(_ *Paycheck) decimal.Decimal { return s.Salary }
func (s *SalariedClassification) Kind() string                            { return "Salaried" }

// HourlyClassification accumulates time cards for the employee's lifetime;
// only cards within the paycheck's period contribute to a given payday.
type HourlyClassification struct {
	HourlyRate decimal.Decimal
	TimeCards  []TimeCard
}

func NewHourlyClassification(hourlyRate decimal.Decimal) *HourlyClassification {
	return &HourlyClassification{HourlyRate: hourlyRate}
}

func (h *HourlyClassification) AddTimeCard(tc TimeCard) {
	h.TimeCards = append(h.TimeCards, tc)
}

func (h *HourlyClassification) CalculatePay(pc *Paycheck) decimal.Decimal {
	total := decimal.Zero
	for _, tc := range h.TimeCards {
		if !pc.Period.Contains(tc.Date) {
			continue
		}
		total = total.Add(h.payFor(tc))
	}
	return total
}

func (h *HourlyClassification) payFor(tc TimeCard) decimal.Decimal {
	overtime := tc.Hours.Sub(eightHours)
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}
	straight := tc.Hours.Sub(overtime)
	return straight.Mul(h.HourlyRate).Add(overtime.Mul(h.HourlyRate).Mul(overtimeMultiplier))
}

func (h *HourlyClassification) Kind() string { return "Hourly" }

// CommissionedClassification pays Salary plus commission on in-period receipts.
type CommissionedClassification struct {
	Salary         decimal.Decimal
	CommissionRate decimal.Decimal
	SalesReceipts  []SalesReceipt
}

func NewCommissionedClassification(salary, commissionRate decimal.Decimal) *CommissionedClassification {
	return &CommissionedClassification{Salary: salary, CommissionRate: commissionRate}
}

func (c *CommissionedClassification) AddSalesReceipt(sr SalesReceipt) {
	c.SalesReceipts = append(c.SalesReceipts, sr)
}

func (c *CommissionedClassification) CalculatePay(pc *Paycheck) decimal.Decimal {
	total := c.Salary
	for _, sr := range c.SalesReceipts {
		if !pc.Period.Contains(sr.Date) {
			continue
		}
		total = total.Add(sr.Amount.Mul(c.CommissionRate))
	}
	return total
}

func (c *CommissionedClassification) Kind() string { return "Commissioned" }
