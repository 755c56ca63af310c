package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCharge is a union-levied fee attached to a specific date.
type ServiceCharge struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Affiliation is the polymorphic aspect answering "what gets deducted from
// gross pay."
type Affiliation interface {
	CalculateDeductions(pc *Paycheck) decimal.Decimal
	Kind() string
}

// NoAffiliation is the default affiliation assigned to every new employee.
type NoAffiliation struct{}

func (NoAffiliation) CalculateDeductions(_ *Paycheck) decimal.Decimal { return decimal.Zero }
func (NoAffiliation) Kind() string                                   { return "None" }

// UnionAffiliation charges weekly dues per Friday in the pay period plus any
// in-period service charges.
type UnionAffiliation struct {
	MemberID       MemberID
	Dues           decimal.Decimal
	ServiceCharges []ServiceCharge
}

func NewUnionAffiliation(memberID MemberID, dues decimal.Decimal) *UnionAffiliation {
	return &UnionAffiliation{MemberID: memberID, Dues: dues}
}

func (u *UnionAffiliation) AddServiceCharge(sc ServiceCharge) {
	u.ServiceCharges = append(u.ServiceCharges, sc)
}

func (u *UnionAffiliation) CalculateDeductions(pc *Paycheck) decimal.Decimal {
	total := u.Dues.Mul(decimal.NewFromInt(int64(pc.Period.Fridays())))
	for _, sc := range u.ServiceCharges {
		if !pc.Period.Contains(sc.Date) {
			continue
		}
		total = total.Add(sc.Amount)
	}
	return total
}

func (u *UnionAffiliation) Kind() string { return "Union" }
