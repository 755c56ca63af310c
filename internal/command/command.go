// Package command defines the closed set of script commands the text
// parser produces, and the parser itself.
package command

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cutsea110/payroll-core/internal/domain"
)

// Kind discriminates the command variants the grammar can produce.
type Kind int

const (
	KindAddSalaried Kind = iota
	KindAddHourly
	KindAddCommissioned
	KindDelEmp
	KindTimeCard
	KindSalesReceipt
	KindServiceCharge
	KindChgName
	KindChgAddress
	KindChgHourly
	KindChgSalaried
	KindChgCommissioned
	KindChgHold
	KindChgDirect
	KindChgMail
	KindChgMember
	KindChgNoMember
	KindPayday
)

func (k Kind) String() string {
	switch k {
	case KindAddSalaried:
		return "AddSalaried"
	case KindAddHourly:
		return "AddHourly"
	case KindAddCommissioned:
		return "AddCommissioned"
	case KindDelEmp:
		return "DelEmp"
	case KindTimeCard:
		return "TimeCard"
	case KindSalesReceipt:
		return "SalesReceipt"
	case KindServiceCharge:
		return "ServiceCharge"
	case KindChgName:
		return "ChgName"
	case KindChgAddress:
		return "ChgAddress"
	case KindChgHourly:
		return "ChgHourly"
	case KindChgSalaried:
		return "ChgSalaried"
	case KindChgCommissioned:
		return "ChgCommissioned"
	case KindChgHold:
		return "ChgHold"
	case KindChgDirect:
		return "ChgDirect"
	case KindChgMail:
		return "ChgMail"
	case KindChgMember:
		return "ChgMember"
	case KindChgNoMember:
		return "ChgNoMember"
	case KindPayday:
		return "Payday"
	default:
		return "Unknown"
	}
}

// Command is the union of every field any variant might carry. Only the
// fields relevant to Kind are populated; this mirrors the flattened
// discriminated-union shape already used for the GORM wire format.
type Command struct {
	Kind Kind

	EmployeeID domain.EmployeeID
	MemberID   domain.MemberID

	Name    string
	Address string
	Bank    string
	Account string

	Salary         decimal.Decimal
	HourlyRate     decimal.Decimal
	CommissionRate decimal.Decimal
	Dues           decimal.Decimal
	Amount         decimal.Decimal
	Hours          decimal.Decimal

	Date time.Time
}
