// Package gormstore is an alternate Store implementation backed by
// GORM/Postgres instead of the in-process maps MemoryStore uses. The
// employee aggregate, with its
// four polymorphic aspect slots, is serialized to a JSON blob column the
// same way an audit log stores before/after snapshots
// (gorm.io/datatypes.JSON) — there is no natural relational shape for a sum
// type without a much larger schema, and the port only promises "store and
// retrieve," not a queryable relational model.
package gormstore

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/cutsea110/payroll-core/internal/domain"
)

type employeeRow struct {
	ID      int64 `gorm:"primaryKey"`
	Payload datatypes.JSON
}

func (employeeRow) TableName() string { return "employees" }

type unionMemberRow struct {
	MemberID   int64 `gorm:"primaryKey"`
	EmployeeID int64 `gorm:"not null"`
}

func (unionMemberRow) TableName() string { return "union_members" }

type paycheckRow struct {
	ID         uint  `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64 `gorm:"index;not null"`
	Payload    datatypes.JSON
}

func (paycheckRow) TableName() string { return "paychecks" }

// employeeWire is the JSON-serializable projection of domain.Employee. The
// polymorphic aspect interfaces have no natural JSON shape, so each one is
// flattened into a Kind discriminator plus the union of every variant's
// fields actually used.
type employeeWire struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	ClassificationKind string            `json:"classification_kind"`
	Salary             string            `json:"salary,omitempty"`
	HourlyRate         string            `json:"hourly_rate,omitempty"`
	CommissionRate     string            `json:"commission_rate,omitempty"`
	TimeCards          []timeCardWire    `json:"time_cards,omitempty"`
	SalesReceipts      []salesReceiptWire `json:"sales_receipts,omitempty"`

	ScheduleKind string `json:"schedule_kind"`

	MethodKind    string `json:"method_kind"`
	MethodAddress string `json:"method_address,omitempty"`
	MethodBank    string `json:"method_bank,omitempty"`
	MethodAccount string `json:"method_account,omitempty"`

	AffiliationKind string              `json:"affiliation_kind"`
	MemberID        int64               `json:"member_id,omitempty"`
	Dues            string              `json:"dues,omitempty"`
	ServiceCharges  []serviceChargeWire `json:"service_charges,omitempty"`
}

type timeCardWire struct {
	Date  string `json:"date"`
	Hours string `json:"hours"`
}

type salesReceiptWire struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type serviceChargeWire struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

const dateLayout = "2006-01-02"

func toWire(emp *domain.Employee) (employeeWire, error) {
	w := employeeWire{
		ID:      int64(emp.ID),
		Name:    emp.Name,
		Address: emp.Address,
	}

	switch c := emp.Classification.(type) {
	case *domain.SalariedClassification:
		w.ClassificationKind = "Salaried"
		w.Salary = c.Salary.String()
	case *domain.HourlyClassification:
		w.ClassificationKind = "Hourly"
		w.HourlyRate = c.HourlyRate.String()
		for _, tc := range c.TimeCards {
			w.TimeCards = append(w.TimeCards, timeCardWire{Date: tc.Date.Format(dateLayout), Hours: tc.Hours.String()})
		}
	case *domain.CommissionedClassification:
		w.ClassificationKind = "Commissioned"
		w.Salary = c.Salary.String()
		w.CommissionRate = c.CommissionRate.String()
		for _, sr := range c.SalesReceipts {
			w.SalesReceipts = append(w.SalesReceipts, salesReceiptWire{Date: sr.Date.Format(dateLayout), Amount: sr.Amount.String()})
		}
	default:
		return w, fmt.Errorf("gormstore: unknown classification kind %T", c)
	}

	switch emp.Schedule.(type) {
	case domain.MonthlySchedule:
		w.ScheduleKind = "Monthly"
	case domain.WeeklySchedule:
		w.ScheduleKind = "Weekly"
	case domain.BiweeklySchedule:
		w.ScheduleKind = "Biweekly"
	default:
		return w, fmt.Errorf("gormstore: unknown schedule kind %T", emp.Schedule)
	}

	switch m := emp.Method.(type) {
	case domain.HoldMethod:
		w.MethodKind = "Hold"
	case domain.MailMethod:
		w.MethodKind = "Mail"
		w.MethodAddress = m.Address
	case domain.DirectMethod:
		w.MethodKind = "Direct"
		w.MethodBank = m.Bank
		w.MethodAccount = m.Account
	default:
		return w, fmt.Errorf("gormstore: unknown method kind %T", m)
	}

	switch a := emp.Affiliation.(type) {
	case domain.NoAffiliation:
		w.AffiliationKind = "None"
	case *domain.UnionAffiliation:
		w.AffiliationKind = "Union"
		w.MemberID = int64(a.MemberID)
		w.Dues = a.Dues.String()
		for _, sc := range a.ServiceCharges {
			w.ServiceCharges = append(w.ServiceCharges, serviceChargeWire{Date: sc.Date.Format(dateLayout), Amount: sc.Amount.String()})
		}
	default:
		return w, fmt.Errorf("gormstore: unknown affiliation kind %T", a)
	}

	return w, nil
}

func fromWire(w employeeWire) (*domain.Employee, error) {
	emp := &domain.Employee{
		ID:      domain.EmployeeID(w.ID),
		Name:    w.Name,
		Address: w.Address,
	}

	switch w.ClassificationKind {
	case "Salaried":
		salary, err := parseDecimal(w.Salary)
		if err != nil {
			return nil, err
		}
		emp.Classification = domain.NewSalariedClassification(salary)
	case "Hourly":
		rate, err := parseDecimal(w.HourlyRate)
		if err != nil {
			return nil, err
		}
		h := domain.NewHourlyClassification(rate)
		for _, tc := range w.TimeCards {
			date, err := time.Parse(dateLayout, tc.Date)
			if err != nil {
				return nil, err
			}
			hours, err := parseDecimal(tc.Hours)
			if err != nil {
				return nil, err
			}
			h.AddTimeCard(domain.TimeCard{Date: date, Hours: hours})
		}
		emp.Classification = h
	case "Commissioned":
		salary, err := parseDecimal(w.Salary)
		if err != nil {
			return nil, err
		}
		rate, err := parseDecimal(w.CommissionRate)
		if err != nil {
			return nil, err
		}
		c := domain.NewCommissionedClassification(salary, rate)
		for _, sr := range w.SalesReceipts {
			date, err := time.Parse(dateLayout, sr.Date)
			if err != nil {
				return nil, err
			}
			amount, err := parseDecimal(sr.Amount)
			if err != nil {
				return nil, err
			}
			c.AddSalesReceipt(domain.SalesReceipt{Date: date, Amount: amount})
		}
		emp.Classification = c
	default:
		return nil, fmt.Errorf("gormstore: unknown classification kind %q", w.ClassificationKind)
	}

	switch w.ScheduleKind {
	case "Monthly":
		emp.Schedule = domain.MonthlySchedule{}
	case "Weekly":
		emp.Schedule = domain.WeeklySchedule{}
	case "Biweekly":
		emp.Schedule = domain.BiweeklySchedule{}
	default:
		return nil, fmt.Errorf("gormstore: unknown schedule kind %q", w.ScheduleKind)
	}

	switch w.MethodKind {
	case "Hold":
		emp.Method = domain.HoldMethod{}
	case "Mail":
		emp.Method = domain.MailMethod{Address: w.MethodAddress}
	case "Direct":
		emp.Method = domain.DirectMethod{Bank: w.MethodBank, Account: w.MethodAccount}
	default:
		return nil, fmt.Errorf("gormstore: unknown method kind %q", w.MethodKind)
	}

	switch w.AffiliationKind {
	case "None":
		emp.Affiliation = domain.NoAffiliation{}
	case "Union":
		dues, err := parseDecimal(w.Dues)
		if err != nil {
			return nil, err
		}
		u := domain.NewUnionAffiliation(domain.MemberID(w.MemberID), dues)
		for _, sc := range w.ServiceCharges {
			date, err := time.Parse(dateLayout, sc.Date)
			if err != nil {
				return nil, err
			}
			amount, err := parseDecimal(sc.Amount)
			if err != nil {
				return nil, err
			}
			u.AddServiceCharge(domain.ServiceCharge{Date: date, Amount: amount})
		}
		emp.Affiliation = u
	default:
		return nil, fmt.Errorf("gormstore: unknown affiliation kind %q", w.AffiliationKind)
	}

	return emp, nil
}

func marshalEmployee(emp *domain.Employee) (datatypes.JSON, error) {
	w, err := toWire(emp)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func unmarshalEmployee(payload datatypes.JSON) (*domain.Employee, error) {
	var w employeeWire
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, err
	}
	return fromWire(w)
}

type paycheckWire struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	GrossPay   string `json:"gross_pay"`
	Deductions string `json:"deductions"`
	NetPay     string `json:"net_pay"`
}

func marshalPaycheck(pc *domain.Paycheck) (datatypes.JSON, error) {
	w := paycheckWire{
		Start:      pc.Period.Start.Format(dateLayout),
		End:        pc.Period.End.Format(dateLayout),
		GrossPay:   pc.GrossPay.String(),
		Deductions: pc.Deductions.String(),
		NetPay:     pc.NetPay.String(),
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func unmarshalPaycheck(payload datatypes.JSON) (*domain.Paycheck, error) {
	var w paycheckWire
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, err
	}
	start, err := time.Parse(dateLayout, w.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(dateLayout, w.End)
	if err != nil {
		return nil, err
	}
	pc := domain.NewPaycheck(domain.Period{Start: start, End: end})
	gross, err := parseDecimal(w.GrossPay)
	if err != nil {
		return nil, err
	}
	deductions, err := parseDecimal(w.Deductions)
	if err != nil {
		return nil, err
	}
	net, err := parseDecimal(w.NetPay)
	if err != nil {
		return nil, err
	}
	pc.GrossPay = gross
	pc.Deductions = deductions
	pc.NetPay = net
	return pc, nil
}
