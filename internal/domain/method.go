package domain

import "fmt"

// Delivery is the side-effect record produced by PaymentMethod.Pay. This
// package never transmits it anywhere; callers (cmd/payctl, the HTTP layer)
// may log or surface it.
type Delivery struct {
	EmployeeID EmployeeID
	Line       string
}

// PaymentMethod is the polymorphic aspect answering "how is this employee
// paid."
type PaymentMethod interface {
	Pay(id EmployeeID, pc *Paycheck) Delivery
	Kind() string
}

// HoldMethod is the default method assigned to every new employee.
type HoldMethod struct{}

func (HoldMethod) Pay(id EmployeeID, pc *Paycheck) Delivery {
	return Delivery{
		EmployeeID: id,
		Line:       fmt.Sprintf("Hold paycheck for employee %s: net pay %s", id, pc.NetPay.StringFixed(2)),
	}
}

func (HoldMethod) Kind() string { return "Hold" }

// MailMethod delivers the paycheck to a postal address.
type MailMethod struct {
	Address string
}

func (m MailMethod) Pay(id EmployeeID, pc *Paycheck) Delivery {
	return Delivery{
		EmployeeID: id,
		Line:       fmt.Sprintf("Mail paycheck to %q for employee %s: net pay %s", m.Address, id, pc.NetPay.StringFixed(2)),
	}
}

func (m MailMethod) Kind() string { return "Mail" }

// DirectMethod deposits the paycheck directly into a bank account.
type DirectMethod struct {
	Bank    string
	Account string
}

func (m DirectMethod) Pay(id EmployeeID, pc *Paycheck) Delivery {
	return Delivery{
		EmployeeID: id,
		Line:       fmt.Sprintf("Direct deposit %s into %s/%s for employee %s", pc.NetPay.StringFixed(2), m.Bank, m.Account, id),
	}
}

func (m DirectMethod) Kind() string { return "Direct" }
