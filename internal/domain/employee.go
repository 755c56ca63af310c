package domain

// Employee is the aggregate root. emp_id is immutable after construction;
// every aspect slot is always populated — new employees start with
// HoldMethod and NoAffiliation.
type Employee struct {
	ID             EmployeeID
	Name           string
	Address        string
	Classification Classification
	Schedule       Schedule
	Method         PaymentMethod
	Affiliation    Affiliation
}

// NewEmployee builds a fresh employee with the canonical HoldMethod and
// NoAffiliation defaults.
func NewEmployee(id EmployeeID, name, address string, classification Classification, schedule Schedule) *Employee {
	return &Employee{
		ID:             id,
		Name:           name,
		Address:        address,
		Classification: classification,
		Schedule:       schedule,
		Method:         HoldMethod{},
		Affiliation:    NoAffiliation{},
	}
}

// Clone returns an owned, independent copy: mutating the clone's time cards,
// sales receipts or service charges never touches the original. Store.Fetch
// always returns a Clone so the in-transaction working copy is disconnected
// from whatever the store is holding internally.
func (e *Employee) Clone() *Employee {
	clone := *e
	clone.Classification = cloneClassification(e.Classification)
	clone.Affiliation = cloneAffiliation(e.Affiliation)
	return &clone
}

func cloneClassification(c Classification) Classification {
	switch v := c.(type) {
	case *SalariedClassification:
		cp := *v
		return &cp
	case *HourlyClassification:
		cp := *v
		cp.TimeCards = append([]TimeCard(nil), v.TimeCards...)
		return &cp
	case *CommissionedClassification:
		cp := *v
		cp.SalesReceipts = append([]SalesReceipt(nil), v.SalesReceipts...)
		return &cp
	default:
		return c
	}
}

func cloneAffiliation(a Affiliation) Affiliation {
	switch v := a.(type) {
	case *UnionAffiliation:
		cp := *v
		cp.ServiceCharges = append([]ServiceCharge(nil), v.ServiceCharges...)
		return &cp
	default:
		return a
	}
}

// Payday runs the classification/affiliation/method triad against pc and
// returns the delivery side effect.
func (e *Employee) Payday(pc *Paycheck) Delivery {
	gross := e.Classification.CalculatePay(pc)
	deductions := e.Affiliation.CalculateDeductions(pc)
	pc.GrossPay = gross
	pc.Deductions = deductions
	pc.NetPay = gross.Sub(deductions)
	return e.Method.Pay(e.ID, pc)
}
