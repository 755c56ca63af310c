// Package usecase specializes the abstract transaction templates in
// internal/txn into the concrete operations a script command can trigger:
// adding employees of each classification, filing time cards and sales
// receipts, editing the profile and the four aspect slots, and running
// payday.
package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/effect"
	"github.com/cutsea110/payroll-core/internal/txn"
)

// AddSalariedEmployee builds a salaried employee on the Monthly schedule.
func AddSalariedEmployee(id domain.EmployeeID, name, address string, salary decimal.Decimal) effect.Effect[txn.Ctx, domain.EmployeeID] {
	emp := domain.NewEmployee(id, name, address, domain.NewSalariedClassification(salary), domain.MonthlySchedule{})
	return txn.AddEmployee(emp)
}

// AddHourlyEmployee builds an hourly employee on the Weekly schedule.
func AddHourlyEmployee(id domain.EmployeeID, name, address string, hourlyRate decimal.Decimal) effect.Effect[txn.Ctx, domain.EmployeeID] {
	emp := domain.NewEmployee(id, name, address, domain.NewHourlyClassification(hourlyRate), domain.WeeklySchedule{})
	return txn.AddEmployee(emp)
}

// AddCommissionedEmployee builds a commissioned employee on the Biweekly
// schedule.
func AddCommissionedEmployee(id domain.EmployeeID, name, address string, salary, commissionRate decimal.Decimal) effect.Effect[txn.Ctx, domain.EmployeeID] {
	emp := domain.NewEmployee(id, name, address, domain.NewCommissionedClassification(salary, commissionRate), domain.BiweeklySchedule{})
	return txn.AddEmployee(emp)
}

// DeleteEmployee removes an employee directly through the port.
func DeleteEmployee(id domain.EmployeeID) effect.Effect[txn.Ctx, txn.Unit] {
	return effect.WithCtx(func(ctx *txn.Ctx) (txn.Unit, error) {
		if err := ctx.Store.Delete(id); err != nil {
			return txn.Unit{}, domain.WrapPortError(domain.KindUnregisterEmployeeFailed, err)
		}
		return txn.Unit{}, nil
	})
}

// TimeCard appends a time card to an hourly employee. Duplicate dates are
// permitted and count independently.
func TimeCard(id domain.EmployeeID, date time.Time, hours decimal.Decimal) txn.Tx {
	return txn.ChangeEmployee(id, func(emp *domain.Employee) error {
		hourly, ok := emp.Classification.(*domain.HourlyClassification)
		if !ok {
			return domain.NewContextError(domain.KindNotHourlySalary, id.String())
		}
		hourly.AddTimeCard(domain.TimeCard{Date: date, Hours: hours})
		return nil
	})
}

// SalesReceipt appends a sales receipt to a commissioned employee.
func SalesReceipt(id domain.EmployeeID, date time.Time, amount decimal.Decimal) txn.Tx {
	return txn.ChangeEmployee(id, func(emp *domain.Employee) error {
		commissioned, ok := emp.Classification.(*domain.CommissionedClassification)
		if !ok {
			return domain.NewContextError(domain.KindNotCommissionedSalary, id.String())
		}
		commissioned.AddSalesReceipt(domain.SalesReceipt{Date: date, Amount: amount})
		return nil
	})
}

// ServiceCharge resolves a member id to an employee through the union
// index, then appends a service charge to that employee's union
// affiliation.
func ServiceCharge(memberID domain.MemberID, date time.Time, amount decimal.Decimal) txn.Tx {
	return effect.WithCtx(func(ctx *txn.Ctx) (txn.Unit, error) {
		empID, err := ctx.Store.FindUnionMember(memberID)
		if err != nil {
			return txn.Unit{}, domain.WrapPortError(domain.KindNotFound, err)
		}
		return txn.ChangeEmployee(empID, func(emp *domain.Employee) error {
			union, ok := emp.Affiliation.(*domain.UnionAffiliation)
			if !ok {
				return domain.NewContextError(domain.KindNotUnionMember, empID.String())
			}
			union.AddServiceCharge(domain.ServiceCharge{Date: date, Amount: amount})
			return nil
		}).Run(ctx)
	})
}

// ChangeName edits the name field.
func ChangeName(id domain.EmployeeID, name string) txn.Tx {
	return txn.ChangeEmployee(id, func(emp *domain.Employee) error {
		emp.Name = name
		return nil
	})
}

// ChangeAddress edits the address field.
func ChangeAddress(id domain.EmployeeID, address string) txn.Tx {
	return txn.ChangeEmployee(id, func(emp *domain.Employee) error {
		emp.Address = address
		return nil
	})
}

// ChangeSalaried switches classification to Salaried and schedule to
// Monthly, discarding any prior hourly or commissioned history.
func ChangeSalaried(id domain.EmployeeID, salary decimal.Decimal) txn.Tx {
	return txn.ChangeClassification(id, domain.NewSalariedClassification(salary), domain.MonthlySchedule{})
}

// ChangeHourly switches classification to Hourly and schedule to Weekly.
func ChangeHourly(id domain.EmployeeID, hourlyRate decimal.Decimal) txn.Tx {
	return txn.ChangeClassification(id, domain.NewHourlyClassification(hourlyRate), domain.WeeklySchedule{})
}

// ChangeCommissioned switches classification to Commissioned and schedule
// to Biweekly.
func ChangeCommissioned(id domain.EmployeeID, salary, commissionRate decimal.Decimal) txn.Tx {
	return txn.ChangeClassification(id, domain.NewCommissionedClassification(salary, commissionRate), domain.BiweeklySchedule{})
}

// ChangeDirect switches payment method to Direct deposit.
func ChangeDirect(id domain.EmployeeID, bank, account string) txn.Tx {
	return txn.ChangeMethod(id, domain.DirectMethod{Bank: bank, Account: account})
}

// ChangeMail switches payment method to Mail.
func ChangeMail(id domain.EmployeeID, address string) txn.Tx {
	return txn.ChangeMethod(id, domain.MailMethod{Address: address})
}

// ChangeHold switches payment method to Hold.
func ChangeHold(id domain.EmployeeID) txn.Tx {
	return txn.ChangeMethod(id, domain.HoldMethod{})
}

// ChangeMember enrolls the employee under memberID in the union index
// before swapping affiliation to Union. A duplicate member id or an
// employee already enrolled under another member id aborts the whole
// transaction.
func ChangeMember(id domain.EmployeeID, memberID domain.MemberID, dues decimal.Decimal) txn.Tx {
	sideEffect := func(ctx *txn.Ctx, emp *domain.Employee) error {
		if err := ctx.Store.AddUnionMember(memberID, id); err != nil {
			return domain.WrapPortError(domain.KindAddUnionMemberFailed, err)
		}
		return nil
	}
	return txn.ChangeAffiliation(id, sideEffect, domain.NewUnionAffiliation(memberID, dues))
}

// ChangeUnaffiliated removes the employee from the union index and swaps
// affiliation back to None. Reports NotUnionMember if the employee is not
// currently a Union affiliate.
func ChangeUnaffiliated(id domain.EmployeeID) txn.Tx {
	sideEffect := func(ctx *txn.Ctx, emp *domain.Employee) error {
		union, ok := emp.Affiliation.(*domain.UnionAffiliation)
		if !ok {
			return domain.NewContextError(domain.KindNotUnionMember, id.String())
		}
		if err := ctx.Store.RemoveUnionMember(union.MemberID); err != nil {
			return domain.WrapPortError(domain.KindRemoveUnionMemberFailed, err)
		}
		return nil
	}
	return txn.ChangeAffiliation(id, sideEffect, domain.NoAffiliation{})
}

// Payday iterates every employee whose schedule designates payDate as a
// pay date, computes and records a paycheck for each, and returns the
// deliveries produced along the way. A failure on any single employee
// aborts payday with UpdateEmployeeFailed; checks already recorded for
// earlier employees in the same run are not rolled back.
func Payday(payDate time.Time) effect.Effect[txn.Ctx, []domain.Delivery] {
	return effect.WithCtx(func(ctx *txn.Ctx) ([]domain.Delivery, error) {
		employees, err := ctx.Store.GetAll()
		if err != nil {
			return nil, domain.WrapPortError(domain.KindGetAllFailed, err)
		}

		var deliveries []domain.Delivery
		for _, emp := range employees {
			if !emp.Schedule.IsPayDate(payDate) {
				continue
			}
			period := emp.Schedule.PayPeriod(payDate)
			pc := domain.NewPaycheck(period)
			delivery := emp.Payday(pc)

			if err := ctx.Store.Update(emp); err != nil {
				return deliveries, domain.WrapPortError(domain.KindUpdateEmployeeFailed, err)
			}
			if err := ctx.Store.RecordPaycheck(emp.ID, pc); err != nil {
				return deliveries, domain.WrapPortError(domain.KindUpdateEmployeeFailed, err)
			}
			deliveries = append(deliveries, delivery)
		}
		return deliveries, nil
	})
}
