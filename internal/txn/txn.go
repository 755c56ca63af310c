// Package txn holds the five abstract transaction templates every concrete
// use case specializes: adding an employee, mutating one in place, and the
// three mutate-one-aspect specializations over classification, method and
// affiliation.
package txn

import (
	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/effect"
	"github.com/cutsea110/payroll-core/internal/store"
)

// Ctx is the mutable context every transaction effect runs against. The
// reference store is not itself transactional, so Ctx is just a handle to
// it; a real transactional store would carry a transaction/session value
// here instead.
type Ctx struct {
	Store store.Store
}

// Unit stands in for "no meaningful result," the way a () return does in
// languages with a real unit type.
type Unit struct{}

// Tx is the uniform shape every transaction is run through.
type Tx = effect.Effect[Ctx, Unit]

// AddEmployee inserts a freshly built employee. Any failure is reported as
// RegisterEmployeeFailed.
func AddEmployee(emp *domain.Employee) effect.Effect[Ctx, domain.EmployeeID] {
	return effect.WithCtx(func(ctx *Ctx) (domain.EmployeeID, error) {
		id, err := ctx.Store.Insert(emp)
		if err != nil {
			return 0, domain.WrapPortError(domain.KindRegisterEmployeeFailed, err)
		}
		return id, nil
	})
}

// ChangeEmployee is the basis for every profile and aspect edit: fetch,
// mutate the local copy, write it back. A mutate that returns a non-nil
// error aborts before Update runs; that error is returned as-is, so
// mutate is responsible for wrapping it in a *domain.UsecaseError of the
// right kind.
func ChangeEmployee(id domain.EmployeeID, mutate func(emp *domain.Employee) error) Tx {
	return effect.WithCtx(func(ctx *Ctx) (Unit, error) {
		emp, err := ctx.Store.Fetch(id)
		if err != nil {
			return Unit{}, domain.WrapPortError(domain.KindNotFound, err)
		}
		if err := mutate(emp); err != nil {
			return Unit{}, err
		}
		if err := ctx.Store.Update(emp); err != nil {
			return Unit{}, domain.WrapPortError(domain.KindUpdateEmployeeFailed, err)
		}
		return Unit{}, nil
	})
}

// ChangeClassification assigns classification and schedule together — the
// two are always co-selected.
func ChangeClassification(id domain.EmployeeID, classification domain.Classification, schedule domain.Schedule) Tx {
	return ChangeEmployee(id, func(emp *domain.Employee) error {
		emp.Classification = classification
		emp.Schedule = schedule
		return nil
	})
}

// ChangeMethod replaces the payment method slot only.
func ChangeMethod(id domain.EmployeeID, method domain.PaymentMethod) Tx {
	return ChangeEmployee(id, func(emp *domain.Employee) error {
		emp.Method = method
		return nil
	})
}

// ChangeAffiliation runs sideEffect (typically a union-index update) before
// swapping the affiliation slot. A failing side effect aborts the whole
// transaction before Update is ever reached.
func ChangeAffiliation(id domain.EmployeeID, sideEffect func(ctx *Ctx, emp *domain.Employee) error, affiliation domain.Affiliation) Tx {
	return effect.WithCtx(func(ctx *Ctx) (Unit, error) {
		emp, err := ctx.Store.Fetch(id)
		if err != nil {
			return Unit{}, domain.WrapPortError(domain.KindNotFound, err)
		}
		if err := sideEffect(ctx, emp); err != nil {
			return Unit{}, err
		}
		emp.Affiliation = affiliation
		if err := ctx.Store.Update(emp); err != nil {
			return Unit{}, domain.WrapPortError(domain.KindUpdateEmployeeFailed, err)
		}
		return Unit{}, nil
	})
}
