// Package driver maps parsed commands to runnable transactions and runs a
// command stream to completion.
package driver

import (
	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/effect"
	"github.com/cutsea110/payroll-core/internal/txn"
	"github.com/cutsea110/payroll-core/internal/usecase"
)

// Transaction is the uniform shape the driver runs: build it, then Run it
// against a context to get a result or a *domain.UsecaseError.
type Transaction = effect.Effect[txn.Ctx, any]

// Build maps a single command to its runnable transaction. There is one
// case per command variant (Command.Kind), matching the factory method per
// command variant.
func Build(cmd command.Command) Transaction {
	switch cmd.Kind {
	case command.KindAddSalaried:
		return eraseResult(usecase.AddSalariedEmployee(cmd.EmployeeID, cmd.Name, cmd.Address, cmd.Salary))
	case command.KindAddHourly:
		return eraseResult(usecase.AddHourlyEmployee(cmd.EmployeeID, cmd.Name, cmd.Address, cmd.HourlyRate))
	case command.KindAddCommissioned:
		return eraseResult(usecase.AddCommissionedEmployee(cmd.EmployeeID, cmd.Name, cmd.Address, cmd.Salary, cmd.CommissionRate))
	case command.KindDelEmp:
		return eraseResult(usecase.DeleteEmployee(cmd.EmployeeID))
	case command.KindTimeCard:
		return eraseResult(usecase.TimeCard(cmd.EmployeeID, cmd.Date, cmd.Hours))
	case command.KindSalesReceipt:
		return eraseResult(usecase.SalesReceipt(cmd.EmployeeID, cmd.Date, cmd.Amount))
	case command.KindServiceCharge:
		return eraseResult(usecase.ServiceCharge(cmd.MemberID, cmd.Date, cmd.Amount))
	case command.KindChgName:
		return eraseResult(usecase.ChangeName(cmd.EmployeeID, cmd.Name))
	case command.KindChgAddress:
		return eraseResult(usecase.ChangeAddress(cmd.EmployeeID, cmd.Address))
	case command.KindChgHourly:
		return eraseResult(usecase.ChangeHourly(cmd.EmployeeID, cmd.HourlyRate))
	case command.KindChgSalaried:
		return eraseResult(usecase.ChangeSalaried(cmd.EmployeeID, cmd.Salary))
	case command.KindChgCommissioned:
		return eraseResult(usecase.ChangeCommissioned(cmd.EmployeeID, cmd.Salary, cmd.CommissionRate))
	case command.KindChgHold:
		return eraseResult(usecase.ChangeHold(cmd.EmployeeID))
	case command.KindChgDirect:
		return eraseResult(usecase.ChangeDirect(cmd.EmployeeID, cmd.Bank, cmd.Account))
	case command.KindChgMail:
		return eraseResult(usecase.ChangeMail(cmd.EmployeeID, cmd.Address))
	case command.KindChgMember:
		return eraseResult(usecase.ChangeMember(cmd.EmployeeID, cmd.MemberID, cmd.Dues))
	case command.KindChgNoMember:
		return eraseResult(usecase.ChangeUnaffiliated(cmd.EmployeeID))
	case command.KindPayday:
		return eraseResult(usecase.Payday(cmd.Date))
	default:
		return effect.Fail[txn.Ctx, any](domain.WrapPortError(domain.KindUpdateEmployeeFailed, errUnknownCommand{cmd.Kind}))
	}
}

type errUnknownCommand struct{ kind command.Kind }

func (e errUnknownCommand) Error() string { return "driver: unknown command kind " + e.kind.String() }

// eraseResult discards a transaction's concrete result type so every
// variant can be run through the same Transaction alias; the driver only
// cares whether execution produced an error.
func eraseResult[A any](e effect.Effect[txn.Ctx, A]) Transaction {
	return effect.Map(e, func(a A) any { return a })
}
