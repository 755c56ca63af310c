package command_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/domain"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParse_AddEmpVariants(t *testing.T) {
	script := `
AddEmp 1 "Bob" "Home" S 1000.0
AddEmp 2 "Bill" "Home" H 15.25
AddEmp 3 "Carl" "Home" C 1000.0 0.1
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)
	assert.Len(t, cmds, 3)

	assert.Equal(t, command.KindAddSalaried, cmds[0].Kind)
	assert.Equal(t, domain.EmployeeID(1), cmds[0].EmployeeID)
	assert.Equal(t, "Bob", cmds[0].Name)
	assert.Equal(t, "Home", cmds[0].Address)
	assert.True(t, cmds[0].Salary.Equal(decimal.NewFromFloat(1000.0)))

	assert.Equal(t, command.KindAddHourly, cmds[1].Kind)
	assert.True(t, cmds[1].HourlyRate.Equal(decimal.NewFromFloat(15.25)))

	assert.Equal(t, command.KindAddCommissioned, cmds[2].Kind)
	assert.True(t, cmds[2].Salary.Equal(decimal.NewFromFloat(1000.0)))
	assert.True(t, cmds[2].CommissionRate.Equal(decimal.NewFromFloat(0.1)))
}

func TestParse_CommentsAndBlankLinesSkipped(t *testing.T) {
	script := `
# a comment line

AddEmp 1 "Bob" "Home" S 1000.0  # trailing comment
DelEmp 1
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)
	assert.Len(t, cmds, 2)
	assert.Equal(t, command.KindDelEmp, cmds[1].Kind)
	assert.Equal(t, domain.EmployeeID(1), cmds[1].EmployeeID)
}

func TestParse_TimeCardSalesReceiptServiceCharge(t *testing.T) {
	script := `
TimeCard 2 2024-07-26 10.0
SalesReceipt 3 2024-07-26 500.0
ServiceCharge 10 2024-08-09 19.40
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)
	assert.Len(t, cmds, 3)

	assert.Equal(t, command.KindTimeCard, cmds[0].Kind)
	assert.Equal(t, domain.EmployeeID(2), cmds[0].EmployeeID)
	assert.True(t, cmds[0].Date.Equal(mustDate("2024-07-26")))
	assert.True(t, cmds[0].Hours.Equal(decimal.NewFromFloat(10.0)))

	assert.Equal(t, command.KindSalesReceipt, cmds[1].Kind)
	assert.True(t, cmds[1].Amount.Equal(decimal.NewFromFloat(500.0)))

	assert.Equal(t, command.KindServiceCharge, cmds[2].Kind)
	assert.Equal(t, domain.MemberID(10), cmds[2].MemberID)
	assert.True(t, cmds[2].Amount.Equal(decimal.NewFromFloat(19.40)))
}

func TestParse_ChgEmpVariants(t *testing.T) {
	script := `
ChgEmp 1 Name "Robert"
ChgEmp 1 Address "New Home"
ChgEmp 1 Hourly 16.0
ChgEmp 1 Salaried 3000
ChgEmp 1 Commissioned 1000 0.1
ChgEmp 1 Hold
ChgEmp 1 Direct "First Bank" "12345"
ChgEmp 1 Mail "PO Box 1"
ChgEmp 1 Member 10 Dues 9.42
ChgEmp 1 NoMember
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)
	assert.Len(t, cmds, 10)

	kinds := make([]command.Kind, len(cmds))
	for i, c := range cmds {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []command.Kind{
		command.KindChgName,
		command.KindChgAddress,
		command.KindChgHourly,
		command.KindChgSalaried,
		command.KindChgCommissioned,
		command.KindChgHold,
		command.KindChgDirect,
		command.KindChgMail,
		command.KindChgMember,
		command.KindChgNoMember,
	}, kinds)

	assert.Equal(t, "Robert", cmds[0].Name)
	assert.Equal(t, "New Home", cmds[1].Address)
	assert.Equal(t, "First Bank", cmds[6].Bank)
	assert.Equal(t, "12345", cmds[6].Account)
	assert.Equal(t, domain.MemberID(10), cmds[8].MemberID)
	assert.True(t, cmds[8].Dues.Equal(decimal.NewFromFloat(9.42)))
}

func TestParse_Payday(t *testing.T) {
	cmds, err := command.Parse("Payday 2024-07-31")
	assert.NoError(t, err)
	assert.Len(t, cmds, 1)
	assert.Equal(t, command.KindPayday, cmds[0].Kind)
	assert.True(t, cmds[0].Date.Equal(mustDate("2024-07-31")))
}

// Malformed input degrades to an empty command list — a testable property.
func TestParse_MalformedInputDegradesToEmpty(t *testing.T) {
	script := `
AddEmp 1 "Bob" "Home" S 1000.0
AddEmp not-a-number "Bill" "Home" S 1000.0
`
	cmds, err := command.Parse(script)
	assert.Error(t, err)
	assert.Nil(t, cmds)

	var parseErr *command.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestParse_UnterminatedQuoteFails(t *testing.T) {
	cmds, err := command.Parse(`AddEmp 1 "Bob" "Home S 1000.0`)
	assert.Error(t, err)
	assert.Nil(t, cmds)
}

func TestParse_UnknownCommandFails(t *testing.T) {
	cmds, err := command.Parse("Frobnicate 1")
	assert.Error(t, err)
	assert.Nil(t, cmds)
}
