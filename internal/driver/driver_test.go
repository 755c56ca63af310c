package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/driver"
	"github.com/cutsea110/payroll-core/internal/store"
	"github.com/cutsea110/payroll-core/internal/txn"
)

func newCtx() *txn.Ctx {
	return &txn.Ctx{Store: store.NewMemoryStore()}
}

// E6 — bad command tolerance: the add succeeds, the time-card command
// reports NotFound, and the driver continues past it.
func TestDriver_LogAndContinue_ToleratesBadCommand(t *testing.T) {
	script := `
AddEmp 1 "Bob" "Home" S 1000.0
TimeCard 99 2024-07-26 8.0
DelEmp 1
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)

	ctx := newCtx()
	d := driver.New(ctx, driver.LogAndContinue, nil)
	err = d.Run(driver.NewSliceSource(cmds))
	assert.NoError(t, err)

	all, err := ctx.Store.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 0)
}

func TestDriver_StopOnFirstFailure_AbortsEarly(t *testing.T) {
	script := `
AddEmp 1 "Bob" "Home" S 1000.0
TimeCard 99 2024-07-26 8.0
DelEmp 1
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)

	ctx := newCtx()
	d := driver.New(ctx, driver.StopOnFirstFailure, nil)
	err = d.Run(driver.NewSliceSource(cmds))
	assert.Error(t, err)

	all, err := ctx.Store.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1, "DelEmp never ran because the driver stopped at TimeCard")
}

func TestDriver_MalformedScriptIsANoOp(t *testing.T) {
	script := `AddEmp not-a-number "Bob" "Home" S 1000.0`
	cmds, err := command.Parse(script)
	assert.Error(t, err)
	assert.Nil(t, cmds)

	ctx := newCtx()
	d := driver.New(ctx, driver.LogAndContinue, nil)
	err = d.Run(driver.NewSliceSource(cmds))
	assert.NoError(t, err)

	all, err := ctx.Store.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 0)
}

func TestDriver_FullScenario(t *testing.T) {
	script := `
AddEmp 2 "Bill" "Home" H 15.25
TimeCard 2 2024-07-26 10.0
Payday 2024-07-26
`
	cmds, err := command.Parse(script)
	assert.NoError(t, err)

	ctx := newCtx()
	d := driver.New(ctx, driver.LogAndContinue, nil)
	err = d.Run(driver.NewSliceSource(cmds))
	assert.NoError(t, err)

	paychecks, err := ctx.Store.Paychecks(2)
	assert.NoError(t, err)
	assert.Len(t, paychecks, 1)
	assert.Equal(t, "167.75", paychecks[0].GrossPay.StringFixed(2))
}
