package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/domain"
)

func TestUnionAffiliation_CalculateDeductions(t *testing.T) {
	// Biweekly period 2024-07-27..2024-08-09 has two Fridays: 08-02, 08-09.
	period := domain.Period{Start: mustDate("2024-07-27"), End: mustDate("2024-08-09")}

	u := domain.NewUnionAffiliation(1, decimal.RequireFromString("9.42"))
	u.AddServiceCharge(domain.ServiceCharge{Date: mustDate("2024-08-09"), Amount: decimal.RequireFromString("19.40")})
	u.AddServiceCharge(domain.ServiceCharge{Date: mustDate("2024-09-01"), Amount: decimal.RequireFromString("100")})

	pc := domain.NewPaycheck(period)
	got := u.CalculateDeductions(pc)

	assert.True(t, decimal.RequireFromString("38.24").Equal(got), "got %s", got)
}

func TestNoAffiliation_CalculateDeductions(t *testing.T) {
	pc := domain.NewPaycheck(domain.Period{Start: mustDate("2024-07-01"), End: mustDate("2024-07-31")})
	assert.True(t, decimal.Zero.Equal(domain.NoAffiliation{}.CalculateDeductions(pc)))
}
