package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/domain"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHourlyClassification_CalculatePay(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		cards  []domain.TimeCard
		period domain.Period
		want   string
	}{
		{
			name: "overtime beyond 8 hours",
			rate: "15.25",
			cards: []domain.TimeCard{
				{Date: mustDate("2024-07-26"), Hours: decimal.NewFromFloat(10.0)},
			},
			period: domain.Period{Start: mustDate("2024-07-20"), End: mustDate("2024-07-26")},
			want:   "167.75",
		},
		{
			name: "exactly 8 hours, no overtime",
			rate: "10",
			cards: []domain.TimeCard{
				{Date: mustDate("2024-07-26"), Hours: decimal.NewFromInt(8)},
			},
			period: domain.Period{Start: mustDate("2024-07-20"), End: mustDate("2024-07-26")},
			want:   "80",
		},
		{
			name: "card outside period contributes nothing",
			rate: "10",
			cards: []domain.TimeCard{
				{Date: mustDate("2024-07-01"), Hours: decimal.NewFromInt(8)},
			},
			period: domain.Period{Start: mustDate("2024-07-20"), End: mustDate("2024-07-26")},
			want:   "0",
		},
		{
			name: "duplicate dates each count independently",
			rate: "10",
			cards: []domain.TimeCard{
				{Date: mustDate("2024-07-26"), Hours: decimal.NewFromInt(4)},
				{Date: mustDate("2024-07-26"), Hours: decimal.NewFromInt(4)},
			},
			period: domain.Period{Start: mustDate("2024-07-20"), End: mustDate("2024-07-26")},
			want:   "80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tt.rate)
			assert.NoError(t, err)
			h := domain.NewHourlyClassification(rate)
			for _, c := range tt.cards {
				h.AddTimeCard(c)
			}
			pc := domain.NewPaycheck(tt.period)
			got := h.CalculatePay(pc)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCommissionedClassification_CalculatePay(t *testing.T) {
	period := domain.Period{Start: mustDate("2024-07-01"), End: mustDate("2024-07-31")}

	c := domain.NewCommissionedClassification(decimal.NewFromInt(1000), decimal.NewFromFloat(0.1))
	c.AddSalesReceipt(domain.SalesReceipt{Date: mustDate("2024-07-15"), Amount: decimal.NewFromInt(1000)})
	c.AddSalesReceipt(domain.SalesReceipt{Date: mustDate("2024-08-01"), Amount: decimal.NewFromInt(5000)})

	pc := domain.NewPaycheck(period)
	got := c.CalculatePay(pc)

	assert.True(t, decimal.NewFromInt(1100).Equal(got), "got %s", got)
}

func TestSalariedClassification_CalculatePay(t *testing.T) {
	s := domain.NewSalariedClassification(decimal.NewFromInt(3000))
	pc := domain.NewPaycheck(domain.Period{Start: mustDate("2024-07-01"), End: mustDate("2024-07-31")})
	assert.True(t, decimal.NewFromInt(3000).Equal(s.CalculatePay(pc)))
}
