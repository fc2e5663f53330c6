package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSnapshotTotals(t *testing.T) {
	s := DefaultSnapshot()

	assert.True(t, s.InvestableAssets().Equal(decimal.NewFromInt(325000)), "investable: %s", s.InvestableAssets())
	assert.True(t, s.TotalAssets().Equal(decimal.NewFromInt(750000)), "total: %s", s.TotalAssets())
	assert.True(t, s.TotalLiabilities().Equal(decimal.NewFromInt(210000)))
	assert.True(t, s.NetWorth().Equal(decimal.NewFromInt(540000)))
	assert.True(t, s.AnnualWithdrawal().Equal(decimal.NewFromInt(36000)))
}

func TestInvestableExcludesIlliquidAssets(t *testing.T) {
	s := DefaultSnapshot()
	s.Assets.Home = decimal.NewFromInt(1000000)
	s.Assets.Car = decimal.NewFromInt(80000)

	assert.True(t, s.InvestableAssets().Equal(decimal.NewFromInt(325000)))
	assert.True(t, s.TotalAssets().Equal(decimal.NewFromInt(1405000)))
}

func TestNetWithdrawalAndBudgetGap(t *testing.T) {
	s := DefaultSnapshot()
	s.MonthlyWithdrawal = decimal.NewFromInt(5000)
	s.TaxRate = decimal.NewFromInt(20)
	s.MonthlyBudget = decimal.NewFromInt(4500)

	assert.Equal(t, "4000.00", s.NetMonthlyWithdrawal().StringFixed(2))
	assert.Equal(t, "-500.00", s.BudgetGap().StringFixed(2))
}

func TestYearsToRetirement(t *testing.T) {
	s := DefaultSnapshot()
	assert.Equal(t, 20, s.YearsToRetirement())

	s.Age = 70
	assert.Equal(t, 0, s.YearsToRetirement())
}

func TestSnapshotEqual(t *testing.T) {
	a := DefaultSnapshot()
	b := DefaultSnapshot()
	assert.True(t, a.Equal(b))

	// Same value, different representation
	b.TaxRate = decimal.RequireFromString("12.000")
	assert.True(t, a.Equal(b))

	b.Liabilities.Other = decimal.NewFromInt(1)
	assert.False(t, a.Equal(b))

	c := DefaultSnapshot()
	c.LastUpdated = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.False(t, a.Equal(c))
}

func TestAssumptionsMentionRates(t *testing.T) {
	lines := DefaultSnapshot().Assumptions()
	assert.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "3% low / 5% mid / 7% high")
	assert.Contains(t, lines[1], "Inflation: 3%")
}
