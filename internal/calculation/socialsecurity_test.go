package calculation

import (
	"testing"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBenefitMultiplier(t *testing.T) {
	tests := []struct {
		claimAge int
		expected string
	}{
		{55, "0.70"},
		{62, "0.70"},
		{63, "0.76"},
		{65, "0.88"},
		{66, "0.94"},
		{67, "1.00"},
		{68, "1.08"},
		{69, "1.16"},
		{70, "1.24"},
		{75, "1.24"},
	}

	for _, tt := range tests {
		got := BenefitMultiplier(tt.claimAge)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
			"age %d: expected %s, got %s", tt.claimAge, tt.expected, got)
	}
}

func TestBenefitMultiplierIsMonotonic(t *testing.T) {
	prev := BenefitMultiplier(50)
	for age := 51; age <= 80; age++ {
		cur := BenefitMultiplier(age)
		assert.True(t, cur.GreaterThanOrEqual(prev), "multiplier decreased at age %d", age)
		prev = cur
	}
}

func TestInterpolateBenefitMultiplier(t *testing.T) {
	assert.Equal(t, "0.85", InterpolateBenefitMultiplier(decimal.NewFromFloat(64.5)).StringFixed(2))
	assert.Equal(t, "1.12", InterpolateBenefitMultiplier(decimal.NewFromFloat(68.5)).StringFixed(2))
	assert.Equal(t, "0.70", InterpolateBenefitMultiplier(decimal.NewFromFloat(61.9)).StringFixed(2))
}

func TestMonthlyBenefitAt(t *testing.T) {
	s := domain.DefaultSnapshot()
	assert.Equal(t, "2100.00", MonthlyBenefitAt(s, 62).StringFixed(2))
	assert.Equal(t, "3000.00", MonthlyBenefitAt(s, 67).StringFixed(2))
	assert.Equal(t, "3720.00", MonthlyBenefitAt(s, 70).StringFixed(2))
}

func TestAnnualBenefitAtAgeCompoundsFromToday(t *testing.T) {
	s := domain.DefaultSnapshot()
	s.SSAMonthly = decimal.NewFromInt(1000)
	s.InflationRate = decimal.NewFromInt(10)
	s.Age = 60

	// 1000 * 12 * 1.00, two years of COLA from age 60
	assert.Equal(t, "14520.00", AnnualBenefitAtAge(s, 67, 62).StringFixed(2))

	// ages before today get no adjustment
	assert.Equal(t, "12000.00", AnnualBenefitAtAge(s, 67, 58).StringFixed(2))

	s.InflationRate = decimal.Zero
	assert.Equal(t, "8400.00", AnnualBenefitAtAge(s, 62, 80).StringFixed(2))
}
