package calculation

import (
	"testing"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noInflation(ssaMonthly int64, claimAge int) domain.Snapshot {
	s := domain.DefaultSnapshot()
	s.SSAMonthly = decimal.NewFromInt(ssaMonthly)
	s.InflationRate = decimal.Zero
	s.SSAClaimingAge = claimAge
	return s
}

func TestNowClaimAge(t *testing.T) {
	tests := []struct {
		age      int
		expected int
	}{
		{30, 62},
		{62, 62},
		{64, 64},
		{70, 70},
		{78, 70},
	}
	for _, tt := range tests {
		s := domain.DefaultSnapshot()
		s.Age = tt.age
		assert.Equal(t, tt.expected, NowClaimAge(s), "age %d", tt.age)
	}
}

func TestCumulativeCash(t *testing.T) {
	s := noInflation(2000, 70)
	// 8 years at 2000 * 12 * 0.70
	assert.Equal(t, "134400.00", CumulativeCash(s, 62, 70).StringFixed(2))
	assert.True(t, CumulativeCash(s, 70, 62).IsZero(), "empty range")
	assert.True(t, CumulativeCash(s, 67, 67).IsZero())

	withCOLA := domain.DefaultSnapshot()
	assertMoney(t, 221134.85, CumulativeCash(withCOLA, 62, 67))
}

func TestFindBreakEven(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.Snapshot
		expected int
	}{
		{"wait for 70, flat", noInflation(2000, 70), 80},
		{"wait for 67, flat", noInflation(2000, 67), 78},
		{"wait for 63, flat", noInflation(2000, 63), 74},
		{"wait for 67 with COLA", domain.DefaultSnapshot(), 76},
		{"wait for 70 with COLA", func() domain.Snapshot {
			s := domain.DefaultSnapshot()
			s.SSAClaimingAge = 70
			return s
		}(), 78},
		{"already 64, wait for 70", func() domain.Snapshot {
			s := noInflation(2000, 70)
			s.Age = 64
			return s
		}(), 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be, ok := FindBreakEven(tt.snapshot)
			require.True(t, ok)
			assert.True(t, be.Crossed)
			assert.Equal(t, tt.expected, be.Age)
		})
	}
}

func TestFindBreakEvenNoLaterClaimingAge(t *testing.T) {
	s := noInflation(2000, 62)
	_, ok := FindBreakEven(s)
	assert.False(t, ok, "claiming at 62 is claiming now")

	s = noInflation(2000, 67)
	s.Age = 68
	_, ok = FindBreakEven(s)
	assert.False(t, ok, "planned age already passed")

	assert.Nil(t, AnalyzeClaiming(s))
}

func TestFindBreakEvenWithoutBenefit(t *testing.T) {
	be, ok := FindBreakEven(noInflation(0, 70))
	require.True(t, ok)
	assert.False(t, be.Crossed)
	assert.Equal(t, BreakEvenHorizonAge, be.Age)
}

func TestAnalyzeClaiming(t *testing.T) {
	s := domain.DefaultSnapshot()
	a := AnalyzeClaiming(s)
	require.NotNil(t, a)

	assert.Equal(t, 62, a.NowAge)
	assert.Equal(t, 67, a.WaitAge)
	assert.Equal(t, "2100.00", a.NowMonthly.StringFixed(2))
	assert.Equal(t, "3000.00", a.WaitMonthly.StringFixed(2))
	assertMoney(t, 221134.85, a.ForgoneIncome)
	assert.Equal(t, domain.BreakEven{Age: 76, Crossed: true}, a.BreakEven)
	assert.True(t, a.WorthWaiting)

	s.ExpectedLife = 76
	assert.False(t, AnalyzeClaiming(s).WorthWaiting, "must outlive the break-even age")
}

func TestFindBreakEvenNeverBeforeWaitAge(t *testing.T) {
	bases := map[string]domain.Snapshot{
		"with COLA": domain.DefaultSnapshot(),
		"flat":      noInflation(2000, 67),
	}
	for name, base := range bases {
		for claim := 63; claim <= 70; claim++ {
			s := base
			s.SSAClaimingAge = claim
			be, ok := FindBreakEven(s)
			require.True(t, ok, "%s claim %d", name, claim)
			assert.GreaterOrEqual(t, be.Age, claim, "%s claim %d", name, claim)
			assert.LessOrEqual(t, be.Age, BreakEvenHorizonAge, "%s claim %d", name, claim)
		}
	}
}
