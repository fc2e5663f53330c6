package calculation

import (
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenHorizonAge is the last age walked when searching for a claiming break-even
const BreakEvenHorizonAge = 100

// NowClaimAge is the earliest age the person could claim today: their current age clamped
// into the [62, 70] claiming window.
func NowClaimAge(s domain.Snapshot) int {
	age := s.Age
	if age > LatestClaimingAge {
		age = LatestClaimingAge
	}
	if age < EarliestClaimingAge {
		age = EarliestClaimingAge
	}
	return age
}

// CumulativeCash sums the COLA-adjusted benefits received from claimAge up to (not
// including) untilAge. An empty range yields zero.
func CumulativeCash(s domain.Snapshot, claimAge, untilAge int) decimal.Decimal {
	total := decimal.Zero
	for age := claimAge; age < untilAge; age++ {
		total = total.Add(AnnualBenefitAtAge(s, claimAge, age))
	}
	return total
}

// FindBreakEven walks cumulative income for claiming now versus waiting until the planned
// claiming age and returns the first age at which waiting has paid out strictly more.
// The second result is false when waiting is not later than claiming now.
func FindBreakEven(s domain.Snapshot) (domain.BreakEven, bool) {
	now := NowClaimAge(s)
	wait := s.SSAClaimingAge
	if wait <= now {
		return domain.BreakEven{}, false
	}

	nowTotal, waitTotal := decimal.Zero, decimal.Zero
	for age := now; age <= BreakEvenHorizonAge; age++ {
		nowTotal = nowTotal.Add(AnnualBenefitAtAge(s, now, age))
		if age >= wait {
			waitTotal = waitTotal.Add(AnnualBenefitAtAge(s, wait, age))
		}
		if waitTotal.GreaterThan(nowTotal) {
			return domain.BreakEven{Age: age, Crossed: true}, true
		}
	}
	return domain.BreakEven{Age: BreakEvenHorizonAge, Crossed: false}, true
}

// AnalyzeClaiming compares claiming now against waiting. It returns nil when there is no
// later age to wait for.
func AnalyzeClaiming(s domain.Snapshot) *domain.ClaimingAnalysis {
	be, ok := FindBreakEven(s)
	if !ok {
		return nil
	}
	now := NowClaimAge(s)
	wait := s.SSAClaimingAge

	return &domain.ClaimingAnalysis{
		NowAge:        now,
		WaitAge:       wait,
		NowMonthly:    MonthlyBenefitAt(s, now),
		WaitMonthly:   MonthlyBenefitAt(s, wait),
		ForgoneIncome: CumulativeCash(s, now, wait),
		BreakEven:     be,
		WorthWaiting:  s.ExpectedLife > be.Age,
	}
}
