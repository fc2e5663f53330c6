package calculation

import (
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// Claiming ages bounding the benefit curve
const (
	EarliestClaimingAge = 62
	FullRetirementAge   = 67
	LatestClaimingAge   = 70
)

var (
	multiplierAt62 = decimal.NewFromFloat(0.70)
	multiplierAt70 = decimal.NewFromFloat(1.24)
	earlyStep      = decimal.NewFromFloat(0.06) // per year between 62 and 67
	delayedStep    = decimal.NewFromFloat(0.08) // delayed retirement credit per year after 67
)

// BenefitMultiplier returns the payout multiplier for claiming Social Security at claimAge,
// relative to the benefit at full retirement age (67 -> 1.00).
func BenefitMultiplier(claimAge int) decimal.Decimal {
	return InterpolateBenefitMultiplier(decimal.NewFromInt(int64(claimAge)))
}

// InterpolateBenefitMultiplier is BenefitMultiplier for fractional ages.
// Ages outside [62, 70] saturate at the boundary multipliers.
//
//	<= 62      0.70
//	62 .. 67   0.70 + (age-62) * 0.06
//	67 .. 70   1.00 + (age-67) * 0.08
//	>= 70      1.24
func InterpolateBenefitMultiplier(claimAge decimal.Decimal) decimal.Decimal {
	early := decimal.NewFromInt(EarliestClaimingAge)
	fra := decimal.NewFromInt(FullRetirementAge)
	late := decimal.NewFromInt(LatestClaimingAge)

	switch {
	case claimAge.LessThanOrEqual(early):
		return multiplierAt62
	case claimAge.GreaterThanOrEqual(late):
		return multiplierAt70
	case claimAge.LessThan(fra):
		return multiplierAt62.Add(claimAge.Sub(early).Mul(earlyStep))
	default:
		return decimal.NewFromInt(1).Add(claimAge.Sub(fra).Mul(delayedStep))
	}
}

// MonthlyBenefitAt returns the monthly check in today's dollars for claiming at claimAge
func MonthlyBenefitAt(s domain.Snapshot, claimAge int) decimal.Decimal {
	return s.SSAMonthly.Mul(BenefitMultiplier(claimAge))
}

// AnnualBenefitAtAge returns the benefit received during the year the person is atAge when
// claiming at claimAge. COLA compounds from today (the snapshot's current age), not from the
// claiming date; ages before today receive no adjustment.
func AnnualBenefitAtAge(s domain.Snapshot, claimAge, atAge int) decimal.Decimal {
	annual := money.Annual(MonthlyBenefitAt(s, claimAge))
	return money.Compound(annual, s.InflationRate, atAge-s.Age)
}
