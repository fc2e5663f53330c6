package calculation

import (
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// MaxWithdrawalYears is the hard cap on simulated years after retirement. It bounds every
// projection regardless of expected life or how extreme the return rate is.
const MaxWithdrawalYears = 50

// simulation carries the investable balance and the inflating withdrawal target through
// the accumulation and withdrawal phases.
type simulation struct {
	snapshot   domain.Snapshot
	growth     decimal.Decimal // 1 + return rate
	inflation  decimal.Decimal // 1 + inflation rate
	balance    decimal.Decimal
	withdrawal decimal.Decimal // annual, inflated to the current simulated year
}

// newSimulation compounds investable assets from today until retirement while the annual
// withdrawal target inflates alongside. When record is non-nil each accumulation year is
// appended to it.
func newSimulation(s domain.Snapshot, returnRatePercent decimal.Decimal, record *[]domain.YearBalance) *simulation {
	sim := &simulation{
		snapshot:   s,
		growth:     money.GrowthFactor(returnRatePercent),
		inflation:  money.GrowthFactor(s.InflationRate),
		balance:    s.InvestableAssets(),
		withdrawal: s.AnnualWithdrawal(),
	}

	for age := s.Age; age < s.RetirementAge; age++ {
		begin := sim.balance
		sim.balance = begin.Mul(sim.growth)
		sim.withdrawal = sim.withdrawal.Mul(sim.inflation)
		if record != nil {
			*record = append(*record, domain.YearBalance{
				Age:              age,
				Phase:            domain.PhaseAccumulation,
				BeginningBalance: begin,
				Growth:           sim.balance.Sub(begin),
				SocialSecurity:   decimal.Zero,
				Withdrawal:       decimal.Zero,
				EndingBalance:    sim.balance,
			})
		}
	}
	return sim
}

// step simulates one retirement year at the given age: growth, then Social Security once
// claimed, then the withdrawal. The withdrawal target inflates every year whether or not
// benefits have started.
func (sim *simulation) step(age int) domain.YearBalance {
	s := sim.snapshot
	begin := sim.balance
	grown := begin.Mul(sim.growth)

	ss := decimal.Zero
	if age >= s.SSAClaimingAge {
		ss = AnnualBenefitAtAge(s, s.SSAClaimingAge, age)
	}

	withdrawal := sim.withdrawal
	sim.balance = grown.Add(ss).Sub(withdrawal)
	sim.withdrawal = withdrawal.Mul(sim.inflation)

	return domain.YearBalance{
		Age:              age,
		Phase:            domain.PhaseWithdrawal,
		BeginningBalance: begin,
		Growth:           grown.Sub(begin),
		SocialSecurity:   ss,
		Withdrawal:       withdrawal,
		EndingBalance:    sim.balance,
	}
}

// ProjectRunway returns the age at which investable assets first fall to zero or below when
// compounding at returnRatePercent. If they last the whole simulation the result is
// RetirementAge + MaxWithdrawalYears.
func ProjectRunway(s domain.Snapshot, returnRatePercent decimal.Decimal) int {
	sim := newSimulation(s, returnRatePercent, nil)
	for year := 0; year < MaxWithdrawalYears; year++ {
		age := s.RetirementAge + year
		if sim.step(age).IsDepleted() {
			return age
		}
	}
	return s.RetirementAge + MaxWithdrawalYears
}

// ProjectTrajectory returns the year-by-year balances behind ProjectRunway: every
// accumulation year followed by retirement years up to and including the depleting year,
// or until the simulation cap.
func ProjectTrajectory(s domain.Snapshot, returnRatePercent decimal.Decimal) []domain.YearBalance {
	rows := make([]domain.YearBalance, 0, s.YearsToRetirement()+MaxWithdrawalYears)
	sim := newSimulation(s, returnRatePercent, &rows)
	for year := 0; year < MaxWithdrawalYears; year++ {
		row := sim.step(s.RetirementAge + year)
		rows = append(rows, row)
		if row.IsDepleted() {
			break
		}
	}
	return rows
}

// ProjectEndingBalance returns the investable balance at expected life under the mid return
// scenario. A balance that turns negative at any point reports zero.
func ProjectEndingBalance(s domain.Snapshot) decimal.Decimal {
	sim := newSimulation(s, s.ROIScenarios.Mid, nil)

	years := s.ExpectedLife - s.RetirementAge
	if years > MaxWithdrawalYears {
		years = MaxWithdrawalYears
	}
	for year := 0; year < years; year++ {
		if sim.step(s.RetirementAge + year).EndingBalance.IsNegative() {
			return decimal.Zero
		}
	}
	if sim.balance.IsNegative() {
		return decimal.Zero
	}
	return sim.balance
}
