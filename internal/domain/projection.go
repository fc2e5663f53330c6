package domain

import (
	"github.com/shopspring/decimal"
)

// Phase identifies which part of the simulation a projected year belongs to
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseWithdrawal   Phase = "withdrawal"
)

// YearBalance represents the investable balance movement for a single simulated year
type YearBalance struct {
	Age              int             `json:"age" yaml:"age"`
	Phase            Phase           `json:"phase" yaml:"phase"`
	BeginningBalance decimal.Decimal `json:"beginning_balance" yaml:"beginning_balance"`
	Growth           decimal.Decimal `json:"growth" yaml:"growth"`
	SocialSecurity   decimal.Decimal `json:"social_security" yaml:"social_security"`
	Withdrawal       decimal.Decimal `json:"withdrawal" yaml:"withdrawal"`
	EndingBalance    decimal.Decimal `json:"ending_balance" yaml:"ending_balance"`
}

// IsDepleted reports whether the year ended with nothing left
func (y YearBalance) IsDepleted() bool {
	return y.EndingBalance.LessThanOrEqual(decimal.Zero)
}

// ScenarioRunway summarizes one return-rate scenario
type ScenarioRunway struct {
	Name              string          `json:"name" yaml:"name"`
	ReturnRate        decimal.Decimal `json:"return_rate" yaml:"return_rate"`
	RunwayAge         int             `json:"runway_age" yaml:"runway_age"`
	YearsInRetirement int             `json:"years_in_retirement" yaml:"years_in_retirement"`
	ReachedCap        bool            `json:"reached_cap" yaml:"reached_cap"` // assets never depleted within the simulation cap
	Solvent           bool            `json:"solvent" yaml:"solvent"`         // runway reaches expected life
}

// BreakEven is the outcome of walking cumulative Social Security income for two claiming ages
type BreakEven struct {
	Age     int  `json:"age" yaml:"age"`
	Crossed bool `json:"crossed" yaml:"crossed"` // false: no crossover before the horizon, Age is the horizon
}

// ClaimingAnalysis compares claiming Social Security now against waiting until the planned claiming age
type ClaimingAnalysis struct {
	NowAge        int             `json:"now_age" yaml:"now_age"`
	WaitAge       int             `json:"wait_age" yaml:"wait_age"`
	NowMonthly    decimal.Decimal `json:"now_monthly" yaml:"now_monthly"`
	WaitMonthly   decimal.Decimal `json:"wait_monthly" yaml:"wait_monthly"`
	ForgoneIncome decimal.Decimal `json:"forgone_income" yaml:"forgone_income"`
	BreakEven     BreakEven       `json:"break_even" yaml:"break_even"`
	WorthWaiting  bool            `json:"worth_waiting" yaml:"worth_waiting"`
}

// Evaluation is everything the engine computes for one snapshot
type Evaluation struct {
	Snapshot             Snapshot          `json:"snapshot" yaml:"snapshot"`
	InvestableAssets     decimal.Decimal   `json:"investable_assets" yaml:"investable_assets"`
	TotalAssets          decimal.Decimal   `json:"total_assets" yaml:"total_assets"`
	TotalLiabilities     decimal.Decimal   `json:"total_liabilities" yaml:"total_liabilities"`
	NetWorth             decimal.Decimal   `json:"net_worth" yaml:"net_worth"`
	NetMonthlyWithdrawal decimal.Decimal   `json:"net_monthly_withdrawal" yaml:"net_monthly_withdrawal"`
	BudgetGap            decimal.Decimal   `json:"budget_gap" yaml:"budget_gap"`
	BenefitMultiplier    decimal.Decimal   `json:"benefit_multiplier" yaml:"benefit_multiplier"`
	MonthlyBenefit       decimal.Decimal   `json:"monthly_benefit" yaml:"monthly_benefit"` // today's dollars at the claiming age
	Scenarios            []ScenarioRunway  `json:"scenarios" yaml:"scenarios"`
	EndingBalance        decimal.Decimal   `json:"ending_balance" yaml:"ending_balance"`
	Claiming             *ClaimingAnalysis `json:"claiming,omitempty" yaml:"claiming,omitempty"`
	Trajectory           []YearBalance     `json:"trajectory" yaml:"trajectory"` // mid scenario
	Assumptions          []string          `json:"assumptions" yaml:"assumptions"`
}

// Scenario returns the scenario with the given name
func (e *Evaluation) Scenario(name string) (ScenarioRunway, bool) {
	for _, sc := range e.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return ScenarioRunway{}, false
}
