package domain

import (
	"fmt"
	"time"

	"github.com/rpgo/runway-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// Snapshot is the complete financial input record for one projection.
// It is a value type: engine functions receive a copy and never mutate it.
type Snapshot struct {
	Age               int             `yaml:"age" json:"age"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirement_age"`
	ExpectedLife      int             `yaml:"expected_life" json:"expected_life"`
	SSAClaimingAge    int             `yaml:"ssa_claiming_age" json:"ssa_claiming_age"`
	SSAMonthly        decimal.Decimal `yaml:"ssa_monthly" json:"ssa_monthly"` // Monthly benefit at full retirement age (67)
	MonthlyBudget     decimal.Decimal `yaml:"monthly_budget" json:"monthly_budget"`
	MonthlyWithdrawal decimal.Decimal `yaml:"monthly_withdrawal" json:"monthly_withdrawal"` // Gross, pre-tax
	TaxRate           decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`                     // Percent, 0..100
	ROIScenarios      ROIScenarios    `yaml:"roi_scenarios" json:"roi_scenarios"`
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"` // Percent, also drives SS COLA
	Assets            Assets          `yaml:"assets" json:"assets"`
	Liabilities       Liabilities     `yaml:"liabilities" json:"liabilities"`
	LastUpdated       time.Time       `yaml:"last_updated" json:"last_updated"`
}

// ROIScenarios holds the low/mid/high annual return assumptions in percent
type ROIScenarios struct {
	Low  decimal.Decimal `yaml:"low" json:"low"`
	Mid  decimal.Decimal `yaml:"mid" json:"mid"`
	High decimal.Decimal `yaml:"high" json:"high"`
}

// Assets lists the named asset balances. Only the liquid accounts take part in projections;
// Home and Car count toward net worth only.
type Assets struct {
	FourOhOneK  decimal.Decimal `yaml:"four_oh_one_k" json:"four_oh_one_k"`
	IRA         decimal.Decimal `yaml:"ira" json:"ira"`
	CashSavings decimal.Decimal `yaml:"cash_savings" json:"cash_savings"`
	OtherLiquid decimal.Decimal `yaml:"other_liquid" json:"other_liquid"`
	Home        decimal.Decimal `yaml:"home" json:"home"`
	Car         decimal.Decimal `yaml:"car" json:"car"`
}

// Liabilities lists the named debt balances subtracted for net worth
type Liabilities struct {
	Mortgage     decimal.Decimal `yaml:"mortgage" json:"mortgage"`
	AutoLoan     decimal.Decimal `yaml:"auto_loan" json:"auto_loan"`
	CreditCards  decimal.Decimal `yaml:"credit_cards" json:"credit_cards"`
	StudentLoans decimal.Decimal `yaml:"student_loans" json:"student_loans"`
	Other        decimal.Decimal `yaml:"other" json:"other"`
}

// DefaultSnapshot returns the snapshot used on first run and as the base that
// stored or imported records are merged over.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Age:               45,
		RetirementAge:     65,
		ExpectedLife:      90,
		SSAClaimingAge:    67,
		SSAMonthly:        decimal.NewFromInt(3000),
		MonthlyBudget:     decimal.NewFromInt(4000),
		MonthlyWithdrawal: decimal.NewFromInt(3000),
		TaxRate:           decimal.NewFromInt(12),
		ROIScenarios: ROIScenarios{
			Low:  decimal.NewFromInt(3),
			Mid:  decimal.NewFromInt(5),
			High: decimal.NewFromInt(7),
		},
		InflationRate: decimal.NewFromInt(3),
		Assets: Assets{
			FourOhOneK:  decimal.NewFromInt(250000),
			IRA:         decimal.NewFromInt(50000),
			CashSavings: decimal.NewFromInt(20000),
			OtherLiquid: decimal.NewFromInt(5000),
			Home:        decimal.NewFromInt(400000),
			Car:         decimal.NewFromInt(25000),
		},
		Liabilities: Liabilities{
			Mortgage:     decimal.NewFromInt(200000),
			AutoLoan:     decimal.NewFromInt(10000),
			CreditCards:  decimal.Zero,
			StudentLoans: decimal.Zero,
			Other:        decimal.Zero,
		},
	}
}

// Investable returns the liquid balances used by the projections
func (a Assets) Investable() decimal.Decimal {
	return a.FourOhOneK.Add(a.IRA).Add(a.CashSavings).Add(a.OtherLiquid)
}

// Total returns every asset balance including illiquid ones
func (a Assets) Total() decimal.Decimal {
	return a.Investable().Add(a.Home).Add(a.Car)
}

// Total returns the sum of all liabilities
func (l Liabilities) Total() decimal.Decimal {
	return l.Mortgage.Add(l.AutoLoan).Add(l.CreditCards).Add(l.StudentLoans).Add(l.Other)
}

// InvestableAssets is the liquid subset of assets that compounds and funds withdrawals
func (s Snapshot) InvestableAssets() decimal.Decimal {
	return s.Assets.Investable()
}

// TotalAssets includes home and car; it is never used in the projections
func (s Snapshot) TotalAssets() decimal.Decimal {
	return s.Assets.Total()
}

// TotalLiabilities returns the sum of all debts
func (s Snapshot) TotalLiabilities() decimal.Decimal {
	return s.Liabilities.Total()
}

// NetWorth returns total assets minus total liabilities
func (s Snapshot) NetWorth() decimal.Decimal {
	return s.TotalAssets().Sub(s.TotalLiabilities())
}

// AnnualWithdrawal returns the gross withdrawal target for one year in today's dollars
func (s Snapshot) AnnualWithdrawal() decimal.Decimal {
	return money.Annual(s.MonthlyWithdrawal)
}

// NetMonthlyWithdrawal returns the monthly withdrawal after the flat tax rate
func (s Snapshot) NetMonthlyWithdrawal() decimal.Decimal {
	return money.ApplyTaxRate(s.MonthlyWithdrawal, s.TaxRate)
}

// BudgetGap returns the after-tax withdrawal minus the monthly budget.
// A negative gap means the withdrawal does not cover planned spending.
func (s Snapshot) BudgetGap() decimal.Decimal {
	return s.NetMonthlyWithdrawal().Sub(s.MonthlyBudget)
}

// YearsToRetirement returns the accumulation span, zero when retirement is not in the future
func (s Snapshot) YearsToRetirement() int {
	if s.RetirementAge <= s.Age {
		return 0
	}
	return s.RetirementAge - s.Age
}

// Equal reports structural equality of every field
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Age == o.Age &&
		s.RetirementAge == o.RetirementAge &&
		s.ExpectedLife == o.ExpectedLife &&
		s.SSAClaimingAge == o.SSAClaimingAge &&
		s.SSAMonthly.Equal(o.SSAMonthly) &&
		s.MonthlyBudget.Equal(o.MonthlyBudget) &&
		s.MonthlyWithdrawal.Equal(o.MonthlyWithdrawal) &&
		s.TaxRate.Equal(o.TaxRate) &&
		s.ROIScenarios.Low.Equal(o.ROIScenarios.Low) &&
		s.ROIScenarios.Mid.Equal(o.ROIScenarios.Mid) &&
		s.ROIScenarios.High.Equal(o.ROIScenarios.High) &&
		s.InflationRate.Equal(o.InflationRate) &&
		s.Assets.equal(o.Assets) &&
		s.Liabilities.equal(o.Liabilities) &&
		s.LastUpdated.Equal(o.LastUpdated)
}

func (a Assets) equal(o Assets) bool {
	return a.FourOhOneK.Equal(o.FourOhOneK) &&
		a.IRA.Equal(o.IRA) &&
		a.CashSavings.Equal(o.CashSavings) &&
		a.OtherLiquid.Equal(o.OtherLiquid) &&
		a.Home.Equal(o.Home) &&
		a.Car.Equal(o.Car)
}

func (l Liabilities) equal(o Liabilities) bool {
	return l.Mortgage.Equal(o.Mortgage) &&
		l.AutoLoan.Equal(o.AutoLoan) &&
		l.CreditCards.Equal(o.CreditCards) &&
		l.StudentLoans.Equal(o.StudentLoans) &&
		l.Other.Equal(o.Other)
}

// Assumptions lists the economic assumptions behind a projection for report footers
func (s Snapshot) Assumptions() []string {
	return []string{
		fmt.Sprintf("Returns: %s%% low / %s%% mid / %s%% high, compounded annually",
			s.ROIScenarios.Low.String(), s.ROIScenarios.Mid.String(), s.ROIScenarios.High.String()),
		fmt.Sprintf("Inflation: %s%% per year on withdrawals and Social Security (COLA from today)", s.InflationRate.String()),
		fmt.Sprintf("Social Security: $%s/month at 67, claimed at %d", s.SSAMonthly.StringFixed(2), s.SSAClaimingAge),
		fmt.Sprintf("Flat tax on withdrawals: %s%%", s.TaxRate.String()),
		"Only 401k, IRA, cash savings and other liquid assets fund the runway",
		"Projections stop 50 years after retirement",
	}
}
