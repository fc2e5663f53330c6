package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Scenario names, in reporting order
const (
	ScenarioLow  = "low"
	ScenarioMid  = "mid"
	ScenarioHigh = "high"
)

// CalculationEngine orchestrates the runway calculations for a snapshot
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Evaluate computes every derived figure for the snapshot. The snapshot is not modified and
// the clock is never read; the only failure is a cancelled context.
func (ce *CalculationEngine) Evaluate(ctx context.Context, s domain.Snapshot) (*domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluate snapshot: %w", err)
	}

	ce.Logger.Debugf("evaluating snapshot: age=%d retire=%d life=%d claim=%d investable=%s",
		s.Age, s.RetirementAge, s.ExpectedLife, s.SSAClaimingAge, s.InvestableAssets().StringFixed(2))

	eval := &domain.Evaluation{
		Snapshot:             s,
		InvestableAssets:     s.InvestableAssets(),
		TotalAssets:          s.TotalAssets(),
		TotalLiabilities:     s.TotalLiabilities(),
		NetWorth:             s.NetWorth(),
		NetMonthlyWithdrawal: s.NetMonthlyWithdrawal(),
		BudgetGap:            s.BudgetGap(),
		BenefitMultiplier:    BenefitMultiplier(s.SSAClaimingAge),
		MonthlyBenefit:       MonthlyBenefitAt(s, s.SSAClaimingAge),
		Assumptions:          s.Assumptions(),
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{ScenarioLow, s.ROIScenarios.Low},
		{ScenarioMid, s.ROIScenarios.Mid},
		{ScenarioHigh, s.ROIScenarios.High},
	}
	for _, r := range rates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluate snapshot: %w", err)
		}
		runway := ProjectRunway(s, r.rate)
		sc := domain.ScenarioRunway{
			Name:              r.name,
			ReturnRate:        r.rate,
			RunwayAge:         runway,
			YearsInRetirement: runway - s.RetirementAge,
			ReachedCap:        runway >= s.RetirementAge+MaxWithdrawalYears,
			Solvent:           runway >= s.ExpectedLife,
		}
		ce.Logger.Debugf("scenario %s at %s%%: runway to age %d", sc.Name, r.rate.String(), sc.RunwayAge)
		if !sc.Solvent {
			ce.Logger.Warnf("%s scenario runs out of money at age %d, before expected life %d", sc.Name, sc.RunwayAge, s.ExpectedLife)
		}
		eval.Scenarios = append(eval.Scenarios, sc)
	}

	eval.EndingBalance = ProjectEndingBalance(s)
	eval.Claiming = AnalyzeClaiming(s)
	eval.Trajectory = ProjectTrajectory(s, s.ROIScenarios.Mid)

	if eval.Claiming != nil {
		ce.Logger.Debugf("claiming: now=%d wait=%d break-even=%d crossed=%t",
			eval.Claiming.NowAge, eval.Claiming.WaitAge, eval.Claiming.BreakEven.Age, eval.Claiming.BreakEven.Crossed)
	}
	ce.Logger.Infof("evaluation complete: ending balance %s", eval.EndingBalance.StringFixed(2))

	return eval, nil
}
