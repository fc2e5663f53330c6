package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of snapshot files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML or JSON file. Fields missing from the file keep
// their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	snapshot, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return snapshot, nil
}

// Parse decodes and validates a snapshot document over the defaults
func (ip *InputParser) Parse(data []byte) (*domain.Snapshot, error) {
	snapshot := domain.DefaultSnapshot()
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSnapshot(&snapshot); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}

	return &snapshot, nil
}

// SaveToFile writes the snapshot as YAML, creating parent directories as needed
func (ip *InputParser) SaveToFile(filename string, snapshot domain.Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateSnapshot checks a snapshot read from a file. The engine itself accepts any
// snapshot; this only rejects values no person could mean.
func (ip *InputParser) ValidateSnapshot(s *domain.Snapshot) error {
	if s.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if s.RetirementAge < 0 {
		return fmt.Errorf("retirement age cannot be negative")
	}
	if s.ExpectedLife < 0 {
		return fmt.Errorf("expected life cannot be negative")
	}
	if s.SSAClaimingAge < 62 || s.SSAClaimingAge > 70 {
		return fmt.Errorf("social security claiming age must be between 62 and 70, got %d", s.SSAClaimingAge)
	}

	if s.TaxRate.LessThan(decimal.Zero) || s.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("tax rate must be between 0%% and 100%%, got %s%%", s.TaxRate.String())
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"ssa_monthly", s.SSAMonthly},
		{"monthly_budget", s.MonthlyBudget},
		{"monthly_withdrawal", s.MonthlyWithdrawal},
		{"assets.four_oh_one_k", s.Assets.FourOhOneK},
		{"assets.ira", s.Assets.IRA},
		{"assets.cash_savings", s.Assets.CashSavings},
		{"assets.other_liquid", s.Assets.OtherLiquid},
		{"assets.home", s.Assets.Home},
		{"assets.car", s.Assets.Car},
		{"liabilities.mortgage", s.Liabilities.Mortgage},
		{"liabilities.auto_loan", s.Liabilities.AutoLoan},
		{"liabilities.credit_cards", s.Liabilities.CreditCards},
		{"liabilities.student_loans", s.Liabilities.StudentLoans},
		{"liabilities.other", s.Liabilities.Other},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", a.name, a.value.String())
		}
	}

	floor := decimal.NewFromInt(-100)
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"roi_scenarios.low", s.ROIScenarios.Low},
		{"roi_scenarios.mid", s.ROIScenarios.Mid},
		{"roi_scenarios.high", s.ROIScenarios.High},
		{"inflation_rate", s.InflationRate},
	}
	for _, r := range rates {
		if r.value.LessThanOrEqual(floor) {
			return fmt.Errorf("%s must be greater than -100%%, got %s%%", r.name, r.value.String())
		}
	}

	return nil
}

// CreateExampleSnapshot creates an example snapshot for testing and first runs
func (ip *InputParser) CreateExampleSnapshot() domain.Snapshot {
	return domain.DefaultSnapshot()
}
