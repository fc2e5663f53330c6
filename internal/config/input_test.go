package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeTemp(t, "snapshot.yaml", "age: 52\n"+
		"retirement_age: 62\n"+
		"ssa_claiming_age: 70\n"+
		"monthly_withdrawal: 4500\n"+
		"roi_scenarios:\n"+
		"  low: 2.5\n"+
		"assets:\n"+
		"  ira: 75000\n")

	parser := NewInputParser()
	s, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, 52, s.Age)
	assert.Equal(t, 62, s.RetirementAge)
	assert.Equal(t, 70, s.SSAClaimingAge)
	assert.True(t, s.MonthlyWithdrawal.Equal(decimal.NewFromInt(4500)))
	assert.True(t, s.ROIScenarios.Low.Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, s.Assets.IRA.Equal(decimal.NewFromInt(75000)))
}

func TestLoadFromFile_MissingFieldsTakeDefaults(t *testing.T) {
	path := writeTemp(t, "partial.yaml", "assets:\n  ira: 75000\nroi_scenarios:\n  mid: 6\n")

	s, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	def := domain.DefaultSnapshot()
	assert.Equal(t, def.Age, s.Age)
	assert.True(t, s.Assets.FourOhOneK.Equal(def.Assets.FourOhOneK), "sibling asset keeps its default")
	assert.True(t, s.ROIScenarios.Low.Equal(def.ROIScenarios.Low))
	assert.True(t, s.ROIScenarios.High.Equal(def.ROIScenarios.High))
	assert.True(t, s.ROIScenarios.Mid.Equal(decimal.NewFromInt(6)))
	assert.True(t, s.Liabilities.Mortgage.Equal(def.Liabilities.Mortgage))
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTemp(t, "snapshot.json", `{"age": 50, "ssa_monthly": 2750.5, "liabilities": {"mortgage": 0}}`)

	s, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, s.Age)
	assert.Equal(t, "2750.50", s.SSAMonthly.StringFixed(2))
	assert.True(t, s.Liabilities.Mortgage.IsZero())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	s, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "bad.yaml", "assets:\n\tira: 1\n")

	s, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	path := writeTemp(t, "invalid.yaml", "ssa_claiming_age: 75\n")

	s, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "snapshot validation failed")
	assert.Contains(t, err.Error(), "between 62 and 70")
}

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.Snapshot)
		wantErr string
	}{
		{"default", func(s *domain.Snapshot) {}, ""},
		{"negative age", func(s *domain.Snapshot) { s.Age = -1 }, "age cannot be negative"},
		{"negative retirement age", func(s *domain.Snapshot) { s.RetirementAge = -1 }, "retirement age cannot be negative"},
		{"negative expected life", func(s *domain.Snapshot) { s.ExpectedLife = -3 }, "expected life cannot be negative"},
		{"claiming too early", func(s *domain.Snapshot) { s.SSAClaimingAge = 61 }, "between 62 and 70"},
		{"tax of 100", func(s *domain.Snapshot) { s.TaxRate = decimal.NewFromInt(100) }, "tax rate"},
		{"negative tax", func(s *domain.Snapshot) { s.TaxRate = decimal.NewFromInt(-1) }, "tax rate"},
		{"negative asset", func(s *domain.Snapshot) { s.Assets.Car = decimal.NewFromInt(-5) }, "assets.car cannot be negative"},
		{"negative liability", func(s *domain.Snapshot) { s.Liabilities.Other = decimal.NewFromInt(-5) }, "liabilities.other cannot be negative"},
		{"total loss return", func(s *domain.Snapshot) { s.ROIScenarios.Low = decimal.NewFromInt(-100) }, "roi_scenarios.low"},
		{"deflation allowed", func(s *domain.Snapshot) { s.InflationRate = decimal.NewFromInt(-2) }, ""},
		{"retired already", func(s *domain.Snapshot) { s.Age = 80 }, ""},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSnapshot()
			tt.mutate(&s)
			err := parser.ValidateSnapshot(&s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	s := parser.CreateExampleSnapshot()
	s.TaxRate = decimal.NewFromFloat(22.5)
	s.LastUpdated = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "nested", "snapshot.yaml")
	require.NoError(t, parser.SaveToFile(path, s))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(s))
}

func TestCreateExampleSnapshot(t *testing.T) {
	s := NewInputParser().CreateExampleSnapshot()
	assert.True(t, s.Equal(domain.DefaultSnapshot()))
	assert.NoError(t, NewInputParser().ValidateSnapshot(&s))
}
