package output

import (
	"testing"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func evaluationWith(life int, runways ...int) *domain.Evaluation {
	e := &domain.Evaluation{Snapshot: domain.DefaultSnapshot()}
	e.Snapshot.ExpectedLife = life
	names := []string{"low", "mid", "high"}
	for i, age := range runways {
		e.Scenarios = append(e.Scenarios, domain.ScenarioRunway{
			Name:      names[i%len(names)],
			RunwayAge: age,
			Solvent:   age >= life,
		})
	}
	return e
}

func TestAnalyzeRunway(t *testing.T) {
	tests := []struct {
		name      string
		eval      *domain.Evaluation
		shortfall bool
		weakest   string
		headline  string
	}{
		{"all solvent", evaluationWith(90, 115, 115, 115), false, "low", "Savings outlast expected life (90) in every scenario"},
		{"all short", evaluationWith(90, 71, 74, 83), true, "low", "Savings run out before age 90 in every scenario, as early as 71 (low returns)"},
		{"mixed", evaluationWith(80, 71, 85, 92), true, "low", "Shortfall in 1 of 3 scenarios: low returns run out at age 71"},
		{"empty", &domain.Evaluation{}, false, "", "No scenarios evaluated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := AnalyzeRunway(tt.eval)
			assert.Equal(t, tt.shortfall, out.Shortfall)
			assert.Equal(t, tt.weakest, out.Weakest.Name)
			assert.Equal(t, tt.headline, out.Headline)
		})
	}

	assert.Equal(t, "No scenarios evaluated", AnalyzeRunway(nil).Headline)
}
