package output

import (
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// Outlook is the headline verdict shown at the top of reports.
type Outlook struct {
	Headline  string
	Shortfall bool // at least one scenario runs out before expected life
	Weakest   domain.ScenarioRunway
	Solvent   int
	Total     int
}

// AnalyzeRunway summarizes the scenarios into a single verdict.
// Extracted from the formatters so it can be tested on its own.
func AnalyzeRunway(e *domain.Evaluation) Outlook {
	if e == nil || len(e.Scenarios) == 0 {
		return Outlook{Headline: "No scenarios evaluated"}
	}

	out := Outlook{Weakest: e.Scenarios[0], Total: len(e.Scenarios)}
	for _, sc := range e.Scenarios {
		if sc.Solvent {
			out.Solvent++
		}
		if sc.RunwayAge < out.Weakest.RunwayAge {
			out.Weakest = sc
		}
	}
	out.Shortfall = out.Solvent < out.Total

	life := e.Snapshot.ExpectedLife
	switch {
	case !out.Shortfall:
		out.Headline = fmt.Sprintf("Savings outlast expected life (%d) in every scenario", life)
	case out.Solvent == 0:
		out.Headline = fmt.Sprintf("Savings run out before age %d in every scenario, as early as %d (%s returns)",
			life, out.Weakest.RunwayAge, out.Weakest.Name)
	default:
		out.Headline = fmt.Sprintf("Shortfall in %d of %d scenarios: %s returns run out at age %d",
			out.Total-out.Solvent, out.Total, out.Weakest.Name, out.Weakest.RunwayAge)
	}
	return out
}
