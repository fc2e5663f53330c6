package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the console summary followed by the year-by-year
// mid-scenario trajectory.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(e *domain.Evaluation) ([]byte, error) {
	var buf bytes.Buffer
	writeConsoleSummary(&buf, e)
	writeTrajectory(&buf, e)
	writeAssumptions(&buf, e)
	return buf.Bytes(), nil
}

func writeTrajectory(buf *bytes.Buffer, e *domain.Evaluation) {
	rows := make([][]string, 0, len(e.Trajectory)+1)
	retired := false
	for _, y := range e.Trajectory {
		if y.Phase == domain.PhaseWithdrawal && !retired {
			retired = true
			if len(rows) > 0 {
				rows = append(rows, []string{"---"})
			}
		}
		rows = append(rows, []string{
			intToString(y.Age),
			FormatWholeCurrency(y.BeginningBalance),
			FormatWholeCurrency(y.Growth),
			FormatWholeCurrency(y.SocialSecurity),
			FormatWholeCurrency(y.Withdrawal),
			FormatWholeCurrency(y.EndingBalance),
		})
	}

	title := "Year by year (mid returns)"
	if sc, ok := e.Scenario("mid"); ok {
		title = fmt.Sprintf("Year by year (mid returns, %s)", FormatPercentage(sc.ReturnRate))
	}
	fmt.Fprint(buf, RenderTable(Table{
		Title:   title,
		Headers: []string{"Age", "Start", "Growth", "Social Security", "Withdrawal", "End"},
		Rows:    rows,
	}))
	fmt.Fprintln(buf)
}
