package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// ConsoleFormatter renders the runway summary for a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(e *domain.Evaluation) ([]byte, error) {
	var buf bytes.Buffer
	writeConsoleSummary(&buf, e)
	writeAssumptions(&buf, e)
	return buf.Bytes(), nil
}

func writeConsoleSummary(buf *bytes.Buffer, e *domain.Evaluation) {
	s := e.Snapshot

	fmt.Fprintln(buf, RenderTitle("RETIREMENT RUNWAY"))
	outlook := AnalyzeRunway(e)
	style := goodStyle
	if outlook.Shortfall {
		style = badStyle
	}
	fmt.Fprintf(buf, "  %s\n\n", style.Render(outlook.Headline))

	fmt.Fprint(buf, RenderTable(Table{
		Title:   "Snapshot",
		Headers: []string{"Item", "Value"},
		Rows: [][]string{
			{"Age", intToString(s.Age)},
			{"Retirement age", intToString(s.RetirementAge)},
			{"Expected life", intToString(s.ExpectedLife)},
			{"---"},
			{"Investable assets", FormatCurrency(e.InvestableAssets)},
			{"Total assets", FormatCurrency(e.TotalAssets)},
			{"Total liabilities", FormatCurrency(e.TotalLiabilities)},
			{"Net worth", FormatCurrency(e.NetWorth)},
			{"---"},
			{"Monthly withdrawal", FormatCurrency(s.MonthlyWithdrawal)},
			{"After " + FormatPercentage(s.TaxRate) + " tax", FormatCurrency(e.NetMonthlyWithdrawal)},
			{"Monthly budget", FormatCurrency(s.MonthlyBudget)},
			{"Budget gap", FormatCurrency(e.BudgetGap)},
		},
	}))
	if e.BudgetGap.IsNegative() {
		fmt.Fprintf(buf, "  %s\n", warnStyle.Render("After-tax withdrawal does not cover the monthly budget"))
	}
	fmt.Fprintln(buf)

	rows := make([][]string, 0, len(e.Scenarios))
	for _, sc := range e.Scenarios {
		status := "runs out before expected life"
		if sc.Solvent {
			status = "lasts"
		}
		rows = append(rows, []string{
			sc.Name,
			FormatPercentage(sc.ReturnRate),
			FormatRunwayAge(sc),
			intToString(sc.YearsInRetirement),
			status,
		})
	}
	fmt.Fprint(buf, RenderTable(Table{
		Title:   "Runway by return scenario",
		Headers: []string{"Scenario", "Return", "Money lasts to age", "Years retired", "Status"},
		Rows:    rows,
	}))
	fmt.Fprintf(buf, "  Ending balance at age %d (mid returns): %s\n\n",
		s.ExpectedLife, valueStyle.Render(FormatCurrency(e.EndingBalance)))

	fmt.Fprintf(buf, "  %s\n", headerStyle.Render("Social Security"))
	fmt.Fprintf(buf, "  Claiming at %d: %s/month in today's dollars (%sx of the age-67 benefit)\n",
		s.SSAClaimingAge, FormatCurrency(e.MonthlyBenefit), e.BenefitMultiplier.StringFixed(2))

	if c := e.Claiming; c != nil {
		breakEven := fmt.Sprintf("age %d", c.BreakEven.Age)
		if !c.BreakEven.Crossed {
			breakEven = fmt.Sprintf("not reached by age %d", c.BreakEven.Age)
		}
		fmt.Fprint(buf, RenderTable(Table{
			Headers: []string{"Claim", "Age", "Monthly"},
			Rows: [][]string{
				{"Now", intToString(c.NowAge), FormatCurrency(c.NowMonthly)},
				{"Planned", intToString(c.WaitAge), FormatCurrency(c.WaitMonthly)},
			},
		}))
		fmt.Fprintf(buf, "  Income forgone by waiting: %s\n", FormatCurrency(c.ForgoneIncome))
		fmt.Fprintf(buf, "  Break-even: %s\n", breakEven)
		if c.WorthWaiting {
			fmt.Fprintf(buf, "  %s\n", goodStyle.Render(fmt.Sprintf("Waiting pays off if you live past the break-even (expected life %d)", s.ExpectedLife)))
		} else {
			fmt.Fprintf(buf, "  %s\n", warnStyle.Render(fmt.Sprintf("Waiting does not pay off before expected life %d", s.ExpectedLife)))
		}
	} else {
		fmt.Fprintf(buf, "  %s\n", mutedStyle.Render("No later claiming age to compare against"))
	}
	fmt.Fprintln(buf)
}

func writeAssumptions(buf *bytes.Buffer, e *domain.Evaluation) {
	fmt.Fprintf(buf, "  %s\n", headerStyle.Render("Key assumptions"))
	for _, a := range e.Assumptions {
		fmt.Fprintf(buf, "  %s %s\n", dimStyle.Render("•"), mutedStyle.Render(a))
	}
}
