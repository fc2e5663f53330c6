package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per return scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(e *domain.Evaluation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "ReturnRate", "RunwayAge", "YearsInRetirement", "ReachedCap", "Solvent", "InvestableAssets", "EndingBalanceMid"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range e.Scenarios {
		row := []string{
			sc.Name,
			sc.ReturnRate.String(),
			intToString(sc.RunwayAge),
			intToString(sc.YearsInRetirement),
			boolToString(sc.ReachedCap),
			boolToString(sc.Solvent),
			e.InvestableAssets.StringFixed(2),
			e.EndingBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
