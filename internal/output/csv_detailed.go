package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw mid-scenario trajectory, one row per simulated year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(e *domain.Evaluation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Phase", "BeginningBalance", "Growth", "SocialSecurity", "Withdrawal", "EndingBalance", "Depleted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range e.Trajectory {
		row := []string{
			intToString(yr.Age),
			string(yr.Phase),
			yr.BeginningBalance.StringFixed(2),
			yr.Growth.StringFixed(2),
			yr.SocialSecurity.StringFixed(2),
			yr.Withdrawal.StringFixed(2),
			yr.EndingBalance.StringFixed(2),
			boolToString(yr.Phase == domain.PhaseWithdrawal && yr.IsDepleted()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
