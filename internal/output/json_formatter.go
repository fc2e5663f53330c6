package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// JSONFormatter serializes the evaluation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(e *domain.Evaluation) ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
