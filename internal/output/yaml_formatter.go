package output

import (
	"github.com/rpgo/runway-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the evaluation as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(e *domain.Evaluation) ([]byte, error) {
	return yaml.Marshal(e)
}
