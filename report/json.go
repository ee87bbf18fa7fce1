package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rulebook-dev/rulebook/rules"
)

// JSONReporter renders rules as a JSON document.
type JSONReporter struct {
	Indent bool
}

// jsonReport is the envelope written by the JSON reporter.
type jsonReport struct {
	TotalRules int          `json:"total_rules"`
	Rules      []rules.Rule `json:"rules"`
}

func (r *JSONReporter) Format() string { return "json" }

func (r *JSONReporter) Generate(list []rules.Rule) (string, error) {
	var sb strings.Builder
	if err := r.Write(list, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *JSONReporter) Write(list []rules.Rule, w io.Writer) error {
	if list == nil {
		list = []rules.Rule{}
	}

	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(jsonReport{
		TotalRules: len(list),
		Rules:      list,
	})
}
