package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rulebook-dev/rulebook/rules"
)

// MarkdownReporter renders rules as a Markdown style-guide summary,
// grouped by scope in registration order.
type MarkdownReporter struct{}

func (r *MarkdownReporter) Format() string { return "markdown" }

func (r *MarkdownReporter) Generate(list []rules.Rule) (string, error) {
	var sb strings.Builder
	if err := r.Write(list, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *MarkdownReporter) Write(list []rules.Rule, w io.Writer) error {
	fmt.Fprintf(w, "# Style Rules\n\n")
	fmt.Fprintf(w, "- **Total Rules:** %d\n\n", len(list))

	if len(list) == 0 {
		fmt.Fprintf(w, "No rules registered.\n")
		return nil
	}

	var order []rules.Scope
	grouped := make(map[rules.Scope][]rules.Rule)
	for _, rule := range list {
		if _, ok := grouped[rule.Scope]; !ok {
			order = append(order, rule.Scope)
		}
		grouped[rule.Scope] = append(grouped[rule.Scope], rule)
	}

	for _, scope := range order {
		fmt.Fprintf(w, "## %s\n\n", scope)
		for _, rule := range grouped[scope] {
			r.writeRule(w, rule)
		}
	}

	return nil
}

func (r *MarkdownReporter) writeRule(w io.Writer, rule rules.Rule) {
	fmt.Fprintf(w, "### %s `%s` (%s)\n\n", severityBadge(rule.Severity), rule.ID, rule.Category)

	if rule.Rationale != "" {
		fmt.Fprintf(w, "%s\n\n", rule.Rationale)
	}

	for _, ex := range rule.Examples {
		if ex.Bad != "" {
			fmt.Fprintf(w, "**Bad:**\n```\n%s\n```\n\n", ex.Bad)
		}
		if ex.Good != "" {
			fmt.Fprintf(w, "**Good:**\n```\n%s\n```\n\n", ex.Good)
		}
	}

	if rule.Suggestion != "" {
		fmt.Fprintf(w, "**Suggestion:** %s\n\n", rule.Suggestion)
	}

	if len(rule.Tags) > 0 {
		fmt.Fprintf(w, "_Tags: %s_\n\n", strings.Join(rule.Tags, ", "))
	}

	fmt.Fprintf(w, "---\n\n")
}

func severityBadge(severity rules.Severity) string {
	switch severity {
	case rules.SeverityDisallowed:
		return "[DISALLOWED]"
	case rules.SeverityRequired:
		return "[REQUIRED]"
	default:
		return "[ADVISORY]"
	}
}
