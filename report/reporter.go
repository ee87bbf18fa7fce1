// Package report renders rule collections for human or machine
// consumers. Reporters write to the caller's writer; they never touch
// the filesystem.
package report

import (
	"fmt"
	"io"

	"github.com/rulebook-dev/rulebook/rules"
)

// Reporter defines the interface for rendering rule reports.
type Reporter interface {
	// Generate renders the rules as a string.
	Generate(list []rules.Rule) (string, error)

	// Write renders the rules to a writer.
	Write(list []rules.Rule, w io.Writer) error

	// Format returns the format name.
	Format() string
}

// NewReporter creates a reporter for the given format.
func NewReporter(format string) (Reporter, error) {
	switch format {
	case "markdown", "md":
		return &MarkdownReporter{}, nil
	case "json":
		return &JSONReporter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// AvailableFormats returns the list of supported formats.
func AvailableFormats() []string {
	return []string{"markdown", "json"}
}
