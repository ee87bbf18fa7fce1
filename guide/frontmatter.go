package guide

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Frontmatter carries document-level defaults for rule extraction.
// Unknown fields cause parse errors so typos surface at load time.
type Frontmatter struct {
	Title    string   `yaml:"title"`
	Scope    string   `yaml:"scope"`
	Category string   `yaml:"category"`
	Severity string   `yaml:"severity"`
	Tags     []string `yaml:"tags"`
}

// frontmatterPattern matches a leading --- ... --- block.
var frontmatterPattern = regexp.MustCompile(`(?s)\A\s*---\s*\n(.*?)\n---\s*\n?`)

var knownFrontmatterFields = map[string]bool{
	"title":    true,
	"scope":    true,
	"category": true,
	"severity": true,
	"tags":     true,
}

// extractFrontmatter splits optional YAML frontmatter from markdown
// content. Returns nil frontmatter when the document has none.
func extractFrontmatter(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if matches == nil {
		return nil, content, nil
	}

	body := frontmatterPattern.ReplaceAllString(content, "")

	var rawMap map[string]any
	if err := yaml.Unmarshal([]byte(matches[1]), &rawMap); err != nil {
		return nil, "", &ParseError{Message: fmt.Sprintf("invalid frontmatter YAML: %v", err)}
	}

	for field := range rawMap {
		if !knownFrontmatterFields[field] {
			return nil, "", &ParseError{Message: fmt.Sprintf("unknown frontmatter field %q", field)}
		}
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, "", &ParseError{Message: fmt.Sprintf("failed to parse frontmatter: %v", err)}
	}

	return &fm, body, nil
}
