package guide

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rulebook-dev/rulebook/rules"
)

// ExtractRules converts a parsed document into rule records. Every
// header section with body text becomes one rule; the section title is
// slugified into the rule id, so ids are stable across reloads.
func ExtractRules(doc *Document, defaultScope rules.Scope) ([]rules.Rule, error) {
	scope := resolveScope(doc, defaultScope)

	var extracted []rules.Rule
	seen := make(map[string]int)

	for _, section := range doc.Sections {
		if section.Level < 2 {
			continue
		}
		if strings.TrimSpace(stripCodeBlocks(section.Content)) == "" {
			continue
		}

		id := slugify(section.Title)
		if id == "" {
			continue
		}
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s-%d", id, n)
		}

		rule := rules.Rule{
			ID:        id,
			Scope:     scope,
			Category:  inferCategory(doc, section),
			Severity:  inferSeverity(doc, section),
			Rationale: firstParagraph(section.Content),
			Examples:  extractExamples(section.Content),
			Tags:      mergeTags(doc, section),
			Enabled:   true,
			Ref:       doc.Path,
		}
		rule.Normalize()
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Title, err)
		}

		extracted = append(extracted, rule)
	}

	return extracted, nil
}

// resolveScope picks the rule scope: frontmatter wins, then a filename
// or directory named after a known scope, then the caller's default.
func resolveScope(doc *Document, defaultScope rules.Scope) rules.Scope {
	if doc.Scope != "" {
		return rules.NormalizeScope(doc.Scope)
	}

	base := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
	if s := rules.NormalizeScope(base); rules.KnownScopes[s] {
		return s
	}

	dir := filepath.Base(filepath.Dir(doc.Path))
	if s := rules.NormalizeScope(dir); rules.KnownScopes[s] {
		return s
	}

	if defaultScope != "" {
		return defaultScope
	}
	return rules.ScopeGeneral
}

// requirement keywords, strongest first
var (
	disallowedPattern = regexp.MustCompile(`(?i)\b(never|must not|do not|don't|forbidden|disallowed|prohibited)\b`)
	requiredPattern   = regexp.MustCompile(`(?i)\b(must|always|required|mandatory)\b`)
)

// inferSeverity reads the requirement language of a section. Sections
// without MUST/NEVER phrasing fall back to the frontmatter severity,
// then advisory.
func inferSeverity(doc *Document, section Section) rules.Severity {
	text := section.Title + " " + stripCodeBlocks(section.Content)
	switch {
	case disallowedPattern.MatchString(text):
		return rules.SeverityDisallowed
	case requiredPattern.MatchString(text):
		return rules.SeverityRequired
	}
	if doc.Frontmatter != nil {
		if sev, ok := rules.ParseSeverity(doc.Frontmatter.Severity); ok {
			return sev
		}
	}
	return rules.SeverityAdvisory
}

// categoryByTag maps extracted tags to rule categories, checked in order.
var categoryByTag = []struct {
	tag      string
	category rules.Category
}{
	{"naming", rules.CategoryNaming},
	{"whitespace", rules.CategoryWhitespace},
	{"indentation", rules.CategoryWhitespace},
	{"spacing", rules.CategoryWhitespace},
	{"comment", rules.CategoryComments},
	{"documentation", rules.CategoryDocumentation},
	{"import", rules.CategoryImports},
	{"error", rules.CategoryErrorHandling},
	{"exception", rules.CategoryErrorHandling},
	{"test", rules.CategoryTesting},
	{"variable", rules.CategoryVariables},
	{"function", rules.CategoryFunctions},
	{"method", rules.CategoryFunctions},
	{"type", rules.CategoryTypes},
	{"interface", rules.CategoryTypes},
	{"enum", rules.CategoryTypes},
	{"formatting", rules.CategoryFormatting},
}

// inferCategory picks a category from frontmatter or section tags,
// falling back to formatting.
func inferCategory(doc *Document, section Section) rules.Category {
	if doc.Frontmatter != nil && doc.Frontmatter.Category != "" {
		return rules.Category(doc.Frontmatter.Category)
	}

	tagSet := make(map[string]bool, len(section.Tags))
	for _, tag := range section.Tags {
		tagSet[tag] = true
	}
	for _, m := range categoryByTag {
		if tagSet[m.tag] {
			return m.category
		}
	}
	return rules.CategoryFormatting
}

func mergeTags(doc *Document, section Section) []string {
	tags := section.Tags
	if doc.Frontmatter == nil {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		seen[t] = true
	}
	for _, t := range doc.Frontmatter.Tags {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func stripCodeBlocks(content string) string {
	return codeBlockPattern.ReplaceAllString(content, "")
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// firstParagraph returns the first prose paragraph with whitespace
// collapsed, for use as the rule rationale.
func firstParagraph(content string) string {
	clean := stripCodeBlocks(content)
	for _, block := range strings.Split(clean, "\n\n") {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		return whitespaceRun.ReplaceAllString(text, " ")
	}
	return ""
}

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a section title into a rule id.
func slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// labeledFence matches a "Good:"/"Bad:" style label followed by a
// fenced code block.
var labeledFence = regexp.MustCompile("(?is)(good|bad|prefer|avoid)[^\n`]*\n+```[^\n]*\n(.*?)```")

// extractExamples pairs labeled good/bad code fences into examples.
func extractExamples(content string) []rules.Example {
	matches := labeledFence.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	var examples []rules.Example
	current := rules.Example{}
	dirty := false

	flush := func() {
		if dirty {
			examples = append(examples, current)
			current = rules.Example{}
			dirty = false
		}
	}

	for _, m := range matches {
		label := strings.ToLower(m[1])
		snippet := strings.TrimRight(m[2], "\n")

		switch label {
		case "good", "prefer":
			if current.Good != "" {
				flush()
			}
			current.Good = snippet
		case "bad", "avoid":
			if current.Bad != "" {
				flush()
			}
			current.Bad = snippet
		}
		dirty = true

		if current.Good != "" && current.Bad != "" {
			flush()
		}
	}
	flush()

	return examples
}
