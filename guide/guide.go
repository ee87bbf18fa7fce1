// Package guide extracts style rules from Markdown style-guide
// documents. It is the load-time boundary between the human-authored
// corpus and the rule registry; extraction is heuristic and favors
// recall over precision.
package guide

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Document represents one parsed style-guide file.
type Document struct {
	Path     string    `json:"path"`
	Scope    string    `json:"scope"` // From frontmatter or filename, may be empty
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Hash     string    `json:"hash"`

	// Frontmatter holds the raw document defaults, when present.
	Frontmatter *Frontmatter `json:"-"`
}

// Section is one header-delimited block of a document.
type Section struct {
	Title   string   `json:"title"`
	Level   int      `json:"level"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ParseError reports a malformed document.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

var (
	headerPattern    = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockPattern = regexp.MustCompile("(?s)```.*?```")
)

// Parse parses Markdown content into a document. Frontmatter, when
// present, supplies the document scope and defaults for extraction.
func Parse(path, content string) (*Document, error) {
	hash := sha256.Sum256([]byte(content))

	fm, body, err := extractFrontmatter(content)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}

	doc := &Document{
		Path: path,
		Hash: hex.EncodeToString(hash[:8]),
	}
	if fm != nil {
		doc.Scope = fm.Scope
		doc.Frontmatter = fm
	}

	doc.Sections = parseSections(body)

	// The first level-1 header names the document, frontmatter otherwise
	for _, s := range doc.Sections {
		if s.Level == 1 {
			doc.Title = s.Title
			break
		}
	}
	if doc.Title == "" && fm != nil {
		doc.Title = fm.Title
	}

	return doc, nil
}

// parseSections splits markdown into header-delimited sections. Code
// blocks are masked first so fenced # lines do not open sections.
func parseSections(content string) []Section {
	placeholders := make(map[string]string)
	placeholderIndex := 0
	contentClean := codeBlockPattern.ReplaceAllStringFunc(content, func(match string) string {
		placeholder := fmt.Sprintf("<<CODEBLOCK_%d>>", placeholderIndex)
		placeholders[placeholder] = match
		placeholderIndex++
		return placeholder
	})

	matches := headerPattern.FindAllStringSubmatchIndex(contentClean, -1)
	sections := make([]Section, 0, len(matches))

	for i, match := range matches {
		if len(match) < 6 {
			continue
		}

		level := match[3] - match[2]
		title := contentClean[match[4]:match[5]]

		contentStart := match[1]
		contentEnd := len(contentClean)
		if i+1 < len(matches) {
			contentEnd = matches[i+1][0]
		}

		sectionContent := strings.TrimSpace(contentClean[contentStart:contentEnd])

		for placeholder, original := range placeholders {
			sectionContent = strings.ReplaceAll(sectionContent, placeholder, original)
		}

		sections = append(sections, Section{
			Title:   title,
			Level:   level,
			Content: sectionContent,
			Tags:    extractTags(title, sectionContent),
		})
	}

	return sections
}

// conceptTags are the rule concerns recognized in section text.
var conceptTags = []string{
	"naming", "convention", "variable", "function", "class", "method",
	"error", "exception", "handling", "logging", "testing", "test",
	"documentation", "comment", "import", "module", "package",
	"type", "interface", "struct", "enum", "constant",
	"formatting", "indentation", "spacing", "whitespace", "lint", "style",
	"git", "commit", "branch", "merge", "review",
}

// languageTags are the language names recognized in section text.
var languageTags = []string{
	"javascript", "typescript", "rust", "kotlin", "sql", "swift",
}

// extractTags extracts concern and language tags from section text.
func extractTags(title, content string) []string {
	combined := strings.ToLower(title + " " + content)

	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, concept := range conceptTags {
		if strings.Contains(combined, concept) {
			add(concept)
		}
	}
	for _, lang := range languageTags {
		if strings.Contains(combined, lang) {
			add(lang)
		}
	}

	return tags
}
