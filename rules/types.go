// Package rules defines style-rule records and the helpers for
// filtering and loading them.
package rules

import "strings"

// Rule defines a single style convention.
type Rule struct {
	ID         string    `yaml:"id" json:"id"`
	Scope      Scope     `yaml:"scope" json:"scope"`
	Category   Category  `yaml:"category" json:"category"`
	Severity   Severity  `yaml:"severity" json:"severity"`
	Rationale  string    `yaml:"rationale" json:"rationale"`
	Examples   []Example `yaml:"examples,omitempty" json:"examples,omitempty"`
	Tags       []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Enabled    bool      `yaml:"enabled" json:"enabled"`
	Ref        string    `yaml:"ref,omitempty" json:"ref,omitempty"` // Source document
	Suggestion string    `yaml:"suggestion,omitempty" json:"suggestion,omitempty"`
}

// Example is a good/bad snippet pair illustrating a rule.
type Example struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Good        string `yaml:"good,omitempty" json:"good,omitempty"`
	Bad         string `yaml:"bad,omitempty" json:"bad,omitempty"`
}

// Scope is the language context a rule applies to.
type Scope string

const (
	ScopeGeneral    Scope = "general"
	ScopeJavaScript Scope = "javascript"
	ScopeTypeScript Scope = "typescript"
	ScopeRust       Scope = "rust"
	ScopeKotlin     Scope = "kotlin"
	ScopeSQL        Scope = "sql"
	ScopeSwift      Scope = "swift"
	ScopeCommit     Scope = "commit"
)

// KnownScopes lists every scope a rule may target.
var KnownScopes = map[Scope]bool{
	ScopeGeneral:    true,
	ScopeJavaScript: true,
	ScopeTypeScript: true,
	ScopeRust:       true,
	ScopeKotlin:     true,
	ScopeSQL:        true,
	ScopeSwift:      true,
	ScopeCommit:     true,
}

// scopeAliases maps common shorthand to canonical scope names.
var scopeAliases = map[string]Scope{
	"js":              ScopeJavaScript,
	"ts":              ScopeTypeScript,
	"ecmascript":      ScopeJavaScript,
	"kt":              ScopeKotlin,
	"rs":              ScopeRust,
	"commit-messages": ScopeCommit,
	"commits":         ScopeCommit,
	"all":             ScopeGeneral,
}

// NormalizeScope lowercases a scope name and resolves aliases.
// The result is not guaranteed to be a known scope.
func NormalizeScope(s string) Scope {
	name := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := scopeAliases[name]; ok {
		return canonical
	}
	return Scope(name)
}

// Severity indicates how binding a rule is.
type Severity string

const (
	SeverityAdvisory   Severity = "advisory"
	SeverityRequired   Severity = "required"
	SeverityDisallowed Severity = "disallowed"
)

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityAdvisory:
		return SeverityAdvisory, true
	case SeverityRequired:
		return SeverityRequired, true
	case SeverityDisallowed:
		return SeverityDisallowed, true
	}
	return "", false
}

// Category groups rules by concern.
type Category string

const (
	CategoryNaming        Category = "naming"
	CategoryFormatting    Category = "formatting"
	CategoryWhitespace    Category = "whitespace"
	CategoryComments      Category = "comments"
	CategoryImports       Category = "imports"
	CategoryVariables     Category = "variables"
	CategoryFunctions     Category = "functions"
	CategoryTypes         Category = "types"
	CategoryErrorHandling Category = "error-handling"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
)

// RuleSet is a named collection of rules as stored in a YAML rule file.
type RuleSet struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Scope       Scope  `yaml:"scope,omitempty" json:"scope,omitempty"` // Default scope for rules in this set
	Rules       []Rule `yaml:"rules" json:"rules"`
}

// Preset defines a named selection of rules.
type Preset struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Includes    []string `yaml:"includes" json:"includes"` // Rule IDs, empty means all
	Excludes    []string `yaml:"excludes" json:"excludes"` // Rule IDs
}
