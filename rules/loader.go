package rules

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var embeddedRules embed.FS

// Loader handles loading rule sets from files.
type Loader struct {
	rulesDirs       []string
	includeDefaults bool
}

// NewLoader creates a rule loader reading the embedded defaults plus
// any YAML rule files found under the given directories.
func NewLoader(rulesDirs ...string) *Loader {
	return &Loader{rulesDirs: rulesDirs, includeDefaults: true}
}

// SkipDefaults disables loading of the embedded default rule sets.
func (l *Loader) SkipDefaults() *Loader {
	l.includeDefaults = false
	return l
}

// Load loads all rules from configured sources.
func (l *Loader) Load() ([]Rule, error) {
	var allRules []Rule

	if l.includeDefaults {
		embedded, err := l.loadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded rules: %w", err)
		}
		allRules = append(allRules, embedded...)
	}

	for _, dir := range l.rulesDirs {
		custom, err := l.loadFromDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading custom rules: %w", err)
		}
		allRules = append(allRules, custom...)
	}

	return allRules, nil
}

func (l *Loader) loadEmbedded() ([]Rule, error) {
	var allRules []Rule

	entries, err := embeddedRules.ReadDir("defaults")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := embeddedRules.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return nil, err
		}

		rules, err := ParseRuleSet(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}

		allRules = append(allRules, rules...)
	}

	return allRules, nil
}

func (l *Loader) loadFromDir(dir string) ([]Rule, error) {
	var allRules []Rule

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rules, err := ParseRuleSet(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		allRules = append(allRules, rules...)
		return nil
	})

	return allRules, err
}

// ruleDoc mirrors Rule but keeps Enabled optional so that rules are
// enabled unless a file explicitly disables them.
type ruleDoc struct {
	ID         string    `yaml:"id"`
	Scope      Scope     `yaml:"scope"`
	Category   Category  `yaml:"category"`
	Severity   Severity  `yaml:"severity"`
	Rationale  string    `yaml:"rationale"`
	Examples   []Example `yaml:"examples"`
	Tags       []string  `yaml:"tags"`
	Enabled    *bool     `yaml:"enabled"`
	Ref        string    `yaml:"ref"`
	Suggestion string    `yaml:"suggestion"`
}

type ruleSetDoc struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Scope       Scope     `yaml:"scope"`
	Rules       []ruleDoc `yaml:"rules"`
}

// ParseRuleSet parses a YAML rule-set document into validated rules.
// A set-level scope fills in rules that omit their own.
func ParseRuleSet(data []byte) ([]Rule, error) {
	var doc ruleSetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for _, rd := range doc.Rules {
		rule := Rule{
			ID:         rd.ID,
			Scope:      rd.Scope,
			Category:   rd.Category,
			Severity:   rd.Severity,
			Rationale:  rd.Rationale,
			Examples:   rd.Examples,
			Tags:       rd.Tags,
			Enabled:    rd.Enabled == nil || *rd.Enabled,
			Ref:        rd.Ref,
			Suggestion: rd.Suggestion,
		}
		if rule.Scope == "" {
			rule.Scope = doc.Scope
		}
		rule.Normalize()
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", rd.ID, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MergeRuleSets merges rule slices with later sets taking precedence
// for the same scope and id. First-seen order is preserved.
func MergeRuleSets(sets ...[]Rule) []Rule {
	type key struct {
		scope Scope
		id    string
	}

	index := make(map[key]int)
	var merged []Rule

	for _, set := range sets {
		for _, rule := range set {
			k := key{rule.Scope, rule.ID}
			if i, ok := index[k]; ok {
				merged[i] = rule
				continue
			}
			index[k] = len(merged)
			merged = append(merged, rule)
		}
	}

	return merged
}

// LoadPreset loads a built-in preset by name.
func LoadPreset(name string) (*Preset, error) {
	presets := map[string]*Preset{
		"standard": {
			Name:        "standard",
			Description: "Every convention in the corpus",
			Includes:    []string{}, // Empty means all
			Excludes:    []string{},
		},
		"minimal": {
			Name:        "minimal",
			Description: "Only the disallowed patterns reviewers block on",
			Includes: []string{
				"no-var", "no-any", "no-ts-ignore", "no-unwrap-in-lib",
				"no-not-null-assertion", "no-force-unwrap",
				"no-implicitly-unwrapped", "no-select-star", "no-wip-commits",
			},
			Excludes: []string{},
		},
	}

	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return preset, nil
}
