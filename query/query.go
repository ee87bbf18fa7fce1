// Package query is the read-only facade over a built rule registry.
// It accepts raw scope strings from callers, normalizes them, and never
// fails on unknown input: an unknown scope simply yields no rules.
package query

import (
	"github.com/rulebook-dev/rulebook/registry"
	"github.com/rulebook-dev/rulebook/rules"
)

// Service answers rule queries against an immutable registry.
type Service struct {
	reg *registry.Registry
}

// New creates a query service over a registry.
func New(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// Option narrows a query.
type Option func(*filter)

type filter struct {
	category rules.Category
	severity rules.Severity
	tag      string
	all      bool
}

// WithCategory keeps only rules in the given category.
func WithCategory(category rules.Category) Option {
	return func(f *filter) { f.category = category }
}

// WithSeverity keeps only rules with the given severity.
func WithSeverity(severity rules.Severity) Option {
	return func(f *filter) { f.severity = severity }
}

// WithTag keeps only rules carrying the given tag.
func WithTag(tag string) Option {
	return func(f *filter) { f.tag = tag }
}

// IncludeDisabled keeps rules that have been disabled by configuration.
func IncludeDisabled() Option {
	return func(f *filter) { f.all = true }
}

func (f *filter) keep(rule rules.Rule) bool {
	if !f.all && !rule.Enabled {
		return false
	}
	if f.category != "" && rule.Category != f.category {
		return false
	}
	if f.severity != "" && rule.Severity != f.severity {
		return false
	}
	if f.tag != "" {
		found := false
		for _, t := range rule.Tags {
			if t == f.tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RulesFor returns the rules applying to a scope in registration order.
// The scope may be an alias ("ts", "js"); unknown scopes return an
// empty slice, never an error.
func (s *Service) RulesFor(scope string, opts ...Option) []rules.Rule {
	f := &filter{}
	for _, opt := range opts {
		opt(f)
	}

	var matched []rules.Rule
	for rule := range s.reg.RulesFor(rules.NormalizeScope(scope)) {
		if f.keep(rule) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// Rule returns a single rule by scope and id.
func (s *Service) Rule(scope, id string) (rules.Rule, bool) {
	return s.reg.Get(rules.NormalizeScope(scope), id)
}

// All returns every registered rule in registration order.
func (s *Service) All() []rules.Rule {
	var all []rules.Rule
	for rule := range s.reg.All() {
		all = append(all, rule)
	}
	return all
}

// Scopes returns the scopes with registered rules.
func (s *Service) Scopes() []rules.Scope {
	return s.reg.Scopes()
}

// Categories returns the categories present in a scope.
func (s *Service) Categories(scope string) []rules.Category {
	return s.reg.Categories(rules.NormalizeScope(scope))
}

// Stats summarizes the registry contents.
type Stats struct {
	TotalRules int                    `json:"total_rules"`
	ByScope    map[rules.Scope]int    `json:"by_scope"`
	BySeverity map[rules.Severity]int `json:"by_severity"`
}

// Stats returns registry statistics.
func (s *Service) Stats() Stats {
	stats := Stats{
		ByScope:    make(map[rules.Scope]int),
		BySeverity: make(map[rules.Severity]int),
	}
	for rule := range s.reg.All() {
		stats.TotalRules++
		stats.ByScope[rule.Scope]++
		stats.BySeverity[rule.Severity]++
	}
	return stats
}
