// Package registry holds the in-memory collection of style rules,
// keyed by scope. A registry is built once at load time and is safe
// for unsynchronized concurrent reads afterwards.
package registry

import (
	"iter"
	"sync"

	"github.com/rulebook-dev/rulebook/rules"
)

// Registry stores rules in insertion order with per-scope id uniqueness.
type Registry struct {
	mu      sync.RWMutex
	ordered []rules.Rule
	byScope map[rules.Scope]map[string]int // scope -> id -> index into ordered
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byScope: make(map[rules.Scope]map[string]int),
	}
}

// Register validates and adds a rule. It fails with *rules.ValidationError
// for a malformed rule and *DuplicateIDError when the (scope, id) pair is
// already present. A failed registration leaves the registry unchanged.
func (r *Registry) Register(rule rules.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byScope[rule.Scope]
	if ids == nil {
		ids = make(map[string]int)
		r.byScope[rule.Scope] = ids
	}

	if _, exists := ids[rule.ID]; exists {
		return &DuplicateIDError{Scope: rule.Scope, ID: rule.ID}
	}

	ids[rule.ID] = len(r.ordered)
	r.ordered = append(r.ordered, rule)
	return nil
}

// RegisterAll registers every rule or none: the first failure is
// returned and any rules registered by this call are rolled back.
func (r *Registry) RegisterAll(list []rules.Rule) error {
	for i, rule := range list {
		if err := r.Register(rule); err != nil {
			r.remove(list[:i])
			return err
		}
	}
	return nil
}

// remove undoes registrations made by a failed RegisterAll.
func (r *Registry) remove(registered []rules.Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range registered {
		if ids, ok := r.byScope[rule.Scope]; ok {
			delete(ids, rule.ID)
			if len(ids) == 0 {
				delete(r.byScope, rule.Scope)
			}
		}
	}
	// The rolled-back rules sit at the tail; earlier indices are untouched.
	if n := len(r.ordered) - len(registered); n >= 0 {
		r.ordered = r.ordered[:n]
	}
}

// RulesFor returns a restartable sequence of the rules registered for a
// scope, in insertion order. An unknown scope yields an empty sequence.
func (r *Registry) RulesFor(scope rules.Scope) iter.Seq[rules.Rule] {
	return func(yield func(rules.Rule) bool) {
		r.mu.RLock()
		defer r.mu.RUnlock()

		for _, rule := range r.ordered {
			if rule.Scope != scope {
				continue
			}
			if !yield(rule) {
				return
			}
		}
	}
}

// RulesForCategory narrows RulesFor to a single category.
func (r *Registry) RulesForCategory(scope rules.Scope, category rules.Category) iter.Seq[rules.Rule] {
	return func(yield func(rules.Rule) bool) {
		for rule := range r.RulesFor(scope) {
			if rule.Category != category {
				continue
			}
			if !yield(rule) {
				return
			}
		}
	}
}

// All returns the full sequence of registered rules in insertion order.
// The sequence is restartable and stable across calls.
func (r *Registry) All() iter.Seq[rules.Rule] {
	return func(yield func(rules.Rule) bool) {
		r.mu.RLock()
		defer r.mu.RUnlock()

		for _, rule := range r.ordered {
			if !yield(rule) {
				return
			}
		}
	}
}

// Get returns the rule registered under (scope, id).
func (r *Registry) Get(scope rules.Scope, id string) (rules.Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.byScope[scope]
	if !ok {
		return rules.Rule{}, false
	}
	i, ok := ids[id]
	if !ok {
		return rules.Rule{}, false
	}
	return r.ordered[i], true
}

// Scopes returns the scopes with at least one registered rule, in first
// registration order.
func (r *Registry) Scopes() []rules.Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[rules.Scope]bool, len(r.byScope))
	var scopes []rules.Scope
	for _, rule := range r.ordered {
		if !seen[rule.Scope] {
			seen[rule.Scope] = true
			scopes = append(scopes, rule.Scope)
		}
	}
	return scopes
}

// Categories returns the categories present in a scope, in first
// registration order.
func (r *Registry) Categories(scope rules.Scope) []rules.Category {
	seen := make(map[rules.Category]bool)
	var categories []rules.Category
	for rule := range r.RulesFor(scope) {
		if !seen[rule.Category] {
			seen[rule.Category] = true
			categories = append(categories, rule.Category)
		}
	}
	return categories
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
