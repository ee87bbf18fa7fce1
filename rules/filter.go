package rules

import "strings"

// ForScope returns the enabled rules applying to a scope. Rules in the
// general scope apply to every language scope except commit.
func ForScope(list []Rule, scope Scope) []Rule {
	var filtered []Rule

	for _, rule := range list {
		if !rule.Enabled {
			continue
		}

		if rule.Scope == scope {
			filtered = append(filtered, rule)
			continue
		}

		if rule.Scope == ScopeGeneral && scope != ScopeCommit && scope != ScopeGeneral {
			filtered = append(filtered, rule)
		}
	}

	return filtered
}

// ByCategory returns rules in a specific category.
func ByCategory(list []Rule, category Category) []Rule {
	var filtered []Rule
	for _, rule := range list {
		if rule.Category == category {
			filtered = append(filtered, rule)
		}
	}
	return filtered
}

// BySeverity returns rules with the given severity.
func BySeverity(list []Rule, severity Severity) []Rule {
	var filtered []Rule
	for _, rule := range list {
		if rule.Severity == severity {
			filtered = append(filtered, rule)
		}
	}
	return filtered
}

// ByTag returns rules carrying the given tag.
func ByTag(list []Rule, tag string) []Rule {
	var filtered []Rule
	for _, rule := range list {
		if containsString(rule.Tags, tag) {
			filtered = append(filtered, rule)
		}
	}
	return filtered
}

// ApplyPreset applies a preset to filter rules.
func ApplyPreset(list []Rule, preset *Preset) []Rule {
	if preset == nil {
		return list
	}

	var filtered []Rule

	for _, rule := range list {
		if containsString(preset.Excludes, rule.ID) {
			continue
		}

		// Empty includes means all
		if len(preset.Includes) > 0 && !containsString(preset.Includes, rule.ID) {
			continue
		}

		filtered = append(filtered, rule)
	}

	return filtered
}

func containsString(slice []string, s string) bool {
	for _, item := range slice {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
