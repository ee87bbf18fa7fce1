package rules

// ValidationError reports a malformed rule field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "rule validation error: " + e.Field + ": " + e.Message
}

// Validate checks that a rule carries the required fields.
// Rules are value objects; a rule that validates once stays valid.
func (r Rule) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "id", Message: "rule id is required"}
	}
	if r.Scope == "" {
		return &ValidationError{Field: "scope", Message: "scope is required"}
	}
	if !KnownScopes[r.Scope] {
		return &ValidationError{Field: "scope", Message: "unrecognized scope: " + string(r.Scope)}
	}
	if _, ok := ParseSeverity(string(r.Severity)); !ok {
		return &ValidationError{Field: "severity", Message: "invalid severity: " + string(r.Severity) + ", must be one of: advisory, required, disallowed"}
	}
	return nil
}

// Normalize resolves scope aliases and lowercases enum fields in place.
// Call before Validate when the rule came from a hand-authored document.
func (r *Rule) Normalize() {
	r.Scope = NormalizeScope(string(r.Scope))
	if sev, ok := ParseSeverity(string(r.Severity)); ok {
		r.Severity = sev
	}
}
