package rules

import (
	"strings"
	"testing"
)

func validRule() Rule {
	return Rule{
		ID:       "no-var",
		Scope:    ScopeTypeScript,
		Category: CategoryVariables,
		Severity: SeverityDisallowed,
		Enabled:  true,
	}
}

func TestValidate(t *testing.T) {
	if err := validRule().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Rule)
		wantField string
	}{
		{
			name:      "empty id",
			modify:    func(r *Rule) { r.ID = "" },
			wantField: "id",
		},
		{
			name:      "empty scope",
			modify:    func(r *Rule) { r.Scope = "" },
			wantField: "scope",
		},
		{
			name:      "unrecognized scope",
			modify:    func(r *Rule) { r.Scope = "cobol" },
			wantField: "scope",
		},
		{
			name:      "invalid severity",
			modify:    func(r *Rule) { r.Severity = "fatal" },
			wantField: "severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule()
			tt.modify(&rule)

			err := rule.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Error() = %q, should mention %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	rule := Rule{ID: "r1", Scope: "TS", Severity: "Required"}
	rule.Normalize()

	if rule.Scope != ScopeTypeScript {
		t.Errorf("Scope = %q, want %q", rule.Scope, ScopeTypeScript)
	}
	if rule.Severity != SeverityRequired {
		t.Errorf("Severity = %q, want %q", rule.Severity, SeverityRequired)
	}
}

func TestNormalizeScope(t *testing.T) {
	tests := []struct {
		in   string
		want Scope
	}{
		{"js", ScopeJavaScript},
		{"ts", ScopeTypeScript},
		{"TypeScript", ScopeTypeScript},
		{" rust ", ScopeRust},
		{"commit-messages", ScopeCommit},
		{"cobol", Scope("cobol")},
	}

	for _, tt := range tests {
		if got := NormalizeScope(tt.in); got != tt.want {
			t.Errorf("NormalizeScope(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if sev, ok := ParseSeverity("ADVISORY"); !ok || sev != SeverityAdvisory {
		t.Errorf("ParseSeverity(ADVISORY) = %q, %v", sev, ok)
	}
	if _, ok := ParseSeverity("fatal"); ok {
		t.Error("ParseSeverity(fatal) should fail")
	}
}
