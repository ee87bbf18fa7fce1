package guide

import (
	"testing"

	"github.com/rulebook-dev/rulebook/rules"
)

func TestExtractRules(t *testing.T) {
	doc, err := Parse("docs/typescript.md", sampleDoc)
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatalf("ExtractRules() error = %v", err)
	}

	// Three rule sections: avoid-the-any-type, naming, enum-members
	if len(extracted) != 3 {
		t.Fatalf("len(extracted) = %d, want 3", len(extracted))
	}

	avoid := extracted[0]
	if avoid.ID != "avoid-the-any-type" {
		t.Errorf("ID = %q, want avoid-the-any-type", avoid.ID)
	}
	if avoid.Scope != rules.ScopeTypeScript {
		t.Errorf("Scope = %q, want typescript", avoid.Scope)
	}
	if avoid.Severity != rules.SeverityDisallowed {
		t.Errorf("Severity = %q, want disallowed (section says Never)", avoid.Severity)
	}
	if len(avoid.Examples) != 1 {
		t.Fatalf("len(Examples) = %d, want 1 paired example", len(avoid.Examples))
	}
	if avoid.Examples[0].Bad == "" || avoid.Examples[0].Good == "" {
		t.Errorf("example not paired: %+v", avoid.Examples[0])
	}
	if avoid.Rationale == "" {
		t.Error("Rationale should carry the section prose")
	}
	if avoid.Ref != "docs/typescript.md" {
		t.Errorf("Ref = %q", avoid.Ref)
	}

	naming := extracted[1]
	if naming.Severity != rules.SeverityRequired {
		t.Errorf("Severity = %q, want required (section says must)", naming.Severity)
	}
	if naming.Category != rules.CategoryNaming {
		t.Errorf("Category = %q, want naming", naming.Category)
	}

	// Frontmatter tags are merged in
	found := false
	for _, tag := range avoid.Tags {
		if tag == "frontend" {
			found = true
		}
	}
	if !found {
		t.Errorf("Tags = %v, want frontmatter tag frontend merged", avoid.Tags)
	}
}

func TestExtractRulesScopeFromFilename(t *testing.T) {
	doc, err := Parse("guides/kotlin.md", "# Kotlin\n\n## Null safety\n\nAvoid !! in production code.\n")
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(extracted) != 1 {
		t.Fatalf("len(extracted) = %d, want 1", len(extracted))
	}
	if extracted[0].Scope != rules.ScopeKotlin {
		t.Errorf("Scope = %q, want kotlin from filename", extracted[0].Scope)
	}
}

func TestExtractRulesScopeFromDirectory(t *testing.T) {
	doc, err := Parse("docs/swift/optionals.md", "# Optionals\n\n## Force unwrapping\n\nNever force unwrap.\n")
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if extracted[0].Scope != rules.ScopeSwift {
		t.Errorf("Scope = %q, want swift from directory", extracted[0].Scope)
	}
}

func TestExtractRulesDefaultScope(t *testing.T) {
	doc, err := Parse("docs/misc.md", "# Misc\n\n## Keep functions short\n\nPrefer small functions.\n")
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, rules.ScopeGeneral)
	if err != nil {
		t.Fatal(err)
	}
	if extracted[0].Scope != rules.ScopeGeneral {
		t.Errorf("Scope = %q, want general", extracted[0].Scope)
	}
	if extracted[0].Severity != rules.SeverityAdvisory {
		t.Errorf("Severity = %q, want advisory (no must/never)", extracted[0].Severity)
	}
}

func TestExtractRulesFrontmatterSeverityDefault(t *testing.T) {
	content := "---\nscope: sql\nseverity: disallowed\n---\n\n# SQL\n\n## Select star\n\nPrefer explicit column lists in application queries.\n\n## Migrations\n\nMigrations must be reversible.\n"
	doc, err := Parse("docs/sql.md", content)
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(extracted) != 2 {
		t.Fatalf("len(extracted) = %d, want 2", len(extracted))
	}

	// Neutral phrasing takes the document default
	if extracted[0].Severity != rules.SeverityDisallowed {
		t.Errorf("Severity = %q, want disallowed from frontmatter", extracted[0].Severity)
	}
	// Requirement keywords still win over the default
	if extracted[1].Severity != rules.SeverityRequired {
		t.Errorf("Severity = %q, want required (section says must)", extracted[1].Severity)
	}
}

func TestExtractRulesDuplicateTitles(t *testing.T) {
	content := "# Doc\n\n## Naming\n\nFirst block.\n\n## Naming\n\nSecond block.\n"
	doc, err := Parse("docs/general.md", content)
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(extracted) != 2 {
		t.Fatalf("len(extracted) = %d, want 2", len(extracted))
	}
	if extracted[0].ID == extracted[1].ID {
		t.Errorf("duplicate ids: %q and %q", extracted[0].ID, extracted[1].ID)
	}
	if extracted[1].ID != "naming-2" {
		t.Errorf("second ID = %q, want naming-2", extracted[1].ID)
	}
}

func TestExtractRulesSkipsEmptySections(t *testing.T) {
	content := "# Doc\n\n## Parent\n\n### Child\n\nActual guidance, always.\n"
	doc, err := Parse("docs/general.md", content)
	if err != nil {
		t.Fatal(err)
	}

	extracted, err := ExtractRules(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(extracted) != 1 {
		t.Fatalf("len(extracted) = %d, want 1 (empty parent skipped)", len(extracted))
	}
	if extracted[0].ID != "child" {
		t.Errorf("ID = %q, want child", extracted[0].ID)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Avoid the any type", "avoid-the-any-type"},
		{"Don't use var!", "don-t-use-var"},
		{"  Spaces  ", "spaces"},
		{"???", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstParagraph(t *testing.T) {
	content := "Use const.\nIt prevents reassignment.\n\nSecond paragraph.\n\n```js\ncode\n```"
	got := firstParagraph(content)
	want := "Use const. It prevents reassignment."
	if got != want {
		t.Errorf("firstParagraph() = %q, want %q", got, want)
	}
}

func TestExtractExamplesUnpaired(t *testing.T) {
	content := "Bad:\n\n```\nvar x = 1\n```\n"
	examples := extractExamples(content)

	if len(examples) != 1 {
		t.Fatalf("len(examples) = %d, want 1", len(examples))
	}
	if examples[0].Bad == "" || examples[0].Good != "" {
		t.Errorf("example = %+v, want bad-only", examples[0])
	}
}
