package guide

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/rulebook-dev/rulebook/rules"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"typescript.md": &fstest.MapFile{
			Data: []byte("# TS\n\n## No any\n\nNever use any.\n"),
		},
		"sql/queries.md": &fstest.MapFile{
			Data: []byte("# Queries\n\n## Select lists\n\nName the columns you must read.\n"),
		},
		"node_modules/pkg/README.md": &fstest.MapFile{
			Data: []byte("# Ignore me\n\n## Not a rule\n\nDependency docs.\n"),
		},
		"notes.txt": &fstest.MapFile{
			Data: []byte("not markdown"),
		},
	}

	loaded, err := NewLoader().LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}

	scopes := make(map[rules.Scope]bool)
	for _, r := range loaded {
		scopes[r.Scope] = true
	}
	if !scopes[rules.ScopeTypeScript] || !scopes[rules.ScopeSQL] {
		t.Errorf("scopes = %v, want typescript and sql", scopes)
	}
}

func TestLoadFSIgnorePatterns(t *testing.T) {
	fsys := fstest.MapFS{
		"rust.md":   &fstest.MapFile{Data: []byte("# Rust\n\n## Errors\n\nAlways return Result.\n")},
		"README.md": &fstest.MapFile{Data: []byte("# Readme\n\n## Install\n\nRun make install.\n")},
	}

	loaded, err := NewLoader().WithIgnore("**/README.md").LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len(loaded) = %d, want 1", len(loaded))
	}
	if loaded[0].Scope != rules.ScopeRust {
		t.Errorf("Scope = %q, want rust", loaded[0].Scope)
	}
}

func TestLoadFSSkipsIdenticalDocuments(t *testing.T) {
	content := []byte("---\nscope: swift\n---\n\n# Swift\n\n## Force unwrapping\n\nNever force unwrap.\n")
	fsys := fstest.MapFS{
		"swift.md":        &fstest.MapFile{Data: content},
		"backup/swift.md": &fstest.MapFile{Data: content},
	}

	loaded, err := NewLoader().LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len(loaded) = %d, want 1 (copied guide loaded once)", len(loaded))
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "---\nscope: kotlin\n---\n\n# Kotlin\n\n## Null safety\n\nNever use !! outside tests.\n"
	if err := os.WriteFile(filepath.Join(dir, "guide.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len(loaded) = %d, want 1", len(loaded))
	}
	if loaded[0].Scope != rules.ScopeKotlin {
		t.Errorf("Scope = %q, want kotlin", loaded[0].Scope)
	}
	if loaded[0].Severity != rules.SeverityDisallowed {
		t.Errorf("Severity = %q, want disallowed", loaded[0].Severity)
	}
}

func TestLoadMissingDirSkipped(t *testing.T) {
	loaded, err := NewLoader(filepath.Join(t.TempDir(), "absent")).Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want missing dirs skipped", err)
	}
	if len(loaded) != 0 {
		t.Errorf("len(loaded) = %d, want 0", len(loaded))
	}
}

func TestLoadFileBadFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(path, []byte("---\nbogus_field: 1\n---\n\n# Doc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().LoadFile(path); err == nil {
		t.Fatal("LoadFile() = nil, want error for unknown frontmatter field")
	}
}
