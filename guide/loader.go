package guide

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rulebook-dev/rulebook/logger"
	"github.com/rulebook-dev/rulebook/rules"
)

// skipDirs contains directories never searched for guide documents.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".git":         true,
}

// Loader walks style-guide directories and extracts rules from every
// matching Markdown document.
type Loader struct {
	dirs         []string
	patterns     []string
	ignore       []string
	defaultScope rules.Scope
	log          *logger.Logger
}

// NewLoader creates a guide loader for the given directories. Without
// patterns every .md file is considered.
func NewLoader(dirs ...string) *Loader {
	return &Loader{
		dirs:     dirs,
		patterns: []string{"**/*.md"},
		log:      logger.Default().WithPrefix("guide"),
	}
}

// WithPatterns sets the glob patterns (doublestar syntax) a document
// path must match, relative to its directory root.
func (l *Loader) WithPatterns(patterns ...string) *Loader {
	if len(patterns) > 0 {
		l.patterns = patterns
	}
	return l
}

// WithIgnore sets glob patterns for documents to skip.
func (l *Loader) WithIgnore(patterns ...string) *Loader {
	l.ignore = patterns
	return l
}

// WithDefaultScope sets the scope for documents that do not declare one.
func (l *Loader) WithDefaultScope(scope rules.Scope) *Loader {
	l.defaultScope = scope
	return l
}

// WithLogger sets the logger used for progress and skip messages.
func (l *Loader) WithLogger(log *logger.Logger) *Loader {
	l.log = log.WithPrefix("guide")
	return l
}

// Load parses every matching document and returns the extracted rules
// in walk order.
func (l *Loader) Load() ([]rules.Rule, error) {
	var allRules []rules.Rule
	seen := make(map[string]string) // content hash -> first path

	for _, dir := range l.dirs {
		loaded, err := l.loadDir(dir, seen)
		if err != nil {
			if os.IsNotExist(err) {
				l.log.Warn("guide directory %s does not exist, skipping", dir)
				continue
			}
			return nil, err
		}
		allRules = append(allRules, loaded...)
	}

	return allRules, nil
}

func (l *Loader) loadDir(dir string, seen map[string]string) ([]rules.Rule, error) {
	var loaded []rules.Rule

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !l.matches(rel) {
			return nil
		}

		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return err
		}
		extracted, err := l.extract(path, string(content), seen)
		if err != nil {
			return err
		}
		loaded = append(loaded, extracted...)
		return nil
	})

	return loaded, err
}

// matches reports whether a document path passes the include and
// ignore patterns.
func (l *Loader) matches(rel string) bool {
	if !strings.HasSuffix(rel, ".md") {
		return false
	}

	for _, pattern := range l.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}

	for _, pattern := range l.patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// LoadFile parses a single document and extracts its rules.
func (l *Loader) LoadFile(path string) ([]rules.Rule, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return l.extract(path, string(content), nil)
}

// extract parses one document and extracts its rules. With a non-nil
// seen map, documents whose content hash was already loaded are
// skipped so a copied guide does not produce duplicate rule ids.
func (l *Loader) extract(path, content string, seen map[string]string) ([]rules.Rule, error) {
	doc, err := Parse(path, content)
	if err != nil {
		return nil, err
	}

	if seen != nil {
		if first, ok := seen[doc.Hash]; ok {
			l.log.Debug("skipping %s, identical to %s", path, first)
			return nil, nil
		}
		seen[doc.Hash] = path
	}

	extracted, err := ExtractRules(doc, l.defaultScope)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}

	l.log.Debug("extracted %d rules from %s", len(extracted), path)
	return extracted, nil
}

// LoadFS is LoadFile over an fs.FS, for embedded or test corpora.
func (l *Loader) LoadFS(fsys fs.FS) ([]rules.Rule, error) {
	var loaded []rules.Rule
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !l.matches(path) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		extracted, err := l.extract(path, string(content), seen)
		if err != nil {
			return err
		}
		loaded = append(loaded, extracted...)
		return nil
	})

	return loaded, err
}
