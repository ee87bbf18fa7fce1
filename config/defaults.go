package config

// DefaultConfig returns a Config with sensible default values.
// The embedded rule sets make the defaults usable with no file at all.
func DefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Patterns:       []string{"**/*.md"},
			IgnorePatterns: DefaultIgnorePatterns(),
			DefaultScope:   "general",
		},
		Rules: RulesConfig{
			IncludeDefaults: true,
			Preset:          "standard",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultIgnorePatterns returns document patterns that are prose but
// never style guidance.
func DefaultIgnorePatterns() []string {
	return []string{
		"**/node_modules/**",
		"**/vendor/**",
		"**/CHANGELOG*.md",
		"**/LICENSE*.md",
		"**/README.md",
	}
}
