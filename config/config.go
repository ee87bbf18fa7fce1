// Package config handles all configuration management for rulebook.
//
// Configuration is loaded from multiple sources in order of precedence:
// 1. Environment variables (RULEBOOK_*)
// 2. Configuration file (.rulebook.yaml)
// 3. Default values (lowest priority)
package config

// Config is the main configuration structure for rulebook.
type Config struct {
	// Docs configures where Markdown style-guide documents are read from
	Docs DocsConfig `mapstructure:"docs" yaml:"docs"`

	// Rules configures YAML rule-file loading and rule selection
	Rules RulesConfig `mapstructure:"rules" yaml:"rules"`

	// Log configures logging
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DocsConfig configures the Markdown guide loader.
type DocsConfig struct {
	// Dirs are the directories searched for style-guide documents
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`

	// Patterns are doublestar globs a document must match (default **/*.md)
	Patterns []string `mapstructure:"patterns" yaml:"patterns"`

	// IgnorePatterns are doublestar globs for documents to skip
	IgnorePatterns []string `mapstructure:"ignore_patterns" yaml:"ignore_patterns"`

	// DefaultScope is assigned to documents that declare no scope
	DefaultScope string `mapstructure:"default_scope" yaml:"default_scope"`
}

// RulesConfig configures rule-file loading and selection.
type RulesConfig struct {
	// Dirs are directories containing YAML rule files
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`

	// IncludeDefaults loads the embedded default rule sets
	IncludeDefaults bool `mapstructure:"include_defaults" yaml:"include_defaults"`

	// Preset is the rule preset to apply: "standard", "minimal"
	Preset string `mapstructure:"preset" yaml:"preset"`

	// Enabled lists rule IDs to force-enable
	Enabled []string `mapstructure:"enabled" yaml:"enabled"`

	// Disabled lists rule IDs to disable
	Disabled []string `mapstructure:"disabled" yaml:"disabled"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Rules.Preset != "" {
		validPresets := map[string]bool{"standard": true, "minimal": true}
		if !validPresets[c.Rules.Preset] {
			return &ValidationError{Field: "rules.preset", Message: "invalid preset, must be one of: standard, minimal"}
		}
	}

	if c.Log.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[c.Log.Level] {
			return &ValidationError{Field: "log.level", Message: "invalid level, must be one of: debug, info, warn, error"}
		}
	}

	if !c.Rules.IncludeDefaults && len(c.Rules.Dirs) == 0 && len(c.Docs.Dirs) == 0 {
		return &ValidationError{Field: "rules", Message: "no rule sources configured: enable defaults or set rules.dirs/docs.dirs"}
	}

	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "config validation error: " + e.Field + ": " + e.Message
}
