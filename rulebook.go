// Package rulebook loads an organization's coding-style conventions
// into an immutable in-memory registry and answers read-only queries
// about the rules that apply to a language scope.
//
// Rules come from two kinds of sources: YAML rule files (including the
// embedded defaults) and Markdown style-guide documents, from which
// rules are extracted heuristically. Loading happens once, up front,
// and is all-or-nothing: a malformed rule or a duplicate id aborts the
// whole load so callers never see a half-built registry.
package rulebook

import (
	"fmt"

	"github.com/rulebook-dev/rulebook/config"
	"github.com/rulebook-dev/rulebook/guide"
	"github.com/rulebook-dev/rulebook/logger"
	"github.com/rulebook-dev/rulebook/query"
	"github.com/rulebook-dev/rulebook/registry"
	"github.com/rulebook-dev/rulebook/rules"
)

// Load builds the rule registry described by cfg and returns a query
// service over it. A nil cfg loads the defaults.
func Load(cfg *config.Config) (*query.Service, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Default().WithPrefix("rulebook")
	log.SetLevel(logger.ParseLevel(cfg.Log.Level))

	loaded, err := loadSources(cfg, log)
	if err != nil {
		return nil, err
	}

	selected, err := selectRules(loaded, cfg.Rules)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := reg.RegisterAll(selected); err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	log.Info("registry built with %d rules across %d scopes", reg.Len(), len(reg.Scopes()))
	return query.New(reg), nil
}

// loadSources gathers rules from YAML rule files and Markdown guides.
// Later sources override earlier ones per (scope, id).
func loadSources(cfg *config.Config, log *logger.Logger) ([]rules.Rule, error) {
	ruleLoader := rules.NewLoader(cfg.Rules.Dirs...)
	if !cfg.Rules.IncludeDefaults {
		ruleLoader.SkipDefaults()
	}

	fromFiles, err := ruleLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading rule files: %w", err)
	}
	log.Debug("loaded %d rules from rule files", len(fromFiles))

	if len(cfg.Docs.Dirs) == 0 {
		return fromFiles, nil
	}

	guideLoader := guide.NewLoader(cfg.Docs.Dirs...).
		WithPatterns(cfg.Docs.Patterns...).
		WithIgnore(cfg.Docs.IgnorePatterns...).
		WithDefaultScope(rules.NormalizeScope(cfg.Docs.DefaultScope)).
		WithLogger(log)

	fromGuides, err := guideLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading guide documents: %w", err)
	}
	log.Debug("extracted %d rules from guide documents", len(fromGuides))

	return rules.MergeRuleSets(fromFiles, fromGuides), nil
}

// selectRules applies the configured preset and enable/disable lists.
func selectRules(loaded []rules.Rule, cfg config.RulesConfig) ([]rules.Rule, error) {
	selected := loaded

	if cfg.Preset != "" {
		preset, err := rules.LoadPreset(cfg.Preset)
		if err != nil {
			return nil, err
		}
		selected = rules.ApplyPreset(selected, preset)
	}

	if len(cfg.Enabled) == 0 && len(cfg.Disabled) == 0 {
		return selected, nil
	}

	enableSet := make(map[string]bool, len(cfg.Enabled))
	for _, id := range cfg.Enabled {
		enableSet[id] = true
	}
	disableSet := make(map[string]bool, len(cfg.Disabled))
	for _, id := range cfg.Disabled {
		disableSet[id] = true
	}

	for i := range selected {
		if enableSet[selected[i].ID] {
			selected[i].Enabled = true
		}
		if disableSet[selected[i].ID] {
			selected[i].Enabled = false
		}
	}

	return selected, nil
}
