package lint

import (
	"sort"

	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

// Config controls which rules an Analyzer runs.
type Config struct {
	// IncludeWarnings enables WARN-severity rules.
	IncludeWarnings bool

	// Disabled contains rule IDs to skip.
	Disabled map[string]bool
}

// NewConfig returns the default configuration: warnings on, nothing
// disabled.
func NewConfig() *Config {
	return &Config{IncludeWarnings: true, Disabled: make(map[string]bool)}
}

// Disable marks a rule ID as skipped.
func (c *Config) Disable(id string) {
	if c.Disabled == nil {
		c.Disabled = make(map[string]bool)
	}
	c.Disabled[id] = true
}

// IsDisabled reports whether a rule ID is skipped.
func (c *Config) IsDisabled(id string) bool {
	return c.Disabled[id]
}

// Analyzer runs registered rules against a manifest context.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer. A nil config means defaults.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs every registered, enabled rule and returns the accumulated
// diagnostics sorted by (severity, rule ID, path). It never fails and never
// short-circuits: all applicable rules run and all findings accumulate.
func (a *Analyzer) Analyze(ctx *Context) []Diagnostic {
	if ctx == nil || ctx.Manifest == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range All() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		if rule.Severity == SeverityWarn && !a.config.IncludeWarnings {
			continue
		}
		diagnostics = append(diagnostics, rule.Check(ctx)...)
	}

	Sort(diagnostics)
	return diagnostics
}

// Sort orders diagnostics by the global ordering contract: all errors before
// all warnings, then lexical rule ID, then lexical path.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Severity != diags[j].Severity {
			return diags[i].Severity < diags[j].Severity
		}
		if diags[i].RuleID != diags[j].RuleID {
			return diags[i].RuleID < diags[j].RuleID
		}
		return diags[i].Path < diags[j].Path
	})
}

// ValidateManifest validates a manifest with the default configuration,
// warnings included. raw is the original top-level mapping used for
// unknown-field detection; pass nil to skip it.
//
// The caller must have registered the built-in rules by importing
// pkg/lint/rules (typically via a blank import).
func ValidateManifest(m *manifest.Manifest, raw map[string]any) []Diagnostic {
	return NewAnalyzer(nil).Analyze(NewContext(m, raw))
}

// ValidateManifestErrors validates a manifest with warnings suppressed.
func ValidateManifestErrors(m *manifest.Manifest, raw map[string]any) []Diagnostic {
	cfg := NewConfig()
	cfg.IncludeWarnings = false
	return NewAnalyzer(cfg).Analyze(NewContext(m, raw))
}
