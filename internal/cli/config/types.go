// Package config provides configuration management for the hookdot CLI.
//
// Configuration merges four layers, lowest to highest precedence:
// built-in defaults, a hookdot.yaml file (searched upward from the working
// directory), HOOKDOT_* environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output  string      `koanf:"output"`
	Verbose bool        `koanf:"verbose"`
	NoColor bool        `koanf:"no_color"`
	Lint    *LintConfig `koanf:"lint"`
}

// LintConfig holds validation settings from the config file.
type LintConfig struct {
	// Disabled lists rule IDs to skip, e.g. ["FRAME-W02"].
	Disabled []string `koanf:"disabled"`

	// Warnings toggles WARN-severity rules. Nil means enabled.
	Warnings *bool `koanf:"warnings"`
}

// WarningsEnabled reports whether WARN rules should run.
func (l *LintConfig) WarningsEnabled() bool {
	if l == nil || l.Warnings == nil {
		return true
	}
	return *l.Warnings
}

// Default configuration values.
const (
	DefaultOutput = "auto" // auto-detect: TTY=text, non-TTY=markdown
)

// Config file names searched in order.
var configFileNames = []string{"hookdot.yaml", "hookdot.yml"}
