package manifest

import "time"

// Default naming settings applied when a manifest omits the settings section.
const (
	DefaultHookPrefix     = "_hk__"
	DefaultWeakHookPrefix = "_wk__"
	DefaultDelimiter      = "|"
)

// Manifest is the root document describing a set of modeled frames and the
// business concepts their hooks identify.
type Manifest struct {
	ManifestVersion string    `yaml:"manifest_version" json:"manifest_version"`
	SchemaVersion   string    `yaml:"schema_version" json:"schema_version"`
	Metadata        *Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Settings        Settings  `yaml:"settings,omitempty" json:"settings,omitzero"`
	Frames          []Frame   `yaml:"frames" json:"frames"`
	Concepts        []Concept `yaml:"concepts,omitempty" json:"concepts,omitempty"`

	// KeySets is an auto-derived section written by authoring tooling
	// (hookdot init). It is never user-authored and is not part of
	// KnownFields, so MANIFEST-W02 flags it as an advisory when present;
	// DeriveKeySetEntries recomputes it from the hooks.
	KeySets []KeySet `yaml:"keysets,omitempty" json:"keysets,omitempty"`
}

// KnownFields is the set of recognized top-level manifest keys. Anything
// else in the raw document is reported by MANIFEST-W02 as a possible
// schema-version mismatch.
var KnownFields = map[string]bool{
	"manifest_version": true,
	"schema_version":   true,
	"metadata":         true,
	"settings":         true,
	"frames":           true,
	"concepts":         true,
}

// Metadata carries optional descriptive fields for a manifest.
type Metadata struct {
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Owner       string    `yaml:"owner,omitempty" json:"owner,omitempty"`
	Version     string    `yaml:"version,omitempty" json:"version,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt   time.Time `yaml:"created_at,omitempty" json:"created_at,omitzero"`
	UpdatedAt   time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// Settings holds the hook naming conventions for a manifest.
type Settings struct {
	HookPrefix     string `yaml:"hook_prefix,omitempty" json:"hook_prefix,omitempty"`
	WeakHookPrefix string `yaml:"weak_hook_prefix,omitempty" json:"weak_hook_prefix,omitempty"`
	Delimiter      string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
}

// DefaultSettings returns the conventional HOOK naming settings.
func DefaultSettings() Settings {
	return Settings{
		HookPrefix:     DefaultHookPrefix,
		WeakHookPrefix: DefaultWeakHookPrefix,
		Delimiter:      DefaultDelimiter,
	}
}

// applyDefaults fills unset settings fields with the conventional values.
func (s *Settings) applyDefaults() {
	if s.HookPrefix == "" {
		s.HookPrefix = DefaultHookPrefix
	}
	if s.WeakHookPrefix == "" {
		s.WeakHookPrefix = DefaultWeakHookPrefix
	}
	if s.Delimiter == "" {
		s.Delimiter = DefaultDelimiter
	}
}

// IsDefault reports whether the settings match the conventional defaults.
func (s Settings) IsDefault() bool {
	return s == DefaultSettings()
}
