package lint

import "github.com/hookstack-labs/hookdot/pkg/manifest"

// Context provides all data a rule needs: the typed manifest and, when
// available, the raw top-level mapping for unknown-field detection. Rules
// never mutate it.
type Context struct {
	Manifest *manifest.Manifest

	// Raw is the original untyped document mapping. Nil when the caller
	// validates an already-typed manifest; MANIFEST-W02 is skipped then.
	Raw map[string]any
}

// NewContext creates a validation context. raw may be nil.
func NewContext(m *manifest.Manifest, raw map[string]any) *Context {
	return &Context{Manifest: m, Raw: raw}
}

// Settings returns the manifest's naming settings with defaults applied.
func (c *Context) Settings() manifest.Settings {
	s := c.Manifest.Settings
	if s.HookPrefix == "" || s.WeakHookPrefix == "" || s.Delimiter == "" {
		def := manifest.DefaultSettings()
		if s.HookPrefix == "" {
			s.HookPrefix = def.HookPrefix
		}
		if s.WeakHookPrefix == "" {
			s.WeakHookPrefix = def.WeakHookPrefix
		}
		if s.Delimiter == "" {
			s.Delimiter = def.Delimiter
		}
	}
	return s
}

// ConceptByName finds a declared concept. Returns false when the manifest
// does not declare it.
func (c *Context) ConceptByName(name string) (manifest.Concept, bool) {
	for _, con := range c.Manifest.Concepts {
		if con.Name == name {
			return con, true
		}
	}
	return manifest.Concept{}, false
}
