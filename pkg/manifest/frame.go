package manifest

// HookRole describes how a hook relates to its frame's grain.
type HookRole string

// Hook roles. A frame may carry several primary hooks (composite grain).
const (
	RolePrimary HookRole = "primary" // defines the frame's grain
	RoleForeign HookRole = "foreign" // references another concept's identity
)

// Valid reports whether the role is one of the two defined values.
func (r HookRole) Valid() bool {
	return r == RolePrimary || r == RoleForeign
}

// Source binds a frame to exactly one of a relational object or a file path.
type Source struct {
	Relation *string `yaml:"relation,omitempty" json:"relation,omitempty"`
	Path     *string `yaml:"path,omitempty" json:"path,omitempty"`
}

// Value returns whichever of relation or path is set, or the empty string.
func (s *Source) Value() string {
	if s == nil {
		return ""
	}
	if s.Relation != nil {
		return *s.Relation
	}
	if s.Path != nil {
		return *s.Path
	}
	return ""
}

// Frame is a named dataset being modeled, bound to one source and carrying
// the hooks that define its business keys.
type Frame struct {
	Name        string  `yaml:"name" json:"name"`
	Source      *Source `yaml:"source,omitempty" json:"source,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Hooks       []Hook  `yaml:"hooks" json:"hooks"`
}

// Hook describes how to compute a stable business-key column for a concept
// from the frame's source data.
type Hook struct {
	Name      string   `yaml:"name" json:"name"`
	Role      HookRole `yaml:"role" json:"role"`
	Concept   string   `yaml:"concept" json:"concept"`
	Qualifier string   `yaml:"qualifier,omitempty" json:"qualifier,omitempty"`
	Source    string   `yaml:"source" json:"source"`
	Tenant    string   `yaml:"tenant,omitempty" json:"tenant,omitempty"`
	Expr      string   `yaml:"expr" json:"expr"`
}
