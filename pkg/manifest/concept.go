package manifest

// Concept is a business entity identified by one or more hooks. The frames
// list is informational back-reference data populated by authoring tooling.
type Concept struct {
	Name        string   `yaml:"name" json:"name"`
	Frames      []string `yaml:"frames,omitempty" json:"frames,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Examples    []string `yaml:"examples,omitempty" json:"examples,omitempty"`
	IsWeak      bool     `yaml:"is_weak,omitempty" json:"is_weak,omitempty"`
}

// KeySet is the derived canonical identity namespace under which a hook's
// values are unique: CONCEPT[~QUALIFIER]@SOURCE[~TENANT], upper case.
// Key sets are never user-authored.
type KeySet struct {
	Name    string   `yaml:"name" json:"name"`
	Concept string   `yaml:"concept" json:"concept"`
	Frames  []string `yaml:"frames,omitempty" json:"frames,omitempty"`
}
