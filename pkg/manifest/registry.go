package manifest

import (
	"sort"
	"strings"
)

// HookRef ties a hook to the frame that declares it.
type HookRef struct {
	Frame string
	Hook  Hook
}

// BuildKeySet composes the canonical key-set string for a hook:
// CONCEPT[~QUALIFIER]@SOURCE[~TENANT], upper case. Qualifier and tenant
// segments appear only when set.
func BuildKeySet(h Hook) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(h.Concept))
	if h.Qualifier != "" {
		b.WriteByte('~')
		b.WriteString(strings.ToUpper(h.Qualifier))
	}
	b.WriteByte('@')
	b.WriteString(strings.ToUpper(h.Source))
	if h.Tenant != "" {
		b.WriteByte('~')
		b.WriteString(strings.ToUpper(h.Tenant))
	}
	return b.String()
}

// DeriveKeySets returns the set of key-set strings over every hook in every
// frame. Duplicates across frames collapse by value.
func DeriveKeySets(m *Manifest) map[string]bool {
	keySets := make(map[string]bool)
	for _, f := range m.Frames {
		for _, h := range f.Hooks {
			keySets[BuildKeySet(h)] = true
		}
	}
	return keySets
}

// DeriveConcepts returns the set of concept names referenced by any hook.
func DeriveConcepts(m *Manifest) map[string]bool {
	concepts := make(map[string]bool)
	for _, f := range m.Frames {
		for _, h := range f.Hooks {
			concepts[h.Concept] = true
		}
	}
	return concepts
}

// DeriveHookRegistry indexes every hook by its literal name, keeping the
// declaring frame alongside. The same name appearing in several frames marks
// a shared business key; the index only records it, rules decide whether to
// report.
func DeriveHookRegistry(m *Manifest) map[string][]HookRef {
	registry := make(map[string][]HookRef)
	for _, f := range m.Frames {
		for _, h := range f.Hooks {
			registry[h.Name] = append(registry[h.Name], HookRef{Frame: f.Name, Hook: h})
		}
	}
	return registry
}

// DeriveKeySetEntries builds the keysets section for authoring flows: one
// entry per distinct key set, sorted by name, with back-references to the
// frames whose hooks derive it.
func DeriveKeySetEntries(m *Manifest) []KeySet {
	type entry struct {
		concept string
		frames  map[string]bool
	}
	byName := make(map[string]*entry)
	for _, f := range m.Frames {
		for _, h := range f.Hooks {
			name := BuildKeySet(h)
			e, ok := byName[name]
			if !ok {
				e = &entry{concept: h.Concept, frames: make(map[string]bool)}
				byName[name] = e
			}
			e.frames[f.Name] = true
		}
	}

	entries := make([]KeySet, 0, len(byName))
	for name, e := range byName {
		entries = append(entries, KeySet{
			Name:    name,
			Concept: e.concept,
			Frames:  sortedKeys(e.frames),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// DeriveConceptEntries builds the concepts section for authoring flows: one
// entry per concept used by any hook, sorted by name, with frame
// back-references. Descriptions are left empty for user enrichment.
func DeriveConceptEntries(m *Manifest) []Concept {
	frames := make(map[string]map[string]bool)
	for _, f := range m.Frames {
		for _, h := range f.Hooks {
			if frames[h.Concept] == nil {
				frames[h.Concept] = make(map[string]bool)
			}
			frames[h.Concept][f.Name] = true
		}
	}

	entries := make([]Concept, 0, len(frames))
	for name, used := range frames {
		entries = append(entries, Concept{Name: name, Frames: sortedKeys(used)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
