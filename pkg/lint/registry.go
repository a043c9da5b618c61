package lint

import (
	"sort"
	"sync"
)

// Rule levels mirror the manifest structure a rule inspects.
const (
	LevelManifest = "manifest"
	LevelFrame    = "frame"
	LevelHook     = "hook"
	LevelConcept  = "concept"
)

// Check analyzes a manifest context and returns zero or more diagnostics.
// Checks walk the manifest themselves and build locator paths such as
// frames[0].hooks[1].name.
type Check func(ctx *Context) []Diagnostic

// RuleDef is a data-driven rule definition. Rules are stateless; all context
// arrives through the check function's parameter.
type RuleDef struct {
	ID          string   // stable identifier, e.g. "HOOK-002"
	Name        string   // short name, e.g. "hook.name-grammar"
	Level       string   // manifest, frame, hook or concept
	Description string   // what the rule enforces
	Severity    Severity // ERROR or WARN
	Check       Check
}

// globalRegistry holds every registered rule, keyed by ID.
var globalRegistry = &registry{rules: make(map[string]RuleDef)}

type registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef
}

// Register adds a rule to the global registry. Call from init() in rule
// packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// All returns every registered rule sorted by ID.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, r := range globalRegistry.rules {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	r, ok := globalRegistry.rules[id]
	return r, ok
}

// GetByLevel returns all rules at the given level, sorted by ID.
func GetByLevel(level string) []RuleDef {
	var rules []RuleDef
	for _, r := range All() {
		if r.Level == level {
			rules = append(rules, r)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
