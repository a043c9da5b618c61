// Package rules registers every built-in manifest validation rule.
// Import this package to register all rules with the global registry.
package rules

import (
	// Blank imports trigger init() functions that register rules with the global registry.
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules/conceptrules"  // registers CONCEPT-* rules
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules/framerules"    // registers FRAME-* rules
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules/hookrules"     // registers HOOK-* rules
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules/manifestrules" // registers MANIFEST-* rules
)
