// Package conceptrules provides concept-level validation rules.
//
//   - CONCEPT-001: declared concept is never referenced by any hook
//   - CONCEPT-002: concept fields are well typed
//   - CONCEPT-003: duplicate concept declaration
//   - CONCEPT-W01: concept count exceeds the advisory ceiling
package conceptrules
