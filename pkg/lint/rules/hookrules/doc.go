// Package hookrules provides hook-level validation rules.
//
//   - HOOK-001: required field is missing
//   - HOOK-002: hook name fails the hook naming grammar
//   - HOOK-003: role is not primary or foreign
//   - HOOK-004: concept or qualifier is not lower_snake_case
//   - HOOK-005: source or tenant is not UPPER_SNAKE_CASE
//   - HOOK-006: expression is empty or contains forbidden SQL keywords
//   - HOOK-007: duplicate hook name within a frame
//   - HOOK-W01: weak-prefixed hook targets a concept not declared weak
package hookrules
