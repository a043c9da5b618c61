// Package framerules provides frame-level validation rules.
//
//   - FRAME-001: frame has no hooks
//   - FRAME-002: frame name fails the <schema>.<table> grammar
//   - FRAME-003: frame has no primary hook
//   - FRAME-004: frame has no source
//   - FRAME-005: source has both or neither of relation/path
//   - FRAME-006: source relation/path is an empty string
//   - FRAME-W02: two or more frames share a source value
//   - FRAME-W03: frame has more than 20 hooks
//
// FRAME-W01 (no primary hook, as an advisory) checks the same condition as
// FRAME-003 and is not registered; callers that suppress errors invoke
// WarnNoPrimary directly.
package framerules
