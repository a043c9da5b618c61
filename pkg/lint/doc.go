// Package lint validates HOOK manifests against the methodology's rule set
// and returns ordered diagnostics.
//
// # Architecture
//
// Rules are independent, stateless check functions registered with a global
// registry via init() functions. Importing the rules aggregate registers
// every built-in rule:
//
//	import _ "github.com/hookstack-labs/hookdot/pkg/lint/rules"
//
// The Analyzer composes every registered rule over a manifest Context and
// sorts the accumulated diagnostics by (severity, rule ID, path): errors
// before warnings, then lexical order. The sort is the only ordering
// contract; registration order does not matter.
//
// # Error semantics
//
// Rule violations are data, not control flow: the analyzer never returns an
// error and never short-circuits. Structurally malformed documents are
// rejected by the parsing layer in pkg/manifest before a Context can be
// built.
//
// # Rule levels
//
//   - MANIFEST: document-wide checks (versions, scale, unknown fields)
//   - FRAME: per-frame checks (naming, source, grain)
//   - HOOK: per-hook checks (naming, casing, expression)
//   - CONCEPT: declared-concept checks (usage, duplicates)
package lint
