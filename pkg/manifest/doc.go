// Package manifest defines the HOOK manifest data model and its derived
// registries.
//
// A manifest describes data-warehouse modeling artifacts: frames (datasets
// bound to a source), hooks (business-key column descriptors), concepts
// (business entities) and key sets (canonical identity namespaces derived
// from hooks).
//
// All types are plain value objects constructed once from parsed input and
// never mutated. Derived registries (key sets, concept usage, the hook index)
// are recomputed on demand from the manifest; they are views, not stored
// state.
//
// Validation lives in pkg/lint; this package only carries the model, the
// naming-grammar predicates, the registry derivation functions and YAML/JSON
// I/O.
package manifest
