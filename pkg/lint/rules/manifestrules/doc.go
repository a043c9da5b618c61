// Package manifestrules provides document-level validation rules.
//
//   - MANIFEST-001: manifest_version must be strict semver
//   - MANIFEST-002: schema_version must be strict semver
//   - MANIFEST-W01: more than 50 frames
//   - MANIFEST-W02: unknown top-level fields in the raw document
package manifestrules
