package manifestrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MANIFEST-002",
		Name:        "manifest.schema-semver",
		Level:       lint.LevelManifest,
		Description: "schema_version must be valid semver (MAJOR.MINOR.PATCH)",
		Severity:    lint.SeverityError,
		Check:       checkSchemaVersion,
	})
}

func checkSchemaVersion(ctx *lint.Context) []lint.Diagnostic {
	if manifest.IsValidSemver(ctx.Manifest.SchemaVersion) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MANIFEST-002",
		Severity: lint.SeverityError,
		Message: fmt.Sprintf("Invalid schema_version: %q. Must be valid semver (MAJOR.MINOR.PATCH)",
			ctx.Manifest.SchemaVersion),
		Path: "schema_version",
		Fix:  "Use format like '1.0.0'",
	}}
}
