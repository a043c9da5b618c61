package manifestrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MANIFEST-001",
		Name:        "manifest.version-semver",
		Level:       lint.LevelManifest,
		Description: "manifest_version must be valid semver (MAJOR.MINOR.PATCH)",
		Severity:    lint.SeverityError,
		Check:       checkManifestVersion,
	})
}

func checkManifestVersion(ctx *lint.Context) []lint.Diagnostic {
	if manifest.IsValidSemver(ctx.Manifest.ManifestVersion) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MANIFEST-001",
		Severity: lint.SeverityError,
		Message: fmt.Sprintf("Invalid manifest_version: %q. Must be valid semver (MAJOR.MINOR.PATCH)",
			ctx.Manifest.ManifestVersion),
		Path: "manifest_version",
		Fix:  "Use format like '1.0.0', '0.1.0', or '2.1.3'",
	}}
}
