package manifestrules

import (
	"fmt"
	"sort"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MANIFEST-W02",
		Name:        "manifest.unknown-fields",
		Level:       lint.LevelManifest,
		Description: "Unknown top-level fields in the manifest document",
		Severity:    lint.SeverityWarn,
		Check:       checkUnknownFields,
	})
}

// checkUnknownFields flags top-level keys outside the known schema. It needs
// the raw document mapping; callers validating an already-typed manifest get
// no findings here.
func checkUnknownFields(ctx *lint.Context) []lint.Diagnostic {
	if ctx.Raw == nil {
		return nil
	}

	fields := make([]string, 0, len(ctx.Raw))
	for field := range ctx.Raw {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var diagnostics []lint.Diagnostic
	for _, field := range fields {
		if manifest.KnownFields[field] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "MANIFEST-W02",
			Severity: lint.SeverityWarn,
			Message:  fmt.Sprintf("Unknown field %q in manifest root. This may be from a newer schema version", field),
			Path:     field,
			Fix:      "Check schema version compatibility or remove unknown field",
		})
	}
	return diagnostics
}
