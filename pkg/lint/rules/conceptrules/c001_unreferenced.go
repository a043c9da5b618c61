package conceptrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CONCEPT-001",
		Name:        "concept.referenced",
		Level:       lint.LevelConcept,
		Description: "Declared concept must be referenced by at least one hook",
		Severity:    lint.SeverityError,
		Check:       checkReferenced,
	})
}

func checkReferenced(ctx *lint.Context) []lint.Diagnostic {
	used := manifest.DeriveConcepts(ctx.Manifest)
	var diagnostics []lint.Diagnostic
	for i, c := range ctx.Manifest.Concepts {
		if used[c.Name] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "CONCEPT-001",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Concept %q is declared but not used by any hook", c.Name),
			Path:     fmt.Sprintf("concepts[%d]", i),
			Fix:      "Remove the concept declaration or add a hook that references it",
		})
	}
	return diagnostics
}
