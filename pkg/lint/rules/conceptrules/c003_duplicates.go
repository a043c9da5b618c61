package conceptrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CONCEPT-003",
		Name:        "concept.duplicates",
		Level:       lint.LevelManifest,
		Description: "Concept names must be unique",
		Severity:    lint.SeverityError,
		Check:       checkDuplicates,
	})
}

func checkDuplicates(ctx *lint.Context) []lint.Diagnostic {
	first := make(map[string]int)
	var diagnostics []lint.Diagnostic
	for i, c := range ctx.Manifest.Concepts {
		if j, seen := first[c.Name]; seen {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "CONCEPT-003",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Duplicate concept %q (first declared at concepts[%d])", c.Name, j),
				Path:     fmt.Sprintf("concepts[%d].name", i),
				Fix:      "Remove the duplicate declaration or merge the two entries",
			})
			continue
		}
		first[c.Name] = i
	}
	return diagnostics
}
