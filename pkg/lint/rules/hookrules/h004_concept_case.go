package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-004",
		Name:        "hook.concept-case",
		Level:       lint.LevelHook,
		Description: "Concept and qualifier must be lower_snake_case",
		Severity:    lint.SeverityError,
		Check:       checkConceptCase,
	})
}

func checkConceptCase(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			if h.Concept != "" && !manifest.IsLowerSnakeCase(h.Concept) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "HOOK-004",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Invalid concept: %q. Must be lower_snake_case", h.Concept),
					Path:     fmt.Sprintf("frames[%d].hooks[%d].concept", i, j),
					Fix:      "Use format like 'customer', 'order_line', 'employee'",
				})
			}
			if h.Qualifier != "" && !manifest.IsLowerSnakeCase(h.Qualifier) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "HOOK-004",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Invalid qualifier: %q. Must be lower_snake_case", h.Qualifier),
					Path:     fmt.Sprintf("frames[%d].hooks[%d].qualifier", i, j),
					Fix:      "Use format like 'manager', 'ship_to', 'bill_to'",
				})
			}
		}
	}
	return diagnostics
}
