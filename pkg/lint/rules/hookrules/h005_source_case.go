package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-005",
		Name:        "hook.source-case",
		Level:       lint.LevelHook,
		Description: "Source system and tenant must be UPPER_SNAKE_CASE",
		Severity:    lint.SeverityError,
		Check:       checkSourceCase,
	})
}

func checkSourceCase(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			if h.Source != "" && !manifest.IsUpperSnakeCase(h.Source) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "HOOK-005",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Invalid source system: %q. Must be UPPER_SNAKE_CASE", h.Source),
					Path:     fmt.Sprintf("frames[%d].hooks[%d].source", i, j),
					Fix:      "Use format like 'CRM', 'SAP', 'NORTH_AMERICA_ERP'",
				})
			}
			if h.Tenant != "" && !manifest.IsUpperSnakeCase(h.Tenant) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "HOOK-005",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Invalid tenant: %q. Must be UPPER_SNAKE_CASE", h.Tenant),
					Path:     fmt.Sprintf("frames[%d].hooks[%d].tenant", i, j),
					Fix:      "Use format like 'AU', 'EMEA', 'US_WEST'",
				})
			}
		}
	}
	return diagnostics
}
