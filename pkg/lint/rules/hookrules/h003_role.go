package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-003",
		Name:        "hook.role",
		Level:       lint.LevelHook,
		Description: "Hook role must be 'primary' or 'foreign'",
		Severity:    lint.SeverityError,
		Check:       checkRole,
	})
}

func checkRole(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			if h.Role == "" || h.Role.Valid() {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "HOOK-003",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Invalid hook role: %q. Must be 'primary' or 'foreign'", h.Role),
				Path:     fmt.Sprintf("frames[%d].hooks[%d].role", i, j),
				Fix:      "Change role to 'primary' (defines grain) or 'foreign' (references another concept)",
			})
		}
	}
	return diagnostics
}
