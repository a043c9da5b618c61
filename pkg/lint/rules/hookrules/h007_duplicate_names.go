package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-007",
		Name:        "hook.duplicate-names",
		Level:       lint.LevelFrame,
		Description: "Hook names must be unique within a frame",
		Severity:    lint.SeverityError,
		Check:       checkDuplicateNames,
	})
}

func checkDuplicateNames(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		seen := make(map[string]bool)
		for j, h := range f.Hooks {
			if seen[h.Name] {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "HOOK-007",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Duplicate hook name %q in frame %q", h.Name, f.Name),
					Path:     fmt.Sprintf("frames[%d].hooks[%d].name", i, j),
					Fix:      "Rename one of the hooks, e.g. add a qualifier suffix",
				})
			}
			seen[h.Name] = true
		}
	}
	return diagnostics
}
