package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-002",
		Name:        "hook.name-grammar",
		Level:       lint.LevelHook,
		Description: "Hook name must follow the hook naming grammar",
		Severity:    lint.SeverityError,
		Check:       checkHookName,
	})
}

func checkHookName(ctx *lint.Context) []lint.Diagnostic {
	settings := ctx.Settings()
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			if manifest.IsValidHookName(h.Name) {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "HOOK-002",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Invalid hook name: %q. Must match pattern %s<concept> or %s<concept>__<qualifier>", h.Name, settings.HookPrefix, settings.HookPrefix),
				Path:     fmt.Sprintf("frames[%d].hooks[%d].name", i, j),
				Fix:      fmt.Sprintf("Use format like '%scustomer' or '%sorder__line'", settings.HookPrefix, settings.HookPrefix),
			})
		}
	}
	return diagnostics
}
