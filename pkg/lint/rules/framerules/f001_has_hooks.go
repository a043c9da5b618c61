package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-001",
		Name:        "frame.has-hooks",
		Level:       lint.LevelFrame,
		Description: "Frame must have at least one hook",
		Severity:    lint.SeverityError,
		Check:       checkHasHooks,
	})
}

func checkHasHooks(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if len(f.Hooks) > 0 {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-001",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Frame %q has no hooks", f.Name),
			Path:     fmt.Sprintf("frames[%d].hooks", i),
			Fix:      "Add at least one hook to the frame",
		})
	}
	return diagnostics
}
