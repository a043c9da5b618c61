package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-003",
		Name:        "frame.primary-hook",
		Level:       lint.LevelFrame,
		Description: "Frame must have at least one primary hook to define its grain",
		Severity:    lint.SeverityError,
		Check:       checkPrimaryHook,
	})
}

func hasPrimary(f manifest.Frame) bool {
	for _, h := range f.Hooks {
		if h.Role == manifest.RolePrimary {
			return true
		}
	}
	return false
}

func checkPrimaryHook(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if hasPrimary(f) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-003",
			Severity: lint.SeverityError,
			Message: fmt.Sprintf(
				"Frame %q has no primary hook. At least one hook must have role='primary' to define the grain", f.Name),
			Path: fmt.Sprintf("frames[%d].hooks", i),
			Fix:  "Change at least one hook's role to 'primary'",
		})
	}
	return diagnostics
}

// WarnNoPrimary is the advisory counterpart of FRAME-003 (FRAME-W01). It is
// not part of the registered rule set; callers that suppress errors can run
// it to keep the no-grain signal visible. Frames without any hooks are not
// flagged (FRAME-001 territory).
func WarnNoPrimary(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if len(f.Hooks) == 0 || hasPrimary(f) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-W01",
			Severity: lint.SeverityWarn,
			Message: fmt.Sprintf(
				"Frame %q has no primary hook. This frame may be a lookup table or needs review", f.Name),
			Path: fmt.Sprintf("frames[%d].hooks", i),
			Fix:  "Add a primary hook or confirm this is intentional for a lookup",
		})
	}
	return diagnostics
}
