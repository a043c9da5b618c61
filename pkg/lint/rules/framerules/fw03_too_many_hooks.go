package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

// maxHooks is the advisory ceiling before a frame should be split.
const maxHooks = 20

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-W03",
		Name:        "frame.hook-count",
		Level:       lint.LevelFrame,
		Description: "Frame has more than 20 hooks",
		Severity:    lint.SeverityWarn,
		Check:       checkHookCount,
	})
}

func checkHookCount(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		n := len(f.Hooks)
		if n <= maxHooks {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-W03",
			Severity: lint.SeverityWarn,
			Message:  fmt.Sprintf("Frame %q has %d hooks (exceeds %d). Consider splitting into multiple frames", f.Name, n, maxHooks),
			Path:     fmt.Sprintf("frames[%d].hooks", i),
			Fix:      "Group related hooks into separate frames by concern",
		})
	}
	return diagnostics
}
