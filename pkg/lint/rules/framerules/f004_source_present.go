package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-004",
		Name:        "frame.source-present",
		Level:       lint.LevelFrame,
		Description: "Frame must have a source object",
		Severity:    lint.SeverityError,
		Check:       checkSourcePresent,
	})
}

func checkSourcePresent(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if f.Source != nil {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-004",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Frame %q is missing source", f.Name),
			Path:     fmt.Sprintf("frames[%d].source", i),
			Fix:      "Add a source with either 'relation' or 'path'",
		})
	}
	return diagnostics
}
