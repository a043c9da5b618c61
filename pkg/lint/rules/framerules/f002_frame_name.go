package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-002",
		Name:        "frame.name-grammar",
		Level:       lint.LevelFrame,
		Description: "Frame name must match <schema>.<table> in lower_snake_case",
		Severity:    lint.SeverityError,
		Check:       checkFrameName,
	})
}

func checkFrameName(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if manifest.IsValidFrameName(f.Name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-002",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Invalid frame name: %q. Must match pattern <schema>.<table> in lower_snake_case", f.Name),
			Path:     fmt.Sprintf("frames[%d].name", i),
			Fix:      "Use format like 'frame.customer', 'psa.order', 'staging.order_header'",
		})
	}
	return diagnostics
}
