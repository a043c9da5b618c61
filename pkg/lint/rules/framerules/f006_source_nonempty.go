package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-006",
		Name:        "frame.source-nonempty",
		Level:       lint.LevelFrame,
		Description: "Source relation/path must be a non-empty string",
		Severity:    lint.SeverityError,
		Check:       checkSourceNonempty,
	})
}

func checkSourceNonempty(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if f.Source == nil {
			continue
		}
		if f.Source.Relation != nil && *f.Source.Relation == "" {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "FRAME-006",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Frame %q source.relation is empty", f.Name),
				Path:     fmt.Sprintf("frames[%d].source.relation", i),
				Fix:      "Provide a non-empty relation value (e.g., 'psa.customer')",
			})
		}
		if f.Source.Path != nil && *f.Source.Path == "" {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "FRAME-006",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Frame %q source.path is empty", f.Name),
				Path:     fmt.Sprintf("frames[%d].source.path", i),
				Fix:      "Provide a non-empty path value (e.g., '//server/qvd/customer.qvd')",
			})
		}
	}
	return diagnostics
}
