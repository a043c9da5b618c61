package framerules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-005",
		Name:        "frame.source-exclusivity",
		Level:       lint.LevelFrame,
		Description: "Source must have exactly one of relation or path",
		Severity:    lint.SeverityError,
		Check:       checkSourceExclusivity,
	})
}

func checkSourceExclusivity(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		if f.Source == nil {
			continue
		}
		hasRelation := f.Source.Relation != nil
		hasPath := f.Source.Path != nil

		switch {
		case hasRelation && hasPath:
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "FRAME-005",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Frame %q source has both relation and path. Only one is allowed", f.Name),
				Path:     fmt.Sprintf("frames[%d].source", i),
				Fix:      "Remove either 'relation' or 'path' from source",
			})
		case !hasRelation && !hasPath:
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "FRAME-005",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Frame %q source has neither relation nor path", f.Name),
				Path:     fmt.Sprintf("frames[%d].source", i),
				Fix:      "Add either 'relation' or 'path' to source",
			})
		}
	}
	return diagnostics
}
