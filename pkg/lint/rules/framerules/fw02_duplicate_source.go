package framerules

import (
	"fmt"
	"strings"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FRAME-W02",
		Name:        "frame.duplicate-source",
		Level:       lint.LevelManifest,
		Description: "Multiple frames read from the same source",
		Severity:    lint.SeverityWarn,
		Check:       checkDuplicateSource,
	})
}

func checkDuplicateSource(ctx *lint.Context) []lint.Diagnostic {
	// First-seen order keeps the output deterministic.
	var order []string
	frames := make(map[string][]string)
	for _, f := range ctx.Manifest.Frames {
		key := f.Source.Value()
		if key == "" {
			continue
		}
		if _, seen := frames[key]; !seen {
			order = append(order, key)
		}
		frames[key] = append(frames[key], f.Name)
	}

	var diagnostics []lint.Diagnostic
	for _, source := range order {
		names := frames[source]
		if len(names) < 2 {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FRAME-W02",
			Severity: lint.SeverityWarn,
			Message:  fmt.Sprintf("Source %q is used by multiple frames: %s", source, strings.Join(names, ", ")),
			Path:     "frames",
			Fix:      "Review if these frames should share a source or be consolidated",
		})
	}
	return diagnostics
}
