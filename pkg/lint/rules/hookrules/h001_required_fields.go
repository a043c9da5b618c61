package hookrules

import (
	"fmt"
	"strings"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-001",
		Name:        "hook.required-fields",
		Level:       lint.LevelHook,
		Description: "Hook must have name, role, concept, source, and expr",
		Severity:    lint.SeverityError,
		Check:       checkRequiredFields,
	})
}

func checkRequiredFields(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			var missing []string
			if h.Name == "" {
				missing = append(missing, "name")
			}
			if h.Role == "" {
				missing = append(missing, "role")
			}
			if h.Concept == "" {
				missing = append(missing, "concept")
			}
			if h.Source == "" {
				missing = append(missing, "source")
			}
			if h.Expr == "" {
				missing = append(missing, "expr")
			}
			if len(missing) == 0 {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "HOOK-001",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Hook in frame %q is missing required fields: %s", f.Name, strings.Join(missing, ", ")),
				Path:     fmt.Sprintf("frames[%d].hooks[%d]", i, j),
				Fix:      "Provide all of: name, role, concept, source, expr",
			})
		}
	}
	return diagnostics
}
