package hookrules

import (
	"fmt"
	"strings"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-W01",
		Name:        "hook.weak-concept",
		Level:       lint.LevelHook,
		Description: "Weak-prefixed hook should target a concept declared as weak",
		Severity:    lint.SeverityWarn,
		Check:       checkWeakConcept,
	})
}

func checkWeakConcept(ctx *lint.Context) []lint.Diagnostic {
	settings := ctx.Settings()
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			if !strings.HasPrefix(h.Name, settings.WeakHookPrefix) {
				continue
			}
			concept, declared := ctx.ConceptByName(h.Concept)
			if !declared || concept.IsWeak {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "HOOK-W01",
				Severity: lint.SeverityWarn,
				Message:  fmt.Sprintf("Hook %q uses the weak prefix but concept %q is not declared weak", h.Name, h.Concept),
				Path:     fmt.Sprintf("frames[%d].hooks[%d]", i, j),
				Fix:      "Set is_weak: true on the concept or use the regular hook prefix",
			})
		}
	}
	return diagnostics
}
