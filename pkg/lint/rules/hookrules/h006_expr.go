package hookrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "HOOK-006",
		Name:        "hook.expr",
		Level:       lint.LevelHook,
		Description: "Expression must be non-empty and free of statement-level SQL keywords",
		Severity:    lint.SeverityError,
		Check:       checkExpr,
	})
}

func checkExpr(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for i, f := range ctx.Manifest.Frames {
		for j, h := range f.Hooks {
			path := fmt.Sprintf("frames[%d].hooks[%d].expr", i, j)
			diagnostics = append(diagnostics, lint.ValidateExpr(h.Expr, path)...)
		}
	}
	return diagnostics
}
