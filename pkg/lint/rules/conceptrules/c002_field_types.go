package conceptrules

import (
	"github.com/hookstack-labs/hookdot/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CONCEPT-002",
		Name:        "concept.field-types",
		Level:       lint.LevelConcept,
		Description: "Concept fields must be well typed",
		Severity:    lint.SeverityError,
		Check:       checkFieldTypes,
	})
}

// Field typing is enforced when the document is decoded into the typed
// model; a manifest that reaches validation already satisfies this rule.
// Registered so the rule set stays complete and listable.
func checkFieldTypes(_ *lint.Context) []lint.Diagnostic {
	return nil
}
