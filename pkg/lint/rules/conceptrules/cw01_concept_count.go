package conceptrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

// maxConcepts is the advisory ceiling before a model likely mixes domains.
const maxConcepts = 100

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CONCEPT-W01",
		Name:        "concept.count",
		Level:       lint.LevelManifest,
		Description: "Manifest declares more than 100 concepts",
		Severity:    lint.SeverityWarn,
		Check:       checkConceptCount,
	})
}

func checkConceptCount(ctx *lint.Context) []lint.Diagnostic {
	n := len(ctx.Manifest.Concepts)
	if n <= maxConcepts {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "CONCEPT-W01",
		Severity: lint.SeverityWarn,
		Message:  fmt.Sprintf("Manifest declares %d concepts (exceeds %d). Consider splitting into multiple manifests", n, maxConcepts),
		Path:     "concepts",
		Fix:      "Split the model by business domain",
	}}
}
