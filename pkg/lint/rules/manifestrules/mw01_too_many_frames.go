package manifestrules

import (
	"fmt"

	"github.com/hookstack-labs/hookdot/pkg/lint"
)

// maxFrames is the advisory ceiling before a manifest should be split.
const maxFrames = 50

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MANIFEST-W01",
		Name:        "manifest.frame-count",
		Level:       lint.LevelManifest,
		Description: "Manifest has more than 50 frames",
		Severity:    lint.SeverityWarn,
		Check:       checkFrameCount,
	})
}

func checkFrameCount(ctx *lint.Context) []lint.Diagnostic {
	n := len(ctx.Manifest.Frames)
	if n <= maxFrames {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MANIFEST-W01",
		Severity: lint.SeverityWarn,
		Message:  fmt.Sprintf("Manifest has %d frames (exceeds %d). Consider splitting into multiple manifests", n, maxFrames),
		Path:     "frames",
		Fix:      "Group related frames into separate manifests by domain",
	}}
}
