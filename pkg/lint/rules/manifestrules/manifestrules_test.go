package manifestrules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

func baseManifest() *manifest.Manifest {
	return &manifest.Manifest{
		ManifestVersion: "1.0.0",
		SchemaVersion:   "1.0.0",
	}
}

func TestManifest001_ManifestVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantDiags int
	}{
		{name: "valid semver", version: "1.0.0", wantDiags: 0},
		{name: "multi-digit parts", version: "12.34.56", wantDiags: 0},
		{name: "missing patch", version: "1.0", wantDiags: 1},
		{name: "prefixed", version: "v1.0.0", wantDiags: 1},
		{name: "prerelease suffix", version: "1.0.0-rc1", wantDiags: 1},
		{name: "not a version", version: "invalid", wantDiags: 1},
		{name: "empty", version: "", wantDiags: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseManifest()
			m.ManifestVersion = tt.version
			diags := checkManifestVersion(lint.NewContext(m, nil))

			assert.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, "MANIFEST-001", diags[0].RuleID)
				assert.Equal(t, "manifest_version", diags[0].Path)
			}
		})
	}
}

func TestManifest002_SchemaVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantDiags int
	}{
		{name: "valid semver", version: "2.1.3", wantDiags: 0},
		{name: "two parts", version: "2.1", wantDiags: 1},
		{name: "empty", version: "", wantDiags: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseManifest()
			m.SchemaVersion = tt.version
			diags := checkSchemaVersion(lint.NewContext(m, nil))

			assert.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, "MANIFEST-002", diags[0].RuleID)
				assert.Equal(t, "schema_version", diags[0].Path)
			}
		})
	}
}

func TestManifestW01_FrameCount(t *testing.T) {
	makeFrames := func(n int) []manifest.Frame {
		frames := make([]manifest.Frame, n)
		for i := range frames {
			frames[i] = manifest.Frame{Name: fmt.Sprintf("frame.table_%d", i)}
		}
		return frames
	}

	tests := []struct {
		name      string
		count     int
		wantDiags int
	}{
		{name: "over the ceiling", count: 51, wantDiags: 1},
		{name: "exactly at the ceiling", count: 50, wantDiags: 0},
		{name: "small manifest", count: 3, wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseManifest()
			m.Frames = makeFrames(tt.count)
			diags := checkFrameCount(lint.NewContext(m, nil))

			assert.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, "MANIFEST-W01", diags[0].RuleID)
				assert.Equal(t, "frames", diags[0].Path)
			}
		})
	}
}

func TestManifestW02_UnknownFields(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		wantDiags int
		wantPath  string
	}{
		{
			name: "only known fields",
			raw: map[string]any{
				"manifest_version": "1.0.0",
				"schema_version":   "1.0.0",
				"metadata":         map[string]any{},
				"settings":         map[string]any{},
				"frames":           []any{},
				"concepts":         []any{},
			},
			wantDiags: 0,
		},
		{
			// keysets is tool-written output, not part of the authored schema,
			// so its presence still draws the advisory.
			name: "keysets section",
			raw: map[string]any{
				"manifest_version": "1.0.0",
				"frames":           []any{},
				"keysets":          []any{},
			},
			wantDiags: 1,
			wantPath:  "keysets",
		},
		{
			name: "one unknown field",
			raw: map[string]any{
				"manifest_version": "1.0.0",
				"extra_field":      true,
			},
			wantDiags: 1,
			wantPath:  "extra_field",
		},
		{name: "nil raw skips the rule", raw: nil, wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := checkUnknownFields(lint.NewContext(baseManifest(), tt.raw))

			assert.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, "MANIFEST-W02", diags[0].RuleID)
				assert.Equal(t, tt.wantPath, diags[0].Path)
			}
		})
	}
}
