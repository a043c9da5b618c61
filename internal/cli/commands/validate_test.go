package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookstack-labs/hookdot/internal/cli/testutil"
)

const validYAML = `manifest_version: "1.0.0"
schema_version: "1.0.0"
frames:
  - name: frame.customer
    source:
      relation: psa.customer
    hooks:
      - name: _hk__customer
        role: primary
        concept: customer
        source: CRM
        expr: customer_id
`

const invalidYAML = `manifest_version: "not-semver"
schema_version: "1.0.0"
frames:
  - name: frame.customer
    source:
      relation: psa.customer
    hooks:
      - name: _hk__customer
        role: primary
        concept: customer
        source: CRM
        expr: customer_id
`

// warningYAML is valid but carries an unknown top-level field.
const warningYAML = `manifest_version: "1.0.0"
schema_version: "1.0.0"
extra_field: true
frames:
  - name: frame.customer
    source:
      relation: psa.customer
    hooks:
      - name: _hk__customer
        role: primary
        concept: customer
        source: CRM
        expr: customer_id
`

func runValidateCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewValidateCommand()
	// Match the root command's configuration (internal/cli/root.go): without
	// SilenceUsage, cobra appends the usage text to the out buffer on error,
	// corrupting the JSON the tests parse.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, out string) map[string]any {
	t.Helper()

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output: %s", out)
	return report
}

func TestValidate_ValidManifestJSON(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", validYAML)

	out, _, err := runValidateCmd(t, path, "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, path, report["file"])
	assert.Equal(t, true, report["valid"])
	assert.Empty(t, report["errors"])
	assert.Empty(t, report["warnings"])

	summary := report["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["error_count"])
	assert.Equal(t, float64(0), summary["warning_count"])
}

func TestValidate_InvalidManifestJSON(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", invalidYAML)

	out, _, err := runValidateCmd(t, path, "--format", "json")
	require.Error(t, err)
	assert.True(t, IsValidationFailure(err))

	report := decodeReport(t, out)
	assert.Equal(t, false, report["valid"])

	errs := report["errors"].([]any)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]any)
	assert.Equal(t, "MANIFEST-001", first["rule_id"])
	assert.Equal(t, "ERROR", first["severity"])
	assert.Equal(t, "manifest_version", first["path"])
}

func TestValidate_WarningsDoNotFail(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", warningYAML)

	out, _, err := runValidateCmd(t, path, "--format", "json")
	require.NoError(t, err, "warnings alone must not fail the run")

	report := decodeReport(t, out)
	assert.Equal(t, true, report["valid"])

	warns := report["warnings"].([]any)
	require.NotEmpty(t, warns)
	first := warns[0].(map[string]any)
	assert.Equal(t, "MANIFEST-W02", first["rule_id"])
}

func TestValidate_NoWarningsFlag(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", warningYAML)

	out, _, err := runValidateCmd(t, path, "--format", "json", "--no-warnings")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Empty(t, report["warnings"])
}

func TestValidate_DisableRule(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", invalidYAML)

	out, _, err := runValidateCmd(t, path, "--format", "json", "--disable", "MANIFEST-001")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, true, report["valid"])
	assert.Empty(t, report["errors"])
}

func TestValidate_MultipleFilesJSON(t *testing.T) {
	good := testutil.WriteManifest(t, "good.yaml", validYAML)
	bad := testutil.WriteManifest(t, "bad.yaml", invalidYAML)

	out, _, err := runValidateCmd(t, good, bad, "--format", "json")
	require.Error(t, err)
	assert.True(t, IsValidationFailure(err))

	report := decodeReport(t, out)
	assert.Equal(t, false, report["valid"])

	files := report["files"].([]any)
	require.Len(t, files, 2)
	// Results keep argument order regardless of completion order.
	assert.Equal(t, good, files[0].(map[string]any)["file"])
	assert.Equal(t, bad, files[1].(map[string]any)["file"])

	summary := report["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["error_count"])
}

func TestValidate_ParseError(t *testing.T) {
	path := testutil.WriteManifest(t, "broken.yaml", "frames: [unclosed\n")

	_, _, err := runValidateCmd(t, path, "--format", "json")
	require.Error(t, err)
	assert.False(t, IsValidationFailure(err), "parse errors are not validation failures")
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := runValidateCmd(t, "does-not-exist.yaml")
	require.Error(t, err)
	assert.False(t, IsValidationFailure(err))
}

func TestValidate_TextOutputNamesRule(t *testing.T) {
	path := testutil.WriteManifest(t, "hook.manifest.yaml", invalidYAML)

	out, _, err := runValidateCmd(t, path, "--format", "markdown")
	require.Error(t, err)
	assert.Contains(t, out, "MANIFEST-001")
	assert.Contains(t, out, "manifest_version")
	testutil.AssertNoANSI(t, out)
}
