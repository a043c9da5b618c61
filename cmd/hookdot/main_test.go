// Package main provides tests for the hookdot CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hookstack-labs/hookdot/internal/cli"
)

const validManifest = `manifest_version: "1.0.0"
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

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "hookdot") {
		t.Errorf("version output should contain 'hookdot', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"validate", "init", "wizard", "examples", "rules", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeManifest(t, validManifest)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", path})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("validate command error = %v", err)
	}

	if !strings.Contains(buf.String(), "valid") {
		t.Errorf("validate output should contain 'valid', got: %s", buf.String())
	}
}

func TestValidateCommandInvalid(t *testing.T) {
	path := writeManifest(t, `manifest_version: "abc"
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
`)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", path})

	err := cmd.Execute()
	if err == nil {
		t.Error("validate should fail on an invalid manifest")
	}
	if !strings.Contains(buf.String(), "MANIFEST-001") {
		t.Errorf("output should name the failing rule, got: %s", buf.String())
	}
}

func TestRulesCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"rules"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("rules command error = %v", err)
	}

	for _, id := range []string{"MANIFEST-001", "FRAME-001", "HOOK-006", "CONCEPT-001"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("rules output should contain %s, got: %s", id, buf.String())
		}
	}
}

func TestExamplesCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"examples"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("examples command error = %v", err)
	}

	for _, name := range []string{"minimal", "typical", "complex"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("examples output should list %s, got: %s", name, buf.String())
		}
	}
}

func TestExamplesShowValidates(t *testing.T) {
	// Every embedded example must itself pass validation.
	for _, name := range []string{"minimal", "file_based", "typical", "complex"} {
		t.Run(name, func(t *testing.T) {
			cmd := cli.NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"examples", name})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("examples %s error = %v", name, err)
			}

			path := writeManifest(t, buf.String())
			vcmd := cli.NewRootCmd()
			vbuf := new(bytes.Buffer)
			vcmd.SetOut(vbuf)
			vcmd.SetErr(vbuf)
			vcmd.SetArgs([]string{"validate", path})
			if err := vcmd.Execute(); err != nil {
				t.Errorf("example %s should validate cleanly: %v\n%s", name, err, vbuf.String())
			}
		})
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.manifest.yaml")

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{
		"init", path,
		"--frame", "frame.order",
		"--relation", "psa.order",
		"--concept", "order",
		"--source-system", "SAP",
		"--expr", "order_number",
	})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("init command error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated manifest: %v", err)
	}
	if !strings.Contains(string(data), "_hk__order") {
		t.Errorf("generated manifest should contain the derived hook name, got: %s", data)
	}

	vcmd := cli.NewRootCmd()
	vbuf := new(bytes.Buffer)
	vcmd.SetOut(vbuf)
	vcmd.SetErr(vbuf)
	vcmd.SetArgs([]string{"validate", path})
	if err := vcmd.Execute(); err != nil {
		t.Errorf("generated manifest should validate without errors: %v\n%s", err, vbuf.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			cmd := cli.NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"completion", shell})

			err := cmd.Execute()
			if err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	err := cmd.Execute()
	if err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
