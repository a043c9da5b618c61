package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
		ResetConfig()
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Nil(t, cfg.Lint)
	assert.True(t, cfg.Lint.WarningsEnabled())
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	doc := `output: json
verbose: true
lint:
  disabled:
    - FRAME-W02
  warnings: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookdot.yaml"), []byte(doc), 0o600))
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"FRAME-W02"}, cfg.Lint.Disabled)
	assert.False(t, cfg.Lint.WarningsEnabled())
	assert.Equal(t, filepath.Join(dir, "hookdot.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hookdot.yml"), []byte("output: markdown\n"), 0o600))
	nested := filepath.Join(root, "models", "sales")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookdot.yaml"), []byte("output: text\n"), 0o600))
	chdir(t, dir)
	t.Setenv("HOOKDOT_OUTPUT", "json")
	t.Setenv("HOOKDOT_NO_COLOR", "true")

	cfg, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOOKDOT_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Bool("no-color", false, "")
	require.NoError(t, flags.Parse([]string{"--output=text", "--no-color"}))

	cfg, err := LoadConfig("", flags)

	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_UnsetFlagsIgnored(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)

	require.NoError(t, err)
	// The flag default never overrides config defaults.
	assert.Equal(t, "auto", cfg.Output)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(path, nil)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookdot.yaml"), []byte("output: [broken\n"), 0o600))
	chdir(t, dir)

	_, err := LoadConfig("", nil)

	assert.Error(t, err)
}
