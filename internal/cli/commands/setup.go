package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/internal/cli/config"
	"github.com/hookstack-labs/hookdot/internal/cli/output"
)

// ErrValidationFailed marks a run that completed but found ERROR-severity
// diagnostics. The CLI maps it to exit code 1; everything else that fails
// exits 2.
var ErrValidationFailed = errors.New("validation failed")

// IsValidationFailure reports whether err is a validation failure rather
// than a usage or I/O error.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext builds command dependencies from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()

	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	if cfg.NoColor {
		r.DisableColor()
	}

	return &CommandContext{Cfg: cfg, Renderer: r}
}

// getConfig returns the current configuration, falling back to environment
// variables when LoadConfig has not run (direct command construction in
// tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	outputFormat := os.Getenv("HOOKDOT_OUTPUT")
	if outputFormat == "" {
		outputFormat = config.DefaultOutput
	}
	return &config.Config{
		Output:  outputFormat,
		Verbose: os.Getenv("HOOKDOT_VERBOSE") == "true",
		NoColor: os.Getenv("HOOKDOT_NO_COLOR") == "true",
	}
}
