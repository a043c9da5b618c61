package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/internal/cli/output"
)

// NewVersionCommand reports the build's version information.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewCommandContext(cmd).Renderer

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(map[string]string{
					"version":    version,
					"build_date": buildDate,
					"git_commit": gitCommit,
					"go_version": runtime.Version(),
					"platform":   runtime.GOOS + "/" + runtime.GOARCH,
				})
			}

			r.Header(1, "hookdot")
			r.StatusLine("Version", version)
			r.StatusLine("Build date", buildDate)
			r.StatusLine("Commit", gitCommit)
			r.StatusLine("Go", runtime.Version())
			r.StatusLine("Platform", runtime.GOOS+"/"+runtime.GOARCH)
			return nil
		},
	}
}
