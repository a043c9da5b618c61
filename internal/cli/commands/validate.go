package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hookstack-labs/hookdot/internal/cli/output"
	"github.com/hookstack-labs/hookdot/pkg/lint"
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules" // register built-in rules
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Files      []string // Manifest paths
	Format     string   // Output format override: text, markdown, json
	NoWarnings bool     // Suppress WARN diagnostics
	Disable    []string // Rule IDs to disable
	Watch      bool     // Re-validate on file changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <manifest>...",
		Short: "Validate HOOK manifests",
		Long: `Check one or more manifests against the built-in rule set.

Errors make a manifest unusable downstream (missing grain, malformed
names, forbidden expressions, duplicate identifiers) and fail the run.
Warnings are advisories and never affect the exit code.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate a manifest
  hookdot validate hook.manifest.yaml

  # Validate several manifests at once
  hookdot validate models/*.yaml

  # Machine-readable output
  hookdot validate hook.manifest.yaml --format json

  # Errors only
  hookdot validate hook.manifest.yaml --no-warnings

  # Skip specific rules
  hookdot validate hook.manifest.yaml --disable FRAME-W02,MANIFEST-W02

  # Re-validate on every change
  hookdot validate hook.manifest.yaml --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.NoWarnings, "no-warnings", false, "Report errors only")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch manifests and re-validate on change")

	return cmd
}

// fileResult holds validation output for a single manifest file.
type fileResult struct {
	File        string
	Diagnostics []lint.Diagnostic
	ParseErr    error
}

func runValidate(cmd *cobra.Command, opts *ValidateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRendererWithTTY(cmd.OutOrStdout(), cmd.ErrOrStderr(), false, output.Mode(opts.Format))
	}

	analyzer := lint.NewAnalyzer(buildLintConfig(cmdCtx, opts))

	if opts.Watch {
		return watchAndValidate(cmd.Context(), r, analyzer, opts.Files)
	}

	results := validateFiles(cmd.Context(), analyzer, opts.Files)
	return reportResults(r, results)
}

func buildLintConfig(cmdCtx *CommandContext, opts *ValidateOptions) *lint.Config {
	cfg := lint.NewConfig()

	// Project config first, CLI flags on top.
	if cmdCtx.Cfg.Lint != nil {
		for _, id := range cmdCtx.Cfg.Lint.Disabled {
			cfg.Disable(strings.TrimSpace(id))
		}
		cfg.IncludeWarnings = cmdCtx.Cfg.Lint.WarningsEnabled()
	}
	for _, id := range opts.Disable {
		cfg.Disable(strings.TrimSpace(id))
	}
	if opts.NoWarnings {
		cfg.IncludeWarnings = false
	}
	return cfg
}

// validateFiles runs validation over all files concurrently. Results come
// back in argument order regardless of completion order.
func validateFiles(ctx context.Context, analyzer *lint.Analyzer, files []string) []fileResult {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = validateOne(analyzer, file)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func validateOne(analyzer *lint.Analyzer, file string) fileResult {
	var (
		m   *manifest.Manifest
		raw map[string]any
		err error
	)
	if strings.EqualFold(filepath.Ext(file), ".json") {
		m, raw, err = manifest.LoadJSON(file)
	} else {
		m, raw, err = manifest.Load(file)
	}
	if err != nil {
		return fileResult{File: file, ParseErr: err}
	}

	return fileResult{
		File:        file,
		Diagnostics: analyzer.Analyze(lint.NewContext(m, raw)),
	}
}

// reportResults renders all results and converts findings into the exit
// error contract: parse errors beat validation errors; warnings alone pass.
func reportResults(r *output.Renderer, results []fileResult) error {
	for _, res := range results {
		if res.ParseErr != nil {
			return res.ParseErr
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		renderJSON(r, results)
	} else {
		renderText(r, results)
	}

	for _, res := range results {
		if lint.HasErrors(res.Diagnostics) {
			return ErrValidationFailed
		}
	}
	return nil
}

// validationReport is the JSON output shape for a single manifest.
type validationReport struct {
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Errors   []lint.Diagnostic `json:"errors"`
	Warnings []lint.Diagnostic `json:"warnings"`
	Summary  reportSummary     `json:"summary"`
}

type reportSummary struct {
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
}

func buildReport(res fileResult) validationReport {
	errs := lint.Errors(res.Diagnostics)
	warns := lint.Warnings(res.Diagnostics)
	return validationReport{
		File:     res.File,
		Valid:    len(errs) == 0,
		Errors:   nonNil(errs),
		Warnings: nonNil(warns),
		Summary:  reportSummary{ErrorCount: len(errs), WarningCount: len(warns)},
	}
}

// nonNil keeps empty diagnostic lists as [] in JSON output.
func nonNil(diags []lint.Diagnostic) []lint.Diagnostic {
	if diags == nil {
		return []lint.Diagnostic{}
	}
	return diags
}

func renderJSON(r *output.Renderer, results []fileResult) {
	if len(results) == 1 {
		_ = r.JSON(buildReport(results[0]))
		return
	}

	reports := make([]validationReport, len(results))
	valid := true
	summary := reportSummary{}
	for i, res := range results {
		reports[i] = buildReport(res)
		valid = valid && reports[i].Valid
		summary.ErrorCount += reports[i].Summary.ErrorCount
		summary.WarningCount += reports[i].Summary.WarningCount
	}
	_ = r.JSON(struct {
		Valid   bool               `json:"valid"`
		Files   []validationReport `json:"files"`
		Summary reportSummary      `json:"summary"`
	}{Valid: valid, Files: reports, Summary: summary})
}

func renderText(r *output.Renderer, results []fileResult) {
	totalErrors, totalWarnings := 0, 0

	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			r.Success(res.File + ": valid")
			continue
		}

		r.Println(r.Styles().Path.Render(res.File))
		for _, d := range res.Diagnostics {
			r.Printf("  %s  %s  %s\n",
				severityLabel(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
			r.Printf("         %s\n", r.Styles().Muted.Render("at "+d.Path))
			if d.Fix != "" {
				r.Printf("         %s\n", r.Styles().Muted.Render("fix: "+d.Fix))
			}
		}
		r.Println("")

		totalErrors += len(lint.Errors(res.Diagnostics))
		totalWarnings += len(lint.Warnings(res.Diagnostics))
	}

	if totalErrors+totalWarnings > 0 {
		parts := []string{}
		if totalErrors > 0 {
			parts = append(parts, fmt.Sprintf("%d errors", totalErrors))
		}
		if totalWarnings > 0 {
			parts = append(parts, fmt.Sprintf("%d warnings", totalWarnings))
		}
		r.Printf("Summary: %s in %d files\n", strings.Join(parts, ", "), len(results))
	}
}

func severityLabel(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error")
	case lint.SeverityWarn:
		return r.Styles().Warning.Render("warn ")
	default:
		return r.Styles().Muted.Render("?    ")
	}
}

// debounceWindow coalesces editor write bursts into a single re-validation.
const debounceWindow = 200 * time.Millisecond

// watchAndValidate re-runs validation whenever a watched manifest changes.
// It blocks until the context is canceled or an interrupt arrives; the exit
// status reflects the last completed run.
func watchAndValidate(ctx context.Context, r *output.Renderer, analyzer *lint.Analyzer, files []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories, not files: editors often replace files on save,
	// which drops file-level watches.
	watched := make(map[string]bool)
	for _, f := range files {
		dir := filepath.Dir(f)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	targets := make(map[string]bool, len(files))
	for _, f := range files {
		targets[filepath.Clean(f)] = true
	}

	runOnce := func() error {
		return reportResults(r, validateFiles(ctx, analyzer, files))
	}

	lastErr := runOnce()

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return lastErr
		case ev, ok := <-watcher.Events:
			if !ok {
				return lastErr
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !targets[filepath.Clean(ev.Name)] {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			r.Println("")
			lastErr = runOnce()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return lastErr
			}
			r.Errorf("watch error: %v\n", werr)
		}
	}
}
