package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/internal/cli/output"
	"github.com/hookstack-labs/hookdot/pkg/lint"
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules"
)

// NewRulesCommand lists the registered validation rules.
func NewRulesCommand() *cobra.Command {
	var (
		level  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List validation rules",
		Long: `List every registered validation rule with its ID, severity, and
description, or show one rule in detail. Rule IDs can be passed to
'validate --disable' to turn individual rules off.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			r := ctx.Renderer
			if format != "" {
				r = output.NewRendererWithTTY(cmd.OutOrStdout(), cmd.ErrOrStderr(), false, output.Mode(format))
			}

			if len(args) == 1 {
				return showRule(r, strings.ToUpper(args[0]))
			}

			var defs []lint.RuleDef
			if level != "" {
				lvl, ok := normalizeLevel(level)
				if !ok {
					return fmt.Errorf("unknown level %q (valid: manifest, frame, hook, concept)", level)
				}
				defs = lint.GetByLevel(lvl)
			} else {
				defs = lint.All()
			}
			return renderRules(r, defs)
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Only show rules for one level (manifest, frame, hook, concept)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")
	return cmd
}

func showRule(r *output.Renderer, id string) error {
	d, ok := lint.GetByID(id)
	if !ok {
		return fmt.Errorf("rule %q not found", id)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]string{
			"id":          d.ID,
			"name":        d.Name,
			"level":       d.Level,
			"severity":    d.Severity.String(),
			"description": d.Description,
		})
	}

	r.Header(2, d.ID+" - "+d.Name)
	r.StatusLine("Level", d.Level)
	r.StatusLine("Severity", d.Severity.String())
	r.Println("")
	r.Println(d.Description)
	return nil
}

func normalizeLevel(s string) (string, bool) {
	switch strings.ToLower(s) {
	case lint.LevelManifest, lint.LevelFrame, lint.LevelHook, lint.LevelConcept:
		return strings.ToLower(s), true
	default:
		return "", false
	}
}

func renderRules(r *output.Renderer, defs []lint.RuleDef) error {
	if r.EffectiveMode() == output.ModeJSON {
		items := make([]map[string]string, 0, len(defs))
		for _, d := range defs {
			items = append(items, map[string]string{
				"id":          d.ID,
				"name":        d.Name,
				"level":       d.Level,
				"severity":    d.Severity.String(),
				"description": d.Description,
			})
		}
		return r.JSON(map[string]any{"rules": items, "count": len(defs)})
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Severity", "Level", "Description"})
	for _, d := range defs {
		t.AppendRow(table.Row{d.ID, d.Severity.String(), d.Level, d.Description})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		t.SetStyle(table.StyleLight)
		r.Println(t.Render())
	}
	r.Println("")
	r.Println(fmt.Sprintf("%d rules registered.", len(defs)))
	return nil
}
