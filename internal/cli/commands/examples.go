package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/internal/cli/output"
)

// NewExamplesCommand lists the embedded example manifests, or prints one.
func NewExamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples [name]",
		Short: "Show example manifests",
		Long: `List the bundled example manifests, or print one by name.

Each example is a complete manifest that passes validation. Pipe one
into a file to use it as a starting point:

  hookdot examples typical > hook.manifest.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			if len(args) == 1 {
				return showExample(ctx.Renderer, args[0])
			}
			return listExamples(ctx.Renderer)
		},
	}
	return cmd
}

func showExample(r *output.Renderer, name string) error {
	data, err := exampleContent(name)
	if err != nil {
		return err
	}
	r.Printf("%s", data)
	return nil
}

func listExamples(r *output.Renderer) error {
	if r.EffectiveMode() == output.ModeJSON {
		items := make([]map[string]string, 0, len(exampleCatalog))
		for _, e := range exampleCatalog {
			items = append(items, map[string]string{
				"name":        e.Name,
				"description": e.Description,
				"highlights":  e.Highlights,
			})
		}
		return r.JSON(map[string]any{"examples": items})
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Name", "Description", "Highlights"})
	for _, e := range exampleCatalog {
		t.AppendRow(table.Row{e.Name, e.Description, e.Highlights})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		t.SetStyle(table.StyleLight)
		r.Println(t.Render())
	}
	r.Println("")
	r.Println(fmt.Sprintf("Run 'hookdot examples <name>' to print one of the %d examples.", len(exampleCatalog)))
	return nil
}
