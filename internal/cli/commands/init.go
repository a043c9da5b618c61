package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules" // register built-in rules
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	File         string
	Name         string
	Frame        string
	Relation     string
	Path         string
	Concept      string
	SourceSystem string
	Qualifier    string
	Tenant       string
	Expr         string
	Force        bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a starter manifest",
		Long: `Create a new manifest with one frame and its primary hook.

The hook name, concepts section, and keysets section are derived from
the frame and concept flags. The generated manifest is validated before
it is written; flags that produce an invalid manifest fail the command.

For a guided flow, use 'hookdot wizard' instead.`,
		Example: `  # Minimal manifest for a customer frame
  hookdot init --frame frame.customer --relation psa.customer \
      --concept customer --source-system CRM --expr customer_id

  # File-based source with tenant
  hookdot init --frame frame.order --path //server/qvd/order.qvd \
      --concept order --source-system SAP --tenant AU --expr order_number`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.File = args[0]
			} else {
				opts.File = "hook.manifest.yaml"
			}
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Manifest name for the metadata section")
	cmd.Flags().StringVar(&opts.Frame, "frame", "frame.customer", "Frame name (<schema>.<table>)")
	cmd.Flags().StringVar(&opts.Relation, "relation", "", "Relational source object")
	cmd.Flags().StringVar(&opts.Path, "path", "", "File source path (alternative to --relation)")
	cmd.Flags().StringVar(&opts.Concept, "concept", "customer", "Business concept the primary hook identifies")
	cmd.Flags().StringVar(&opts.SourceSystem, "source-system", "DEFAULT", "Source system code (UPPER_SNAKE_CASE)")
	cmd.Flags().StringVar(&opts.Qualifier, "qualifier", "", "Hook qualifier (lower_snake_case)")
	cmd.Flags().StringVar(&opts.Tenant, "tenant", "", "Tenant code (UPPER_SNAKE_CASE)")
	cmd.Flags().StringVar(&opts.Expr, "expr", "id", "Business key expression")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing manifest")

	return cmd
}

// BuildManifest assembles the starter manifest described by the options,
// with derived concepts and keysets sections.
func BuildManifest(opts *InitOptions) *manifest.Manifest {
	settings := manifest.DefaultSettings()

	hookName := settings.HookPrefix + opts.Concept
	if opts.Qualifier != "" {
		hookName += "__" + opts.Qualifier
	}

	source := &manifest.Source{}
	if opts.Path != "" {
		source.Path = &opts.Path
	} else {
		relation := opts.Relation
		if relation == "" {
			relation = opts.Frame
		}
		source.Relation = &relation
	}

	m := &manifest.Manifest{
		ManifestVersion: "1.0.0",
		SchemaVersion:   "1.0.0",
		Frames: []manifest.Frame{
			{
				Name:   opts.Frame,
				Source: source,
				Hooks: []manifest.Hook{
					{
						Name:      hookName,
						Role:      manifest.RolePrimary,
						Concept:   opts.Concept,
						Qualifier: opts.Qualifier,
						Source:    opts.SourceSystem,
						Tenant:    opts.Tenant,
						Expr:      opts.Expr,
					},
				},
			},
		},
	}
	if opts.Name != "" {
		m.Metadata = &manifest.Metadata{Name: opts.Name, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	}

	m.Concepts = manifest.DeriveConceptEntries(m)
	m.KeySets = manifest.DeriveKeySetEntries(m)
	return m
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if !opts.Force {
		if _, err := os.Stat(opts.File); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.File)
		}
	}

	m := BuildManifest(opts)

	// A starter manifest that fails its own validation is a bug in the
	// flags, not something to write to disk.
	if diags := lint.ValidateManifestErrors(m, nil); len(diags) > 0 {
		r.Errorf("generated manifest is invalid:\n")
		for _, d := range diags {
			r.Errorf("  %s %s (%s)\n", d.RuleID, d.Message, d.Path)
		}
		return fmt.Errorf("invalid options for init")
	}

	if err := manifest.Save(m, opts.File); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	r.Success("Created " + opts.File)
	r.StatusLine("Frame", opts.Frame)
	r.StatusLine("Hook", m.Frames[0].Hooks[0].Name)
	r.StatusLine("Key set", manifest.BuildKeySet(m.Frames[0].Hooks[0]))
	r.Println("")
	r.Println("Next: edit the manifest, then run 'hookdot validate " + opts.File + "'")
	return nil
}
