package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hookstack-labs/hookdot/pkg/lint"
	_ "github.com/hookstack-labs/hookdot/pkg/lint/rules" // register built-in rules
	"github.com/hookstack-labs/hookdot/pkg/manifest"
)

// draftDir holds partially answered wizard sessions.
const draftDir = ".hookdot"

// NewWizardCommand creates the interactive manifest wizard.
func NewWizardCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Create a manifest interactively",
		Long: `Walk through the questions needed to build a first manifest: frame,
source, concept, source system, and business key expression. Answers
are checked as you type; the finished manifest is validated before it
is written.

Canceling mid-way saves a draft under ` + draftDir + `/ so answers are
not lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, file)
		},
	}

	cmd.Flags().StringVar(&file, "output-file", "hook.manifest.yaml", "Where to write the manifest")
	return cmd
}

// wizardStep is one question in the sequence.
type wizardStep struct {
	key         string
	prompt      string
	placeholder string
	optional    bool
	validate    func(string) error
	// skip decides from earlier answers whether to ask at all.
	skip func(answers map[string]string) bool
}

func wizardSteps() []wizardStep {
	lowerSnake := func(field string) func(string) error {
		return func(s string) error {
			if !manifest.IsLowerSnakeCase(s) {
				return fmt.Errorf("%s must be lower_snake_case", field)
			}
			return nil
		}
	}
	upperSnake := func(field string) func(string) error {
		return func(s string) error {
			if !manifest.IsUpperSnakeCase(s) {
				return fmt.Errorf("%s must be UPPER_SNAKE_CASE", field)
			}
			return nil
		}
	}

	return []wizardStep{
		{
			key:         "name",
			prompt:      "Manifest name",
			placeholder: "Sales model",
			optional:    true,
		},
		{
			key:         "frame",
			prompt:      "Frame name (<schema>.<table>)",
			placeholder: "frame.customer",
			validate: func(s string) error {
				if !manifest.IsValidFrameName(s) {
					return fmt.Errorf("frame name must look like schema.table in lower_snake_case")
				}
				return nil
			},
		},
		{
			key:         "relation",
			prompt:      "Source relation (leave empty for a file path)",
			placeholder: "psa.customer",
			optional:    true,
		},
		{
			key:         "path",
			prompt:      "Source file path",
			placeholder: "//server/qvd/customer.qvd",
			skip: func(answers map[string]string) bool {
				return answers["relation"] != ""
			},
		},
		{
			key:         "concept",
			prompt:      "Business concept the primary hook identifies",
			placeholder: "customer",
			validate:    lowerSnake("concept"),
		},
		{
			key:         "source_system",
			prompt:      "Source system code",
			placeholder: "CRM",
			validate:    upperSnake("source system"),
		},
		{
			key:         "expr",
			prompt:      "Business key expression",
			placeholder: "customer_id",
			validate: func(s string) error {
				if diags := lint.ValidateExpr(s, "expr"); len(diags) > 0 {
					return fmt.Errorf("%s", diags[0].Message)
				}
				return nil
			},
		},
		{
			key:         "qualifier",
			prompt:      "Qualifier (optional)",
			placeholder: "manager",
			optional:    true,
			validate:    lowerSnake("qualifier"),
		},
		{
			key:         "tenant",
			prompt:      "Tenant code (optional)",
			placeholder: "AU",
			optional:    true,
			validate:    upperSnake("tenant"),
		},
	}
}

// wizardModel drives the prompt sequence.
type wizardModel struct {
	steps   []wizardStep
	current int
	input   textinput.Model
	answers map[string]string
	errMsg  string

	canceled bool
	done     bool

	promptStyle lipgloss.Style
	errStyle    lipgloss.Style
}

func newWizardModel() wizardModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200

	m := wizardModel{
		steps:       wizardSteps(),
		input:       ti,
		answers:     make(map[string]string),
		promptStyle: lipgloss.NewStyle().Bold(true),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	m.applyStep()
	return m
}

func (m *wizardModel) applyStep() {
	step := m.steps[m.current]
	m.input.Placeholder = step.placeholder
	m.input.SetValue("")
	m.errMsg = ""
}

// advance moves to the next unskipped step, or finishes.
func (m *wizardModel) advance() {
	for m.current++; m.current < len(m.steps); m.current++ {
		step := m.steps[m.current]
		if step.skip != nil && step.skip(m.answers) {
			continue
		}
		m.applyStep()
		return
	}
	m.done = true
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			step := m.steps[m.current]
			value := strings.TrimSpace(m.input.Value())

			if value == "" && !step.optional {
				m.errMsg = "a value is required"
				return m, nil
			}
			if value != "" && step.validate != nil {
				if err := step.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}

			m.answers[step.key] = value
			m.advance()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m wizardModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	step := m.steps[m.current]
	b.WriteString(m.promptStyle.Render(step.prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.errStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n(enter to confirm, esc to cancel)\n")
	return b.String()
}

func runWizard(cmd *cobra.Command, file string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	program := tea.NewProgram(newWizardModel(),
		tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}

	m, ok := final.(wizardModel)
	if !ok {
		return fmt.Errorf("run wizard: unexpected model type")
	}

	if m.canceled {
		if len(m.answers) == 0 {
			r.Println("Canceled.")
			return nil
		}
		draft, err := saveDraft(m.answers)
		if err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		r.Println("Canceled. Draft saved to " + draft)
		return nil
	}

	opts := &InitOptions{
		File:         file,
		Name:         m.answers["name"],
		Frame:        m.answers["frame"],
		Relation:     m.answers["relation"],
		Path:         m.answers["path"],
		Concept:      m.answers["concept"],
		SourceSystem: m.answers["source_system"],
		Qualifier:    m.answers["qualifier"],
		Tenant:       m.answers["tenant"],
		Expr:         m.answers["expr"],
	}
	return runInit(cmd, opts)
}

// saveDraft writes partial answers as YAML-ish key/value lines under the
// draft directory so a canceled session can be reconstructed by hand.
func saveDraft(answers map[string]string) (string, error) {
	if err := os.MkdirAll(draftDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(draftDir, "draft-"+uuid.NewString()+".yaml")
	var b strings.Builder
	b.WriteString("# hookdot wizard draft\n")
	for _, step := range wizardSteps() {
		if v, ok := answers[step.key]; ok && v != "" {
			fmt.Fprintf(&b, "%s: %s\n", step.key, v)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
