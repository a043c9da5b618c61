package output

import "github.com/charmbracelet/lipgloss"

// Styles is the palette commands render with. When colors are off every
// style degrades to plain text, so callers can use them unconditionally.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Path    lipgloss.Style
}

func newStyles(colored bool) *Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:   plain,
			Bold:    plain,
			Muted:   plain,
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Success: plain,
			Path:    plain,
		}
	}

	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}
