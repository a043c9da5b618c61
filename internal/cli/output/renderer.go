// Package output provides mode-aware rendering for CLI commands.
//
// Commands never print directly; they go through a Renderer whose mode
// decides how output looks:
//
//   - auto: text with styling on a terminal, markdown when piped
//   - text: human-readable styled output
//   - markdown: plain markdown, safe for pipes and docs
//   - json: machine-readable output only
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how a Renderer formats its output.
type OutputMode string

// Supported output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Mode normalizes a mode string from config or flags. Unknown values fall
// back to auto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText
	case ModeMarkdown:
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes command output in a given mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting TTY state from the output writer.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state. Tests use
// this to pin down auto-mode behavior.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
	r.styles = newStyles(r.EffectiveMode() == ModeText && isTTY)
	return r
}

// EffectiveMode resolves auto to a concrete mode: text on a terminal,
// markdown otherwise.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style set for the effective mode. Styles render to
// plain text when colors are off.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// DisableColor forces plain styles regardless of mode and TTY state.
func (r *Renderer) DisableColor() {
	r.styles = newStyles(false)
}

// Out returns the output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorf writes formatted output to the error writer.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, a...)
}

// Success prints a success line, with a check mark in text mode.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeText {
		r.Println(r.styles.Success.Render("✓ " + msg))
		return
	}
	r.Println(msg)
}

// Header prints a section heading. In markdown mode it emits a heading of
// the given level; in text mode a styled title.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		r.Println(strings.Repeat("#", level) + " " + text)
		r.Println()
	default:
		r.Println(r.styles.Title.Render(text))
	}
}

// StatusLine prints a label/value pair aligned for scanning.
func (r *Renderer) StatusLine(label, value string) {
	r.Printf("%s %s\n", r.styles.Muted.Render(fmt.Sprintf("%-14s", label+":")), value)
}

// JSON writes v as indented JSON to the output writer.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
