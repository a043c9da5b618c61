package lint

import "strings"

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a diagnostic. Errors make the
// manifest unusable downstream; warnings are advisories that do not block
// acceptance.
type Severity int

// Severity levels. Error sorts before Warn; the numeric order is the sort
// rank used by the analyzer.
const (
	SeverityError Severity = iota
	SeverityWarn
)

// String returns the canonical upper-case form used in output.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the severity as its canonical string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ParseSeverity converts a string to a Severity. Returns the severity and
// true if valid, or SeverityWarn and false otherwise.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warn", "warning":
		return SeverityWarn, true
	default:
		return SeverityWarn, false
	}
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic is a single validation finding. Diagnostics are plain values;
// rules return them and the analyzer aggregates and sorts them.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Fix      string   `json:"fix,omitempty"`
}

// HasErrors reports whether any diagnostic carries ERROR severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the ERROR diagnostics, preserving order.
func Errors(diags []Diagnostic) []Diagnostic {
	return filterSeverity(diags, SeverityError)
}

// Warnings returns only the WARN diagnostics, preserving order.
func Warnings(diags []Diagnostic) []Diagnostic {
	return filterSeverity(diags, SeverityWarn)
}

func filterSeverity(diags []Diagnostic, sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
