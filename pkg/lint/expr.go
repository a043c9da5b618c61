package lint

import (
	"fmt"
	"regexp"
	"strings"
)

// Forbidden constructs in a business-key expression. The expression language
// is a restricted SQL subset: pure column references, literals, operators,
// CASE, CAST and deterministic scalar functions. Query clauses, DDL/DML and
// non-deterministic functions are rejected by keyword; no positive grammar
// is parsed. Word-boundary anchoring keeps identifiers like "selector" from
// matching SELECT.
var forbiddenPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)\bSELECT\b`), "SELECT"},
	{regexp.MustCompile(`(?i)\bFROM\b`), "FROM"},
	{regexp.MustCompile(`(?i)\bJOIN\b`), "JOIN"},
	{regexp.MustCompile(`(?i)\bWHERE\b`), "WHERE"},
	{regexp.MustCompile(`(?i)\bGROUP\s+BY\b`), "GROUP BY"},
	{regexp.MustCompile(`(?i)\bORDER\s+BY\b`), "ORDER BY"},
	{regexp.MustCompile(`(?i)\bWITH\b`), "WITH"},
	// Non-deterministic functions
	{regexp.MustCompile(`(?i)\bRANDOM\b`), "RANDOM"},
	{regexp.MustCompile(`(?i)\bNEWID\b`), "NEWID"},
	{regexp.MustCompile(`(?i)\bGETDATE\b`), "GETDATE"},
	{regexp.MustCompile(`(?i)\bNOW\b`), "NOW"},
	{regexp.MustCompile(`(?i)\bCURRENT_TIMESTAMP\b`), "CURRENT_TIMESTAMP"},
	{regexp.MustCompile(`(?i)\bSYSDATE\b`), "SYSDATE"},
	// DDL/DML
	{regexp.MustCompile(`(?i)\bINSERT\b`), "INSERT"},
	{regexp.MustCompile(`(?i)\bUPDATE\b`), "UPDATE"},
	{regexp.MustCompile(`(?i)\bDELETE\b`), "DELETE"},
	{regexp.MustCompile(`(?i)\bCREATE\b`), "CREATE"},
	{regexp.MustCompile(`(?i)\bDROP\b`), "DROP"},
	{regexp.MustCompile(`(?i)\bALTER\b`), "ALTER"},
	{regexp.MustCompile(`(?i)\bTRUNCATE\b`), "TRUNCATE"},
}

// ValidateExpr checks a business-key expression at the given path. It
// reports at most one diagnostic: empty expressions, or the first forbidden
// keyword found. Further matches in the same expression are noise once the
// first is fixed.
func ValidateExpr(expr, path string) []Diagnostic {
	if strings.TrimSpace(expr) == "" {
		return []Diagnostic{{
			RuleID:   "HOOK-006",
			Severity: SeverityError,
			Message:  "Expression must be non-empty",
			Path:     path,
			Fix:      "Provide a valid SQL expression for the business key",
		}}
	}

	for _, p := range forbiddenPatterns {
		if p.re.MatchString(expr) {
			return []Diagnostic{{
				RuleID:   "HOOK-006",
				Severity: SeverityError,
				Message: fmt.Sprintf(
					"Expression contains forbidden pattern: %s. Only pure expressions are allowed", p.name),
				Path: path,
				Fix: fmt.Sprintf(
					"Remove %s and use only column references, literals, operators, CASE, CAST, and allowed functions", p.name),
			}}
		}
	}

	return nil
}
