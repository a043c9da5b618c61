package manifest

import "regexp"

// Compiled once; validation runs thousands of checks on large manifests.
var (
	lowerSnakeCase = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	upperSnakeCase = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

	// Hook name: _hk__<concept> or _wk__<concept>, optionally followed by
	// __<qualifier>. Concept and qualifier segments are lower_snake_case
	// without leading or trailing underscore runs.
	hookName = regexp.MustCompile(
		`^_(hk|wk)__[a-z][a-z0-9]*(_[a-z0-9]+)*(__[a-z][a-z0-9]*(_[a-z0-9]+)*)?$`)

	frameName = regexp.MustCompile(`^[a-z][a-z0-9_]*\.[a-z][a-z0-9_]*$`)
	semver    = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// IsLowerSnakeCase reports whether s matches lower_snake_case: a lowercase
// letter followed by lowercase letters, digits or underscores.
func IsLowerSnakeCase(s string) bool {
	return lowerSnakeCase.MatchString(s)
}

// IsUpperSnakeCase reports whether s matches UPPER_SNAKE_CASE.
func IsUpperSnakeCase(s string) bool {
	return upperSnakeCase.MatchString(s)
}

// IsValidHookName reports whether s matches the hook naming grammar
// <prefix><concept>[__<qualifier>], e.g. _hk__customer or
// _hk__employee__manager.
func IsValidHookName(s string) bool {
	return hookName.MatchString(s)
}

// IsValidFrameName reports whether s matches <schema>.<table> with both
// segments in lower_snake_case, e.g. psa.order_header.
func IsValidFrameName(s string) bool {
	return frameName.MatchString(s)
}

// IsValidSemver reports whether s is a strict MAJOR.MINOR.PATCH version.
// Pre-release and build metadata are not accepted.
func IsValidSemver(s string) bool {
	return semver.MatchString(s)
}
