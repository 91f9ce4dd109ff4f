package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9 -]+`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
	validSlug    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Normalize turns a candidate-supplied handle into canonical slug form:
// lowercase, spaces collapsed to dashes, anything outside [a-z0-9-] dropped.
// Example: "Jane Q. Doe" -> "jane-q-doe"
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = invalidChars.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is already in canonical slug form: dash-separated
// runs of lowercase letters and digits, no leading or trailing dash.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}
