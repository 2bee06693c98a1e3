package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean folds a raw cell value into comparable text: NFKC normalization,
// non-breaking spaces to ordinary spaces, em/en dashes to hyphens,
// whitespace runs collapsed to a single space, leading/trailing space
// trimmed. Case is preserved.
func Clean(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, " ", " ") // NBSP
	s = strings.ReplaceAll(s, "—", "-") // em dash
	s = strings.ReplaceAll(s, "–", "-") // en dash
	return strings.Join(strings.Fields(s), " ")
}

// Code normalizes a raw course code. The second return is false when the
// code is absent (empty after cleaning). Every loader and both sides of
// every equivalency entry must go through this one function; matching is
// exact string equality on its output.
func Code(raw string) (string, bool) {
	c := strings.ToUpper(Clean(raw))
	return c, c != ""
}
