package helpers

import (
	"strings"
	"unicode"
)

// NormalizeName lowercases s and drops every whitespace rune, so
// "Bench Press", " bench  press" and "BENCHPRESS" all compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsDuplicateName reports whether candidate matches any of existing.
func IsDuplicateName(existing []string, candidate string) bool {
	want := NormalizeName(candidate)
	for _, e := range existing {
		if NormalizeName(e) == want {
			return true
		}
	}
	return false
}
