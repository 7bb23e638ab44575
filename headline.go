package headlines

import (
	"strings"
	"unicode/utf8"
)

// Normalize trims leading and trailing whitespace from extracted text.
// Internal whitespace runs are left untouched.
func Normalize(text string) string {
	return strings.TrimSpace(text)
}

// LongerThan reports whether text has more than n characters.
// Characters are counted as runes, not bytes.
func LongerThan(text string, n int) bool {
	return utf8.RuneCountInString(text) > n
}

// Dedupe removes repeated headlines by exact string match.
// The first occurrence of each headline keeps its position.
func Dedupe(headlines []string) []string {
	seen := make(map[string]struct{}, len(headlines))
	out := make([]string, 0, len(headlines))
	for _, h := range headlines {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

// Truncate returns at most n leading headlines.
func Truncate(headlines []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(headlines) <= n {
		return headlines
	}
	return headlines[:n]
}
