package sift

import "strings"

// CollapseWhitespace replaces every run of Unicode whitespace with a single
// space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes returns at most n characters of s, counted as Unicode code
// points. n <= 0 returns the empty string.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
