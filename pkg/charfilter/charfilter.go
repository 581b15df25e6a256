package charfilter

import "strings"

// Predicate reports whether a rune should be kept by Filter.
type Predicate func(r rune) bool

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsAlnum reports whether r is an ASCII letter or digit.
func IsAlnum(r rune) bool {
	return IsDigit(r) || IsLetter(r)
}

// Filter returns s with every rune that fails keep removed, preserving the
// order of the surviving runes. An empty input yields an empty string.
func Filter(s string, keep Predicate) string {
	return strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, s)
}
