package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldDiacritics replaces accented characters with their unaccented base
// form: "José" becomes "Jose". Input that cannot be transformed is returned
// unchanged.
func FoldDiacritics(s string) string {
	// A fresh chain per call; transformer chains carry internal state and
	// must not be shared between goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
