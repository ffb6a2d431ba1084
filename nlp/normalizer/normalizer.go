package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower lower-cases s with Unicode-aware rules.
func Lower(s string) string {
	// a Caser is stateful, so each call gets its own
	return cases.Lower(language.Und).String(s)
}

// RemoveDiacritics decomposes and strips combining marks.
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	t = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t)
	return norm.NFC.String(t)
}

// Fold lower-cases s and strips diacritics. Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	return RemoveDiacritics(Lower(s))
}
