package conjugador

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// hyphenReplacer folds the typographic hyphen and dash variants onto the
// ASCII hyphen-minus.
var hyphenReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\u2014", "-",
)

// isPortugueseLetter reports whether r may appear in an infinitive.
func isPortugueseLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'à', 'ã', 'ç', 'é', 'ê', 'í', 'ó', 'õ', 'ô', 'ú', 'ü':
		return true
	}
	return false
}

// Sanitize drops every rune that cannot belong to a Portuguese infinitive
// and collapses each run of hyphens into a single "-". Decomposed
// diacritics are composed first so that "o" followed by a combining
// circumflex is kept as "ô". Input is expected to be lowercase already.
func Sanitize(raw string) string {
	s := hyphenReplacer.Replace(norm.NFC.String(raw))

	var b strings.Builder
	b.Grow(len(s))
	inHyphen := false
	for _, r := range s {
		switch {
		case isPortugueseLetter(r):
			b.WriteRune(r)
			inHyphen = false
		case r == '-':
			if !inHyphen {
				b.WriteByte('-')
				inHyphen = true
			}
		default:
			inHyphen = false
		}
	}
	return b.String()
}

// hasValidEnding reports whether s looks like an infinitive: at least two
// runes, ending in "ar", "er", "ir" or "por", or exactly "pôr".
func hasValidEnding(s string) bool {
	if runeLen(s) < 2 {
		return false
	}
	if s == "pôr" {
		return true
	}
	return hasAnySuffix(s, "ar", "er", "ir", "por")
}

// hasAnySuffix reports whether s ends in one of suffixes.
func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
