package data

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeMatchText lowercases text and applies NFC normalization so
// that composed and decomposed Tamil sequences compare equal against the
// reference tables.
func NormalizeMatchText(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// FoldLocality prepares a Latin locality name for zone matching:
// lowercase, trimmed, diacritics stripped. Geocoder responses sometimes
// carry accented spellings the zone table does not.
func FoldLocality(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
