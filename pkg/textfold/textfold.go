// Package textfold lowercases and strips diacritics so substring search
// behaves like a case- and accent-insensitive collation regardless of the
// database driver underneath.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns s lowercased with combining marks removed, so "Café"
// folds to "cafe". Input that fails to transform is returned lowercased
// as-is rather than dropped.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
