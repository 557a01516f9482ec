package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CategoryArtist = "artist"
	CategoryOST    = "ost"

	// CategoryAll disables the category filter.
	CategoryAll = "all"
)

var artistAliases = []string{fold("아티스트"), fold("artist")}

// Casers carry state and are not shared between goroutines.
func fold(s string) string  { return cases.Fold().String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }

// NormalizeCategory maps free-form input onto the canonical tokens. Unknown
// labels pass through lowercased.
func NormalizeCategory(raw string) string {
	s := strings.TrimSpace(raw)
	folded := fold(s)
	if slices.Contains(artistAliases, folded) {
		return CategoryArtist
	}
	if folded == CategoryOST {
		return CategoryOST
	}
	return lower(s)
}
