package store

import "strings"

// accentFolder maps the accented letters common in Portuguese titles and
// names to their ASCII base so that "Benção" matches "bencao".
var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

// Normalize lowercases, folds accents and collapses surrounding whitespace.
// All fuzzy matching in this package compares normalized forms.
func Normalize(s string) string {
	return strings.TrimSpace(accentFolder.Replace(strings.ToLower(s)))
}

// tokenOverlap reports how many whitespace-separated tokens of query occur
// as substrings of target. Both arguments must already be normalized.
func tokenOverlap(query, target string) int {
	n := 0
	for _, tok := range strings.Fields(query) {
		if len(tok) < 2 {
			continue
		}
		if strings.Contains(target, tok) {
			n++
		}
	}
	return n
}
