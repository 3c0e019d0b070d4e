package search

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// BestMatch fuzzy-matches query against names and returns the index of the
// strongest match, or false when nothing matches. Used by the jump action
// to move the cursor without filtering the listing.
func BestMatch(query string, names []string) (int, bool) {
	if query == "" {
		return 0, false
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}

// SubstringIndexes returns the character positions of the first
// case-insensitive occurrence of query inside name, for highlighting
// filter hits in the list. Empty when there is no occurrence.
func SubstringIndexes(query, name string) []int {
	if query == "" {
		return nil
	}
	lowerName := strings.ToLower(name)
	lowerQuery := strings.ToLower(query)
	byteStart := strings.Index(lowerName, lowerQuery)
	if byteStart < 0 {
		return nil
	}
	runeStart := utf8.RuneCountInString(lowerName[:byteStart])
	runeLen := utf8.RuneCountInString(lowerQuery)
	indexes := make([]int, 0, runeLen)
	for i := 0; i < runeLen; i++ {
		indexes = append(indexes, runeStart+i)
	}
	return indexes
}
