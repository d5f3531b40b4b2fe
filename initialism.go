package alpha_abbrev

import (
	"strings"
	"unicode/utf8"
)

// CreateInitialism
// Returns the first character of every whitespace separated word in `text`,
// in order. Empty and whitespace-only input yields "".
func CreateInitialism(text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
