package alpha_abbrev

import (
	"regexp"
	"strings"
)

const MAX_WORD_LEN = 25
const MAX_ABBR_LEN = 15
const MAX_RANK = 26

// Generator tiers. Words up to SHORT_WORD_LEN are returned as-is, words up to
// MEDIUM_WORD_LEN become a literal and a single skip.
const SHORT_WORD_LEN = 3
const MEDIUM_WORD_LEN = 7

// Long words are chunked while more than LONG_TAIL_LEN letters remain, with
// each skip capped at LONG_CHUNK_MAX.
const LONG_TAIL_LEN = 5
const LONG_CHUNK_MAX = 15

var lowerPat = regexp.MustCompile("^[a-z]+$")

// Rank
// Returns the 1-based alphabetic rank of a lowercase letter, 'a' = 1 through
// 'z' = 26. Bytes outside of `a-z` produce values outside of that range.
func Rank(ch byte) int {
	return int(ch) - 'a' + 1
}

// RankLetter
// Returns the lowercase letter whose rank is `n`. The caller is responsible
// for `n` being within 1 and MAX_RANK.
func RankLetter(n int) byte {
	return byte('a' + n - 1)
}

func isWord(word string) bool {
	return len(word) >= 1 && len(word) <= MAX_WORD_LEN &&
		lowerPat.MatchString(word)
}

func isAbbreviation(abbr string) bool {
	return len(abbr) >= 1 && len(abbr) <= MAX_ABBR_LEN &&
		lowerPat.MatchString(abbr)
}

// scan runs the two-pointer automaton over `word` and `abbr`. If `emit` is
// not nil, it is called with every token consumed, in order. Inputs are
// assumed to be well-formed.
func scan(word, abbr string, emit func(Segment)) bool {
	i := 0 // word cursor
	j := 0 // abbreviation cursor
	prevWasSkip := false

	for i < len(word) && j < len(abbr) {
		token := abbr[j]
		if word[i] == token {
			if emit != nil {
				emit(Segment{Kind: Literal, Token: token, Span: word[i : i+1]})
			}
			i++
			j++
			prevWasSkip = false
			continue
		}
		// Not a literal, so the token is a skip over `Rank(token)` letters.
		if prevWasSkip {
			return false
		}
		skip := Rank(token)
		if skip < 1 || i+skip > len(word) {
			return false
		}
		if emit != nil {
			emit(Segment{Kind: Skip, Token: token, Span: word[i : i+skip]})
		}
		i += skip
		j++
		prevWasSkip = true
	}
	// Both sides have to be consumed exactly, there is no trailing skip.
	return i == len(word) && j == len(abbr)
}

// IsValidAbbreviation
// Reports whether `abbr` encodes `word`. Each abbreviation letter either
// matches the next letter of the word, or skips over as many letters as its
// rank. Two skips may not be adjacent. Malformed input is rejected rather
// than treated as an error.
func IsValidAbbreviation(word, abbr string) bool {
	if !isWord(word) || !isAbbreviation(abbr) {
		return false
	}
	return scan(word, abbr, nil)
}

// GenerateAbbreviation
// Builds an abbreviation for `word` using a length-tiered heuristic, and
// returns it only if IsValidAbbreviation accepts it. The second return value
// is false when no certified abbreviation could be built.
func GenerateAbbreviation(word string) (string, bool) {
	if len(word) < 1 || len(word) > MAX_WORD_LEN {
		return "", false
	}
	candidate := candidateFor(word)
	if !IsValidAbbreviation(word, candidate) {
		return "", false
	}
	return candidate, true
}

func candidateFor(word string) string {
	if len(word) <= SHORT_WORD_LEN {
		return word
	}
	if len(word) <= MEDIUM_WORD_LEN {
		// One skip over everything after the first letter.
		return string([]byte{word[0], RankLetter(len(word) - 1)})
	}

	var b strings.Builder
	b.Grow(MAX_ABBR_LEN)
	b.WriteByte(word[0])
	remaining := word[1:]

	for len(remaining) > LONG_TAIL_LEN {
		chunk := len(remaining) - 2
		if chunk > LONG_CHUNK_MAX {
			chunk = LONG_CHUNK_MAX
		}
		if chunk <= MAX_RANK {
			b.WriteByte(RankLetter(chunk))
			remaining = remaining[chunk:]
			if len(remaining) > 0 {
				b.WriteByte(remaining[0])
				remaining = remaining[1:]
			}
		} else {
			b.WriteByte(remaining[0])
			remaining = remaining[1:]
		}
	}

	// Only the final letter of the tail is kept. Tails longer than one
	// letter fail certification.
	if len(remaining) > 0 {
		b.WriteByte(remaining[len(remaining)-1])
	}
	return b.String()
}
