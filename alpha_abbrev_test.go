package alpha_abbrev

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ValidationTest struct {
	Name     string
	Word     string
	Abbr     string
	Expected bool
}

var validationTests = []ValidationTest{
	{"Mixed skips and literals", "internationalization", "imzdn", true},
	{"Single interior skip", "substitution", "sjn", true},
	{"Adjacent skips", "test", "ab", false},
	{"Literal mismatch partway", "apple", "aple", false},
	{"Skip overruns word", "apple", "ae", false},
	{"Single letter literal", "a", "a", true},
	{"Single letter overrun", "a", "b", false},
	{"Identity", "laptop", "laptop", true},
	{"Skip to end", "laptop", "le", true},
	{"Abbreviation left over", "abc", "abcd", false},
	{"Word left over", "abcd", "ab", false},
	{"No implicit trailing skip", "ab", "a", false},
	{"Skip then literal", "test", "at", false},
	{"Leading skip", "test", "ct", true},
	{"Empty word", "", "a", false},
	{"Empty abbreviation", "a", "", false},
	{"Uppercase word", "Apple", "ae", false},
	{"Uppercase abbreviation", "apple", "Aple", false},
	{"Digit in word", "app1e", "ad", false},
	{"Accented word", "café", "cc", false},
	{"Word too long", strings.Repeat("a", 26), "a", false},
	{"Word at limit", strings.Repeat("a", 25), strings.Repeat("a", 15), false},
	{"Abbreviation too long", strings.Repeat("a", 16), strings.Repeat("a", 16), false},
	{"Abbreviation at limit", strings.Repeat("a", 15), strings.Repeat("a", 15), true},
	{"Longest skip", "a" + strings.Repeat("b", 24), "ax", true},
	{"Abbreviation past longest skip", "a" + strings.Repeat("b", 24), "axb", false},
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank('a'))
	assert.Equal(t, 13, Rank('m'))
	assert.Equal(t, 26, Rank('z'))
	assert.Less(t, Rank('A'), 1)
	for n := 1; n <= MAX_RANK; n++ {
		assert.Equal(t, n, Rank(RankLetter(n)))
	}
}

func TestIsValidAbbreviation(t *testing.T) {
	for _, test := range validationTests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected,
				IsValidAbbreviation(test.Word, test.Abbr),
				"%s / %s", test.Word, test.Abbr)
		})
	}
}

type GenerationTest struct {
	Word     string
	Expected string
	Valid    bool
}

var generationTests = []GenerationTest{
	{"a", "a", true},
	{"abc", "abc", true},
	{"test", "tc", true},
	{"laptop", "le", true},
	{"seventy", "sf", true},
	{"abcdefgh", "aegh", true},
	{"typescript", "tgpt", true},
	{"programming", "phng", true},
	{"abcdefghijklmnopqrstuvwxy", "aoqfxy", true},
	// The tail keeps only its last letter, so this fails certification.
	{"internationalization", "", false},
	// The medium skip letter is also the second letter, and reads as a
	// literal.
	{"acct", "", false},
	{"", "", false},
	{strings.Repeat("a", 26), "", false},
	{"ABC", "", false},
	{"ab1", "", false},
	{"Laptop", "", false},
}

func TestGenerateAbbreviation(t *testing.T) {
	for _, test := range generationTests {
		t.Run(test.Word, func(t *testing.T) {
			abbr, ok := GenerateAbbreviation(test.Word)
			assert.Equal(t, test.Valid, ok)
			assert.Equal(t, test.Expected, abbr)
		})
	}
}

func TestGenerateAbbreviationLaptopRoundTrip(t *testing.T) {
	abbr, ok := GenerateAbbreviation("laptop")
	require.True(t, ok)
	assert.True(t, IsValidAbbreviation("laptop", abbr))
}

func randomWord(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for idx := range b {
		b[idx] = byte('a' + rng.Intn(26))
	}
	return string(b)
}

func TestGenerateAbbreviationCertifies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	produced := 0
	for length := 1; length <= MAX_WORD_LEN; length++ {
		for n := 0; n < 500; n++ {
			word := randomWord(rng, length)
			abbr, ok := GenerateAbbreviation(word)
			if !ok {
				assert.Empty(t, abbr)
				continue
			}
			produced++
			assert.True(t, IsValidAbbreviation(word, abbr),
				"%s -> %s", word, abbr)
		}
	}
	assert.Greater(t, produced, 0)
}

func TestGenerateAbbreviationDeterministic(t *testing.T) {
	for _, word := range []string{"laptop", "programming", "typescript"} {
		first, _ := GenerateAbbreviation(word)
		second, _ := GenerateAbbreviation(word)
		assert.Equal(t, first, second)
	}
}

func TestExplain(t *testing.T) {
	segments, ok := Explain("internationalization", "imzdn")
	require.True(t, ok)
	assert.Equal(t, Segments{
		{Literal, 'i', "i"},
		{Skip, 'm', "nternationali"},
		{Literal, 'z', "z"},
		{Skip, 'd', "atio"},
		{Literal, 'n', "n"},
	}, segments)
	assert.Equal(t, "i[nternationali]z[atio]n", segments.String())
	assert.Equal(t, "internationalization", segments.Word())
	assert.Equal(t, "imzdn", segments.Abbreviation())

	segments, ok = Explain("substitution", "sjn")
	require.True(t, ok)
	assert.Equal(t, "s[ubstitutio]n", segments.String())

	segments, ok = Explain("test", "ab")
	assert.False(t, ok)
	assert.Nil(t, segments)
}

func TestExplainAgreesWithValidator(t *testing.T) {
	for _, test := range validationTests {
		segments, ok := Explain(test.Word, test.Abbr)
		assert.Equal(t, test.Expected, ok, test.Name)
		if ok {
			assert.Equal(t, test.Word, segments.Word(), test.Name)
			assert.Equal(t, test.Abbr, segments.Abbreviation(), test.Name)
		}
	}
}

// Accepted abbreviations consume the word exactly and never place two
// skips next to each other.
func TestAcceptedAbbreviationLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	accepted := 0
	for n := 0; n < 20000; n++ {
		// A small alphabet makes literal matches likely.
		word := []byte(randomWord(rng, 1+rng.Intn(MAX_WORD_LEN)))
		abbr := []byte(randomWord(rng, 1+rng.Intn(6)))
		for idx := range word {
			word[idx] = 'a' + word[idx]%4
		}
		segments, ok := Explain(string(word), string(abbr))
		assert.Equal(t, ok, IsValidAbbreviation(string(word), string(abbr)))
		if !ok {
			continue
		}
		accepted++
		assert.Equal(t, string(word), segments.Word())
		for idx := 1; idx < len(segments); idx++ {
			assert.False(t,
				segments[idx-1].Kind == Skip && segments[idx].Kind == Skip,
				"adjacent skips in %s / %s", word, abbr)
		}
		for _, segment := range segments {
			if segment.Kind == Skip {
				assert.Equal(t, Rank(segment.Token), len(segment.Span))
				assert.NotEqual(t, segment.Token, segment.Span[0])
			}
		}
	}
	assert.Greater(t, accepted, 0)
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "unknown", SegmentKind(9).String())
}

func TestCreateInitialism(t *testing.T) {
	tests := map[string]string{
		"world wide web":           "www",
		"United States of America": "USoA",
		"":                         "",
		"   ":                      "",
		"hello":                    "h",
		"  tabs\tand\nnewlines  ":  "tan",
		"a b c d":                  "abcd",
		"école normale":            "én",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, CreateInitialism(input), "%q", input)
	}
}
