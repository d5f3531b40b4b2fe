package alpha_abbrev

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviatorCaches(t *testing.T) {
	abbreviator, err := NewAbbreviator(16, nil)
	require.NoError(t, err)

	abbr, ok := abbreviator.Generate("laptop")
	assert.True(t, ok)
	assert.Equal(t, "le", abbr)
	abbr, ok = abbreviator.Generate("laptop")
	assert.True(t, ok)
	assert.Equal(t, "le", abbr)

	// Failures are cached too.
	_, ok = abbreviator.Generate("internationalization")
	assert.False(t, ok)
	_, ok = abbreviator.Generate("internationalization")
	assert.False(t, ok)

	hits, misses, size := abbreviator.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(2), misses)
	assert.Equal(t, 2, size)
}

func TestAbbreviatorDefaults(t *testing.T) {
	abbreviator, err := NewAbbreviator(0, nil)
	require.NoError(t, err)
	assert.Nil(t, abbreviator.Expand("le"))
	assert.True(t, abbreviator.Validate("substitution", "sjn"))
	assert.False(t, abbreviator.Validate("test", "ab"))
}

func TestAbbreviatorExpand(t *testing.T) {
	abbreviator, err := NewAbbreviator(8, NewLexicon("laptop", "lament"))
	require.NoError(t, err)
	assert.Equal(t, []string{"lament", "laptop"}, abbreviator.Expand("le"))
}

func TestAbbreviateWords(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	words := make([]string, 0, 500)
	for n := 0; n < 500; n++ {
		words = append(words, randomWord(rng, 1+rng.Intn(MAX_WORD_LEN)))
	}
	// Duplicates exercise the cache under concurrency.
	words = append(words, words[:50]...)

	for _, threads := range []int{0, 1, 8} {
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			abbreviator, err := NewAbbreviator(64, nil)
			require.NoError(t, err)
			results := abbreviator.AbbreviateWords(words, threads)
			require.Len(t, results, len(words))
			for idx, result := range results {
				abbr, ok := GenerateAbbreviation(words[idx])
				assert.Equal(t, words[idx], result.Word)
				assert.Equal(t, abbr, result.Abbreviation)
				assert.Equal(t, ok, result.Valid)
			}
		})
	}
}

func TestAbbreviateWordsEmpty(t *testing.T) {
	abbreviator, err := NewAbbreviator(8, nil)
	require.NoError(t, err)
	assert.Empty(t, abbreviator.AbbreviateWords(nil, 4))
}
