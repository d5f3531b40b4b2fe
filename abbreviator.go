package alpha_abbrev

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

const ABBREV_LRU_SZ = 65536
const WORDCHAN_SZ = 4096

type cachedAbbreviation struct {
	abbr string
	ok   bool
}

// Abbreviator memoizes GenerateAbbreviation and carries an optional Lexicon
// to expand abbreviations against. All methods are safe for concurrent use.
type Abbreviator struct {
	Cache     *lru.ARCCache
	Lexicon   *Lexicon
	lruHits   atomic.Int64
	lruMisses atomic.Int64
}

// NewAbbreviator
// Returns an Abbreviator caching up to `cacheSize` words. A non-positive
// size uses ABBREV_LRU_SZ. `lexicon` may be nil.
func NewAbbreviator(cacheSize int, lexicon *Lexicon) (*Abbreviator, error) {
	if cacheSize <= 0 {
		cacheSize = ABBREV_LRU_SZ
	}
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Abbreviator{Cache: cache, Lexicon: lexicon}, nil
}

// Generate is GenerateAbbreviation with a cache in front of it.
func (abbreviator *Abbreviator) Generate(word string) (string, bool) {
	if cached, ok := abbreviator.Cache.Get(word); ok {
		abbreviator.lruHits.Add(1)
		result := cached.(cachedAbbreviation)
		return result.abbr, result.ok
	}
	abbreviator.lruMisses.Add(1)
	abbr, ok := GenerateAbbreviation(word)
	abbreviator.Cache.Add(word, cachedAbbreviation{abbr, ok})
	return abbr, ok
}

func (abbreviator *Abbreviator) Validate(word, abbr string) bool {
	return IsValidAbbreviation(word, abbr)
}

// Expand returns the lexicon words `abbr` abbreviates, or nil without a
// lexicon.
func (abbreviator *Abbreviator) Expand(abbr string) []string {
	if abbreviator.Lexicon == nil {
		return nil
	}
	return abbreviator.Lexicon.Expand(abbr)
}

// Stats returns the cache hits, misses and current number of entries.
func (abbreviator *Abbreviator) Stats() (hits, misses int64, size int) {
	return abbreviator.lruHits.Load(), abbreviator.lruMisses.Load(),
		abbreviator.Cache.Len()
}

// AbbreviateWords
// Generates abbreviations for `words` across `threads` goroutines. The
// returned Results line up with `words` index for index.
func (abbreviator *Abbreviator) AbbreviateWords(words []string,
	threads int) Results {
	if threads < 1 {
		threads = 1
	}
	results := make(Results, len(words))
	bufSz := WORDCHAN_SZ
	if len(words) < bufSz {
		bufSz = len(words)
	}
	indexes := make(chan int, bufSz)
	var wg sync.WaitGroup
	for thread := 0; thread < threads; thread++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				abbr, ok := abbreviator.Generate(words[idx])
				results[idx] = Result{
					Word:         words[idx],
					Abbreviation: abbr,
					Valid:        ok,
				}
			}
		}()
	}
	for idx := range words {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()
	return results
}
