package alpha_abbrev

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Result is the outcome of abbreviating a single word.
type Result struct {
	Word         string `json:"word"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Valid        bool   `json:"valid"`
}

type Results []Result

// Succeeded returns the number of results that carry an abbreviation.
func (results Results) Succeeded() int {
	count := 0
	for idx := range results {
		if results[idx].Valid {
			count++
		}
	}
	return count
}

// WriteTSV writes one `word<TAB>abbreviation` line per result. Words without
// an abbreviation get `-`.
func (results Results) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, result := range results {
		abbr := result.Abbreviation
		if !result.Valid {
			abbr = "-"
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", result.Word,
			abbr); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSONL writes one JSON object per result.
func (results Results) WriteJSONL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	encoder := json.NewEncoder(bw)
	for idx := range results {
		if err := encoder.Encode(&results[idx]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WordSplitter
// Returns a function that yields the next lowercased run of letters from
// `reader` on each call, and nil once the reader is exhausted. Everything
// that isn't a letter separates words. A read error other than io.EOF also
// ends the stream; the second function returns it once nil was yielded.
func WordSplitter(reader io.RuneReader) (func() *string, func() error) {
	var b strings.Builder
	var readErr error
	flush := func() *string {
		if b.Len() == 0 {
			return nil
		}
		word := b.String()
		b.Reset()
		return &word
	}
	nextWord := func() *string {
		if readErr != nil {
			return flush()
		}
		for {
			r, size, err := reader.ReadRune()
			if err != nil || size == 0 {
				if err != nil && err != io.EOF {
					readErr = err
				}
				return flush()
			}
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToLower(r))
				continue
			}
			if b.Len() > 0 {
				return flush()
			}
		}
	}
	return nextWord, func() error { return readErr }
}
