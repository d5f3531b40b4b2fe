//go:build !wasip1 && !js

package alpha_abbrev

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// SentenceInitialisms
// Segments `text` into sentences and returns the initialism of each one, in
// order. Sentences without any words are dropped.
func SentenceInitialisms(text string) ([]string, error) {
	initialisms := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return initialisms, nil
	}
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return initialisms, err
	}
	for _, sentence := range doc.Sentences() {
		if initialism := CreateInitialism(sentence.Text); initialism != "" {
			initialisms = append(initialisms, initialism)
		}
	}
	return initialisms, nil
}
