//go:build wasip1 || js

package alpha_abbrev

import "errors"

func SentenceInitialisms(text string) ([]string, error) {
	return nil, errors.New("SentenceInitialisms is not implemented")
}
