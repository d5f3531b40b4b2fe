package main

//go:generate gopherjs build --minify

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
	"github.com/wbrown/alpha_abbrev"
)

// GenerateAbbreviation returns null to JavaScript when no abbreviation could
// be generated.
func GenerateAbbreviation(word string) interface{} {
	abbr, ok := alpha_abbrev.GenerateAbbreviation(word)
	if !ok {
		return nil
	}
	return abbr
}

func Explain(word string, abbr string) []map[string]interface{} {
	segments, ok := alpha_abbrev.Explain(word, abbr)
	if !ok {
		return nil
	}
	explained := make([]map[string]interface{}, len(segments))
	for idx, segment := range segments {
		explained[idx] = map[string]interface{}{
			"kind":  segment.Kind.String(),
			"token": string(segment.Token),
			"span":  segment.Span,
		}
	}
	return explained
}

func init() {
	exports := js.Module.Get("exports")
	exports.Set("isValidAbbreviation", alpha_abbrev.IsValidAbbreviation)
	exports.Set("generateAbbreviation", GenerateAbbreviation)
	exports.Set("createInitialism", alpha_abbrev.CreateInitialism)
	exports.Set("explain", Explain)
	log.Printf("Alphabetic abbreviation module loaded")
}

func main() {

}
