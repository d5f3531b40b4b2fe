package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/alpha_abbrev"
)

func TestEvaluate(t *testing.T) {
	lexicon := alpha_abbrev.NewLexicon("laptop", "lament", "substitution")
	abbreviator, err := alpha_abbrev.NewAbbreviator(8, lexicon)
	require.NoError(t, err)

	tests := []struct {
		Line     string
		Expected string
	}{
		{"", ""},
		{"   \n", ""},
		{"valid internationalization imzdn\n", "true"},
		{"valid test ab", "false"},
		{"valid test", "usage: valid <word> <abbr>"},
		{"gen laptop", "le"},
		{"gen internationalization", "(none)"},
		{"gen", "usage: gen <word>"},
		{"explain substitution sjn", "s[ubstitutio]n"},
		{"explain apple ae", "invalid"},
		{"expand le", "lament, laptop"},
		{"expand zz", "(none)"},
		{"init  world wide   web \n", "www"},
		{"init", ""},
		{"stats", "hits=0 misses=2 size=2"},
		{"frobnicate", "unknown command \"frobnicate\", try `help`"},
	}
	for _, test := range tests {
		assert.Equal(t, test.Expected, evaluate(abbreviator, test.Line),
			"%q", test.Line)
	}
	assert.Contains(t, evaluate(abbreviator, "help"), "expand <abbr>")
}

func TestLoadLexicon(t *testing.T) {
	lexicon, err := loadLexicon("", "")
	require.NoError(t, err)
	assert.True(t, lexicon.Contains("laptop"))

	_, err = loadLexicon("/does/not/exist.txt", "")
	assert.Error(t, err)
}
