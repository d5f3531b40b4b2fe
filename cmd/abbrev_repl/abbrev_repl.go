package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wbrown/alpha_abbrev"
	"github.com/wbrown/alpha_abbrev/pkg/config"
)

// A REPL for interacting with the `alpha_abbrev` abbreviator.

const usage = `commands:
  valid <word> <abbr>    check an abbreviation
  gen <word>             generate an abbreviation
  explain <word> <abbr>  show what each abbreviation letter covers
  expand <abbr>          list lexicon words an abbreviation encodes
  init <text>            initialism of a phrase
  sentences <text>       initialism of each sentence
  stats                  cache statistics
  help                   this message`

const none = "(none)"

func loadLexicon(uri string, cacheDir string) (*alpha_abbrev.Lexicon, error) {
	if uri == "" {
		return alpha_abbrev.NewDefaultLexicon()
	}
	lexicon, rejected, err := alpha_abbrev.LoadLexicon(uri, cacheDir)
	if err != nil {
		return nil, err
	}
	if rejected > 0 {
		log.Printf("Skipped %d words in %s that cannot be abbreviated",
			rejected, uri)
	}
	return lexicon, nil
}

// evaluate runs a single REPL line and returns what should be printed.
func evaluate(abbreviator *alpha_abbrev.Abbreviator, line string) string {
	command, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch command {
	case "":
		return ""
	case "help":
		return usage
	case "valid":
		if len(args) != 2 {
			return "usage: valid <word> <abbr>"
		}
		return fmt.Sprintf("%t", abbreviator.Validate(args[0], args[1]))
	case "gen":
		if len(args) != 1 {
			return "usage: gen <word>"
		}
		if abbr, ok := abbreviator.Generate(args[0]); ok {
			return abbr
		}
		return none
	case "explain":
		if len(args) != 2 {
			return "usage: explain <word> <abbr>"
		}
		if segments, ok := alpha_abbrev.Explain(args[0], args[1]); ok {
			return segments.String()
		}
		return "invalid"
	case "expand":
		if len(args) != 1 {
			return "usage: expand <abbr>"
		}
		if words := abbreviator.Expand(args[0]); len(words) > 0 {
			return strings.Join(words, ", ")
		}
		return none
	case "init":
		return alpha_abbrev.CreateInitialism(rest)
	case "sentences":
		initialisms, err := alpha_abbrev.SentenceInitialisms(rest)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return strings.Join(initialisms, " ")
	case "stats":
		hits, misses, size := abbreviator.Stats()
		return fmt.Sprintf("hits=%d misses=%d size=%d", hits, misses, size)
	}
	return fmt.Sprintf("unknown command %q, try `help`", command)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lexiconOpt := flag.String("lexicon", cfg.Lexicon,
		"word list to expand against, a path or URL; embedded if empty")
	cacheOpt := flag.Int("cache", cfg.CacheSize,
		"number of generated abbreviations to cache")
	flag.Parse()

	lexicon, err := loadLexicon(*lexiconOpt, cfg.LexiconCache)
	if err != nil {
		log.Fatal(err)
	}
	abbreviator, err := alpha_abbrev.NewAbbreviator(*cacheOpt, lexicon)
	if err != nil {
		log.Fatal(err)
	}

	reader := bufio.NewReader(os.Stdin)
	// Provide a REPL
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err == io.EOF && input == "" {
			fmt.Println()
			return
		} else if err != nil && err != io.EOF {
			log.Fatal(err)
		}
		if output := evaluate(abbreviator, input); output != "" {
			fmt.Println(output)
		}
	}
}
