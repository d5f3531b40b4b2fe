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

// ExpandLines
// Reads one abbreviation per line from `reader` and writes
// `abbr<TAB>word,word,...` for each to `writer`, with `-` when nothing in the
// lexicon matches. Blank lines are skipped. Returns the number of
// abbreviations read and how many of them matched at least one word.
func ExpandLines(lexicon *alpha_abbrev.Lexicon, reader io.Reader,
	writer io.Writer) (read int, matched int, err error) {
	scanner := bufio.NewScanner(reader)
	bw := bufio.NewWriter(writer)
	for scanner.Scan() {
		abbr := strings.TrimSpace(scanner.Text())
		if abbr == "" {
			continue
		}
		read++
		expansion := "-"
		if words := lexicon.Expand(abbr); len(words) > 0 {
			matched++
			expansion = strings.Join(words, ",")
		}
		if _, err = fmt.Fprintf(bw, "%s\t%s\n", abbr, expansion); err != nil {
			return read, matched, err
		}
	}
	if err = scanner.Err(); err != nil {
		return read, matched, err
	}
	return read, matched, bw.Flush()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lexiconPath := flag.String("lexicon", cfg.Lexicon,
		"word list to expand against, a path or URL; embedded if empty")
	inputFile := flag.String("input", "",
		"file with one abbreviation per line")
	outputFile := flag.String("output", "expanded.tsv",
		"output file to write expansions to")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}
	if *outputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -output")
	}

	// check if input file exists
	if _, err := os.Stat(*inputFile); os.IsNotExist(err) {
		log.Fatal("Input file does not exist")
	}

	var lexicon *alpha_abbrev.Lexicon
	if *lexiconPath == "" {
		lexicon, err = alpha_abbrev.NewDefaultLexicon()
	} else {
		var rejected int
		lexicon, rejected, err = alpha_abbrev.LoadLexicon(*lexiconPath,
			cfg.LexiconCache)
		if rejected > 0 {
			log.Printf("Skipped %d words in %s that cannot be abbreviated",
				rejected, *lexiconPath)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Lexicon has %d words", lexicon.Len())

	inputFileHandle, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer inputFileHandle.Close()

	outputFileHandle, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer outputFileHandle.Close()

	read, matched, err := ExpandLines(lexicon, inputFileHandle,
		outputFileHandle)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Expanded %d of %d abbreviations", matched, read)
}
