package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/alpha_abbrev"
	"github.com/wbrown/alpha_abbrev/pkg/config"
	"github.com/yargevad/filepathx"
)

var ErrNoTexts = errors.New("no .txt files found")
var ErrUnknownFormat = errors.New("unknown output format")

type PathInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// GlobTexts
// Given a directory path, recursively finds all `.txt` files, returning a
// slice of PathInfo.
func GlobTexts(dirPath string) (pathInfos []PathInfo, err error) {
	textPaths, err := filepathx.Glob(dirPath + "/**/*.txt")
	if err != nil {
		return nil, err
	}
	if len(textPaths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTexts, dirPath)
	}
	pathInfos = make([]PathInfo, 0, len(textPaths))
	for _, currPath := range textPaths {
		stat, statErr := os.Stat(currPath)
		if statErr != nil {
			return nil, statErr
		}
		if stat.IsDir() {
			continue
		}
		pathInfos = append(pathInfos, PathInfo{
			Path:    currPath,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
		})
	}
	return pathInfos, nil
}

// SortPathInfos orders paths by `order`, one of `path`, `size_ascending` or
// `size_descending`.
func SortPathInfos(pathInfos []PathInfo, order string) error {
	switch order {
	case "", "path":
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Path < pathInfos[j].Path
		})
	case "size_ascending":
		sort.SliceStable(pathInfos, func(i, j int) bool {
			return pathInfos[i].Size < pathInfos[j].Size
		})
	case "size_descending":
		sort.SliceStable(pathInfos, func(i, j int) bool {
			return pathInfos[i].Size > pathInfos[j].Size
		})
	default:
		return fmt.Errorf("invalid reorder %q", order)
	}
	return nil
}

// CollectWords
// Reads every text in `pathInfos` and returns the distinct words in the
// order they are first seen, along with the number of bytes read.
func CollectWords(pathInfos []PathInfo) (words []string, read uint64,
	err error) {
	seen := make(map[string]struct{})
	words = make([]string, 0)
	for _, pathInfo := range pathInfos {
		handle, openErr := os.Open(pathInfo.Path)
		if openErr != nil {
			return nil, read, openErr
		}
		log.Printf("Reading %s (%s)", pathInfo.Path,
			humanize.Bytes(uint64(pathInfo.Size)))
		words, err = appendWords(handle, seen, words)
		handle.Close()
		if err != nil {
			return nil, read, fmt.Errorf("error reading %s: %w",
				pathInfo.Path, err)
		}
		read += uint64(pathInfo.Size)
	}
	return words, read, nil
}

// appendWords adds the words of `reader` not yet in `seen` to `words`.
func appendWords(reader io.Reader, seen map[string]struct{},
	words []string) ([]string, error) {
	nextWord, readErr := alpha_abbrev.WordSplitter(bufio.NewReader(reader))
	for word := nextWord(); word != nil; word = nextWord() {
		if _, ok := seen[*word]; ok {
			continue
		}
		seen[*word] = struct{}{}
		words = append(words, *word)
	}
	return words, readErr()
}

func WriteResults(w io.Writer, results alpha_abbrev.Results,
	format string) error {
	switch format {
	case config.FormatTSV:
		return results.WriteTSV(w)
	case config.FormatJSONL:
		return results.WriteJSONL(w)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

type Options struct {
	InputDir   string
	OutputPath string
	Format     string
	Reorder    string
	Threads    int
	CacheSize  int
	ValidOnly  bool
}

// Run abbreviates every distinct word found under `opts.InputDir` and writes
// the results to `opts.OutputPath`. Nothing is read or written when the
// output format is unknown.
func Run(opts Options) (results alpha_abbrev.Results, err error) {
	switch opts.Format {
	case config.FormatTSV, config.FormatJSONL:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
	pathInfos, err := GlobTexts(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if err = SortPathInfos(pathInfos, opts.Reorder); err != nil {
		return nil, err
	}
	words, read, err := CollectWords(pathInfos)
	if err != nil {
		return nil, err
	}
	log.Printf("Read %s, %d distinct words", humanize.Bytes(read),
		len(words))

	abbreviator, err := alpha_abbrev.NewAbbreviator(opts.CacheSize, nil)
	if err != nil {
		return nil, err
	}
	results = abbreviator.AbbreviateWords(words, opts.Threads)
	if opts.ValidOnly {
		kept := make(alpha_abbrev.Results, 0, results.Succeeded())
		for _, result := range results {
			if result.Valid {
				kept = append(kept, result)
			}
		}
		results = kept
	}

	outputFile, err := os.Create(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := outputFile.Close(); closeErr != nil && err == nil {
			results = nil
			err = fmt.Errorf("error closing %s: %w", opts.OutputPath,
				closeErr)
		}
	}()
	if err = WriteResults(outputFile, results, opts.Format); err != nil {
		return nil, err
	}
	return results, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	inputDir := flag.String("input", "",
		"input directory to search recursively for .txt files")
	outputFile := flag.String("output", "abbreviations.tsv",
		"output file to write abbreviations to")
	format := flag.String("format", cfg.OutputFormat,
		"output format [tsv, jsonl]")
	reorderPaths := flag.String("reorder", "path",
		"input order [path, size_ascending, size_descending]")
	threads := flag.Int("threads", cfg.Threads,
		"number of abbreviation threads")
	validOnly := flag.Bool("valid_only", false,
		"only write words that could be abbreviated")
	flag.Parse()
	if *inputDir == "" {
		flag.Usage()
		log.Fatal("Must provide -input for directory source")
	}

	log.Printf("Abbreviator input source: %s", *inputDir)
	log.Printf("Abbreviator output: %s (%s)", *outputFile, *format)

	begin := time.Now()
	results, err := Run(Options{
		InputDir:   *inputDir,
		OutputPath: *outputFile,
		Format:     *format,
		Reorder:    *reorderPaths,
		Threads:    *threads,
		CacheSize:  cfg.CacheSize,
		ValidOnly:  *validOnly,
	})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(begin)
	log.Printf("%d words, %d abbreviated in %0.2fs, %0.2f words/s",
		len(results), results.Succeeded(), elapsed.Seconds(),
		float64(len(results))/elapsed.Seconds())
}
