package resources

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

//go:embed data/words.txt
var f embed.FS

const DefaultWordList = "data/words.txt"

var (
	ErrEmptyPath = errors.New("resources: empty word list path")
	ErrNotFound  = errors.New("resources: word list not found")
)

// Resource is a word list, either memory-mapped from disk or embedded in the
// binary.
type Resource struct {
	Name  string
	file  io.Closer
	unmap func() error
	Data  *[]byte
}

// Cleanup unmaps the data and releases the underlying file handle, if any.
// Data must not be used afterwards. Calling it again is a no-op. Both steps
// are always attempted; the first error is returned.
func (rsrc *Resource) Cleanup() error {
	var err error
	if rsrc.unmap != nil {
		if unmapErr := rsrc.unmap(); unmapErr != nil {
			err = fmt.Errorf("error unmapping %s: %w", rsrc.Name, unmapErr)
		}
		rsrc.unmap = nil
		rsrc.Data = nil
	}
	if rsrc.file != nil {
		if closeErr := rsrc.file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", rsrc.Name, closeErr)
		}
		rsrc.file = nil
	}
	return err
}

// Size returns the size of the word list in bytes.
func (rsrc *Resource) Size() uint64 {
	if rsrc.Data == nil {
		return 0
	}
	return uint64(len(*rsrc.Data))
}

// Describe returns a short human readable description of the resource.
func (rsrc *Resource) Describe() string {
	return fmt.Sprintf("%s (%s)", rsrc.Name, humanize.Bytes(rsrc.Size()))
}

// Words
// Returns the words of the list, one per line. Leading and trailing
// whitespace is dropped, as are blank lines and `#` comments. No other
// validation is done here.
func (rsrc *Resource) Words() []string {
	words := make([]string, 0)
	if rsrc.Data == nil {
		return words
	}
	scanner := bufio.NewScanner(bytes.NewReader(*rsrc.Data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// EmbeddedWordList
// Returns the word list compiled into the binary.
func EmbeddedWordList() (*Resource, error) {
	data, err := f.ReadFile(DefaultWordList)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &Resource{Name: "embedded:" + DefaultWordList, Data: &data}, nil
}
