package resources

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteCounter counts the number of bytes written to it, and every 10 seconds,
// it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total uint64
	Last  time.Time
	Path  string
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Since(wc.Last).Seconds() > 10 {
		wc.Last = time.Now()
		log.Printf("Downloading %s... %s completed.",
			wc.Path, humanize.Bytes(wc.Total))
	}
	return n, nil
}

func isValidUrl(toTest string) bool {
	if _, err := url.ParseRequestURI(toTest); err != nil {
		return false
	}
	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return true
}

// OpenWordList
// Opens the word list at `uri`. Local paths are memory-mapped; http and
// https URLs are downloaded into `cacheDir` first, and re-used from there
// on subsequent calls. An empty `cacheDir` uses the OS temporary directory.
func OpenWordList(uri string, cacheDir string) (*Resource, error) {
	if uri == "" {
		return nil, ErrEmptyPath
	}
	if isValidUrl(uri) {
		localPath, err := download(uri, cacheDir)
		if err != nil {
			return nil, err
		}
		return openLocal(localPath)
	}
	return openLocal(uri)
}

func openLocal(filePath string) (*Resource, error) {
	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, filePath)
	} else if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filePath, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	// Zero length files cannot be mapped.
	if stat.Size() == 0 {
		empty := make([]byte, 0)
		return &Resource{Name: filePath, file: file, Data: &empty}, nil
	}
	data, unmap, err := readMmap(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("error trying to mmap %s: %w", filePath, err)
	}
	return &Resource{Name: filePath, file: file, unmap: unmap, Data: data}, nil
}

// cachePath maps `uri` to a file under `cacheDir` keyed on its host and full
// path, so that lists sharing a file name don't collide.
func cachePath(uri string, cacheDir string) string {
	u, _ := url.Parse(uri)
	host := strings.ReplaceAll(u.Host, ":", "_")
	urlPath := path.Clean("/" + u.Path)
	if urlPath == "/" {
		urlPath = "/wordlist.txt"
	}
	return filepath.Join(cacheDir, host, filepath.FromSlash(urlPath))
}

func download(uri string, cacheDir string) (targetPath string, err error) {
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("error creating cache dir %s: %w", cacheDir, err)
	}
	targetPath = cachePath(uri, cacheDir)
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return "", fmt.Errorf("error creating cache dir for %s: %w", uri, err)
	}
	if stat, err := os.Stat(targetPath); err == nil && stat.Size() > 0 {
		log.Printf("Skipping %s... already cached at %s", uri, targetPath)
		return targetPath, nil
	}

	resp, err := http.Get(uri)
	if err != nil {
		return "", fmt.Errorf("cannot retrieve %s: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cannot retrieve %s: %s", uri, resp.Status)
	}

	out, err := os.OpenFile(targetPath, os.O_TRUNC|os.O_RDWR|os.O_CREATE,
		0644)
	if err != nil {
		return "", fmt.Errorf("error opening %s for write: %w", targetPath,
			err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			os.Remove(targetPath)
			targetPath = ""
			err = fmt.Errorf("error writing %s: %w", uri, closeErr)
		}
	}()
	counter := &WriteCounter{Last: time.Now(), Path: uri}
	written, err := io.Copy(out, io.TeeReader(resp.Body, counter))
	if err != nil {
		os.Remove(targetPath)
		return "", fmt.Errorf("error downloading %s: %w", uri, err)
	}
	log.Printf("Downloaded %s... %s completed.", uri,
		humanize.Bytes(uint64(written)))
	return targetPath, nil
}
