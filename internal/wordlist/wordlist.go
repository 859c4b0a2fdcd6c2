// Package wordlist loads diceware wordlists from plain or compressed files.
package wordlist

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/floh1695/diceware/internal/logging"
)

// ErrEmpty means the file held no usable words after comments and blank
// lines were skipped.
var ErrEmpty = errors.New("wordlist contains no words")

// Compression magic numbers checked against the start of the file.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// List is a loaded wordlist plus the file metadata used for staleness
// checks and reporting.
type List struct {
	Words   []string
	Path    string
	Size    int64
	ModTime time.Time
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.Words) }

// Load reads a wordlist from path. Gzip, zstd and xz files are detected by
// their magic bytes and decompressed transparently. Lines may be bare
// words or carry a leading dice index ("11116	aardvark"); blank lines and
// '#' comments are skipped. Duplicate words are kept but reported through
// the context logger since they lower the effective entropy.
func Load(ctx context.Context, path string) (*List, error) {
	log := logging.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat wordlist: %w", err)
	}

	r, closeReader, format, err := decompressingReader(f)
	if err != nil {
		return nil, err
	}
	if closeReader != nil {
		defer closeReader()
	}
	if format != "" {
		log.Debug("decompressing", format, "wordlist")
	}

	words, duplicates, err := scanWords(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	if duplicates > 0 {
		log.Warn("wordlist has", duplicates, "duplicate words; effective entropy is lower than reported")
	}

	return &List{
		Words:   words,
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// decompressingReader sniffs the compression format and wraps f
// accordingly. The returned close function releases decoder resources and
// may be nil; the format name is "" for plain text.
func decompressingReader(f io.Reader) (io.Reader, func(), string, error) {
	br := bufio.NewReader(f)
	head, err := br.Peek(len(magicXz))
	if err != nil && err != io.EOF {
		return nil, nil, "", fmt.Errorf("failed to sniff wordlist header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to open gzip wordlist: %w", err)
		}
		return zr, func() { zr.Close() }, "gzip", nil
	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to open zstd wordlist: %w", err)
		}
		return zr, zr.Close, "zstd", nil
	case bytes.HasPrefix(head, magicXz):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to open xz wordlist: %w", err)
		}
		return xr, nil, "xz", nil
	}

	return br, nil, "", nil
}

// scanWords collects one word per line and counts duplicates.
func scanWords(r io.Reader) ([]string, int, error) {
	var words []string
	seen := make(map[string]struct{})
	duplicates := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := stripDiceIndex(line)
		if _, ok := seen[word]; ok {
			duplicates++
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	return words, duplicates, nil
}

// stripDiceIndex drops a leading all-digit dice index so both indexed and
// bare lists load the same way.
func stripDiceIndex(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 && isDigits(fields[0]) {
		return fields[1]
	}
	return fields[0]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
