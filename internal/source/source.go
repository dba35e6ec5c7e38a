// Package source opens the inputs pr paginates. Compressed inputs are
// detected by their magic bytes and decompressed on the fly, and inputs in a
// legacy charset can be decoded to UTF-8.
package source

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/DataDog/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

// DefaultMaxLineLength is the longest line accepted by default.
const DefaultMaxLineLength = 1024 * 1024

const initialBufferSize = 64 * 1024

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrUnknownEncoding is returned for a charset name IANA does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Options controls how an input is decoded.
type Options struct {
	// Encoding decodes the input to UTF-8. Nil means the input is UTF-8.
	Encoding encoding.Encoding
	// MaxLineLength bounds a single line. Zero means DefaultMaxLineLength.
	MaxLineLength int
}

// Source is an open input read line by line.
type Source struct {
	*bufio.Scanner

	// Name is the name shown in page headers. It is empty for stdin.
	Name string
	// ModTime is the modification time of a regular file, zero for stdin.
	ModTime time.Time
	// Compression names the detected compression, or "".
	Compression string

	closers []io.Closer
}

// ResolveEncoding looks up an IANA charset name. An empty name resolves to
// nil, meaning UTF-8.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Open opens path, or stdin when path is "" or "-".
func Open(path string, opts Options) (*Source, error) {
	if path == "" || path == Stdin {
		return FromReader("", os.Stdin, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	src, err := FromReader(path, f, opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	src.ModTime = info.ModTime()
	src.closers = append(src.closers, f)
	return src, nil
}

// FromReader wraps r. It does not take ownership of r.
func FromReader(name string, r io.Reader, opts Options) (*Source, error) {
	src := &Source{Name: name}

	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))

	var decoded io.Reader = br
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		src.Compression = "gzip"
		src.closers = append(src.closers, zr)
		decoded = zr
	case bytes.HasPrefix(magic, zstdMagic):
		zr := zstd.NewReader(br)
		src.Compression = "zstd"
		src.closers = append(src.closers, zr)
		decoded = zr
	}

	if opts.Encoding != nil {
		decoded = transform.NewReader(decoded, opts.Encoding.NewDecoder())
	}

	maxLine := opts.MaxLineLength
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLength
	}
	src.Scanner = bufio.NewScanner(decoded)
	src.Scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxLine)), maxLine)
	return src, nil
}

// Close releases the decompressor, then the underlying file.
func (s *Source) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
