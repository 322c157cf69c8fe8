// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package corpus opens training text, decompressing it according to the
// file extension.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ErrInvalidUTF8 is returned by ReadText for input that is not UTF-8.
var ErrInvalidUTF8 = errors.New("corpus: input is not valid UTF-8")

// decoder wraps a compressed stream.
type decoder func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoder{
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
	".bz2": func(r io.Reader) (io.ReadCloser, error) {
		return bzip2.NewReader(r, nil)
	},
	".xz": func(r io.Reader) (io.ReadCloser, error) {
		d, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(d), nil
	},
}

// readCloser closes the decoder before the underlying file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open opens the corpus at path. An empty path or "-" reads standard input.
// Files ending in .gz, .zst, .bz2 or .xz are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return f, nil
	}
	d, err := dec(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	return &readCloser{Reader: d, closers: []io.Closer{d, f}}, nil
}

// ReadText reads r to the end and returns it as a string.
func ReadText(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Load opens the corpus at path and reads it as text.
func Load(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	text, err := ReadText(rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	return text, err
}
