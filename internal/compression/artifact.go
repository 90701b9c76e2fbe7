// Package compression reads and writes single-stream compressed artifacts,
// choosing the codec from the file extension.
package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/swatch/internal/security"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format identifies a compression codec.
type Format string

const (
	FormatRaw   Format = "raw"
	FormatGzip  Format = "gzip"
	FormatXz    Format = "xz"
	FormatZstd  Format = "zstd"
	FormatBzip2 Format = "bzip2"
)

// ErrWriteUnsupported is returned when a codec can only be decompressed.
var ErrWriteUnsupported = errors.New("compression format is read-only")

// DetectFormat determines the codec from a file name. Unknown extensions are raw.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".xz":
		return FormatXz
	case ".zst", ".zstd":
		return FormatZstd
	case ".bz2":
		return FormatBzip2
	default:
		return FormatRaw
	}
}

// NewReader wraps r with a decompressor for format. The decompressed stream
// is capped at limit bytes; reading past it fails with security.ErrLimitExceeded.
// A limit of zero or less disables the cap.
func NewReader(r io.Reader, format Format, limit int64) (io.ReadCloser, error) {
	var (
		dec    io.Reader
		closer func() error
	)

	switch format {
	case FormatRaw:
		dec = r
	case FormatGzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		dec, closer = gzr, gzr.Close
	case FormatXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		dec = xzr
	case FormatZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		dec = zr
		closer = func() error {
			zr.Close()
			return nil
		}
	case FormatBzip2:
		dec = bzip2.NewReader(r)
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}

	if limit > 0 {
		dec = security.NewLimitedReader(dec, limit)
	}
	return &readCloser{Reader: dec, close: closer}, nil
}

// NewWriter wraps w with a compressor for format. Closing the returned writer
// flushes the compressor but does not close w.
func NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case FormatRaw:
		return nopWriteCloser{w}, nil
	case FormatGzip:
		gzw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip writer: %w", err)
		}
		return gzw, nil
	case FormatXz:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	case FormatZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zw, nil
	case FormatBzip2:
		return nil, fmt.Errorf("%w: %s", ErrWriteUnsupported, format)
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// Open opens path and decompresses it according to its extension.
func Open(path string, limit int64) (io.ReadCloser, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified artifact path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	rc, err := NewReader(f, DetectFormat(path), limit)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &fileReadCloser{ReadCloser: rc, file: f}, nil
}

// Create creates path and returns a writer compressing according to its
// extension. Close must be called to flush the compressor and the file.
func Create(path string) (io.WriteCloser, error) {
	format := DetectFormat(path)
	if format == FormatBzip2 {
		return nil, fmt.Errorf("%w: %s", ErrWriteUnsupported, path)
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	wc, err := NewWriter(f, format)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileWriteCloser{WriteCloser: wc, file: f}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type fileReadCloser struct {
	io.ReadCloser
	file *os.File
}

func (r *fileReadCloser) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.file.Close())
}

type fileWriteCloser struct {
	io.WriteCloser
	file *os.File
}

func (w *fileWriteCloser) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush compressor: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
