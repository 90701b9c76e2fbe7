// Package security provides input-size guards for untrusted data.
package security

import (
	"errors"
	"io"
)

// ErrLimitExceeded is returned once a LimitedReader has handed out its quota.
var ErrLimitExceeded = errors.New("size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when reading compressed artifacts
// or downloads.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrLimitExceeded
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
