package samples

import (
	"errors"
	"fmt"
	"io"
)

// DefaultWidth and DefaultHeight give the default 128x128 sample block.
const (
	DefaultWidth  = 128
	DefaultHeight = 128
	DefaultSize   = DefaultWidth * DefaultHeight
)

var (
	// ErrRandomSource is returned when the random source cannot supply samples.
	ErrRandomSource = errors.New("random source failure")
	// ErrInvalidSize is returned for a non-positive sample count.
	ErrInvalidSize = errors.New("sample count must be > 0")
)

// Generate reads exactly size samples from src, in generation order.
func Generate(src io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrRandomSource)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(src, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %w", ErrRandomSource, n, size, err)
	}
	return buf, nil
}
