package coe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFilename is the output file written when no path is given.
const DefaultFilename = "image_data.coe"

const (
	radixHeader  = "memory_initialization_radix="
	vectorHeader = "memory_initialization_vector="
)

var (
	// ErrEmpty is returned when there are no samples to serialize.
	ErrEmpty = errors.New("coe: no samples to write")
	// ErrWrite wraps any failure to create or write the output file.
	ErrWrite = errors.New("coe: write failed")
)

// FileOptions controls how WriteFile opens its target.
type FileOptions struct {
	Radix Radix
	// Overwrite truncates an existing file. When false, WriteFile refuses
	// to touch an existing path and returns an error wrapping fs.ErrExist.
	Overwrite bool
	Perm      os.FileMode
}

// Write emits the COE header followed by one token per line. Every token
// but the last ends with ',', the last ends with ';'.
func Write(w io.Writer, samples []byte, radix Radix) error {
	if len(samples) == 0 {
		return ErrEmpty
	}
	if !radix.Valid() {
		return fmt.Errorf("coe: unsupported radix %d", radix)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d;\n", radixHeader, radix)
	fmt.Fprintf(bw, "%s\n", vectorHeader)

	last := len(samples) - 1
	for i, v := range samples {
		sep := byte(',')
		if i == last {
			sep = ';'
		}
		bw.WriteString(radix.Format(v))
		bw.WriteByte(sep)
		bw.WriteByte('\n')
	}

	// bufio keeps the first write error and returns it from Flush
	return bw.Flush()
}

// WriteFile writes samples to path. The file is closed on every path; a
// partially written file is left in place on failure.
func WriteFile(path string, samples []byte, opts FileOptions) (err error) {
	if len(samples) == 0 {
		return ErrEmpty
	}
	if opts.Radix == 0 {
		opts.Radix = DefaultRadix
	}
	if opts.Perm == 0 {
		opts.Perm = 0644
	}

	flags := os.O_WRONLY | os.O_CREATE
	if opts.Overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, opts.Perm)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWrite, path, cerr)
		}
	}()

	if err := Write(f, samples, opts.Radix); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
