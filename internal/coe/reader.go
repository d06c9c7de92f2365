package coe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed is returned by Decode for input that is not a COE file in
// the layout produced by Write.
var ErrMalformed = errors.New("coe: malformed file")

// File is a decoded COE file.
type File struct {
	Radix  Radix
	Values []byte
}

// ReadFile decodes the COE file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses the one-token-per-line layout written by Write.
func Decode(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return sc.Text(), true
	}

	line, ok := next()
	if !ok || !strings.HasPrefix(line, radixHeader) || !strings.HasSuffix(line, ";") {
		return nil, fmt.Errorf("%w: missing radix header", ErrMalformed)
	}
	radix, err := ParseRadix(strings.TrimSuffix(strings.TrimPrefix(line, radixHeader), ";"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if line, ok = next(); !ok || line != vectorHeader {
		return nil, fmt.Errorf("%w: missing vector header", ErrMalformed)
	}

	out := &File{Radix: radix}
	terminated := false
	for {
		line, ok = next()
		if !ok {
			break
		}
		if terminated {
			return nil, fmt.Errorf("%w: line %d: data after terminating ';'", ErrMalformed, lineNo)
		}
		if len(line) < 2 {
			return nil, fmt.Errorf("%w: line %d: empty token", ErrMalformed, lineNo)
		}

		switch line[len(line)-1] {
		case ',':
		case ';':
			terminated = true
		default:
			return nil, fmt.Errorf("%w: line %d: token %q lacks ',' or ';'", ErrMalformed, lineNo, line)
		}

		v, err := radix.Parse(line[:len(line)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		out.Values = append(out.Values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !terminated {
		return nil, fmt.Errorf("%w: vector not terminated with ';'", ErrMalformed)
	}
	return out, nil
}
