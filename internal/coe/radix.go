// Package coe reads and writes COE (coefficient) memory-initialization files.
package coe

import (
	"fmt"
	"strconv"
	"strings"
)

// Radix is the numeric base of the vector tokens.
type Radix int

const (
	Binary  Radix = 2
	Decimal Radix = 10
	Hex     Radix = 16
)

// DefaultRadix is used when no radix is configured.
const DefaultRadix = Hex

// AllRadixes returns the supported radixes.
func AllRadixes() []Radix {
	return []Radix{Binary, Decimal, Hex}
}

// Valid reports whether r is a supported radix.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Decimal, Hex:
		return true
	}
	return false
}

func (r Radix) String() string {
	return strconv.Itoa(int(r))
}

// Format renders a single sample as a vector token, without punctuation.
func (r Radix) Format(v byte) string {
	switch r {
	case Binary:
		return fmt.Sprintf("%08b", v)
	case Decimal:
		return strconv.Itoa(int(v))
	default:
		return fmt.Sprintf("%02X", v)
	}
}

// Parse decodes a vector token back into a sample.
func (r Radix) Parse(token string) (byte, error) {
	v, err := strconv.ParseUint(token, int(r), 8)
	if err != nil {
		return 0, fmt.Errorf("invalid radix-%d token %q: %w", r, token, err)
	}
	return byte(v), nil
}

// ParseRadix parses "2", "10" or "16" (also "bin", "dec", "hex").
func ParseRadix(s string) (Radix, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "bin", "binary":
		return Binary, nil
	case "10", "dec", "decimal":
		return Decimal, nil
	case "16", "hex", "hexadecimal":
		return Hex, nil
	default:
		return DefaultRadix, fmt.Errorf("invalid radix: %s (valid: 2, 10, 16)", s)
	}
}
