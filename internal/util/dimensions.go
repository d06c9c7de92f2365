// internal/util/dimensions.go
package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var dimensionsPattern = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// MaxSamples caps the sample block at 1M entries, well above any block RAM.
const MaxSamples = 1 << 20

// Dimensions is the width x height layout of the sample block
type Dimensions struct {
	Width  int
	Height int
}

// Size returns the number of samples in the block
func (d Dimensions) Size() int {
	return d.Width * d.Height
}

// String returns the "WxH" representation
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Validate checks both sides are positive and the block is not oversized
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("invalid dimensions %s: width and height must be > 0", d)
	}
	if d.Width > MaxSamples/d.Height {
		return fmt.Errorf("invalid dimensions %s: more than %d samples", d, MaxSamples)
	}
	return nil
}

// ParseDimensions parses a "WxH" string (e.g. "128x128") into Dimensions.
func ParseDimensions(s string) (Dimensions, error) {
	matches := dimensionsPattern.FindStringSubmatch(s)
	if matches == nil {
		return Dimensions{}, fmt.Errorf("invalid format: '%s'. Use format like '128x128'", s)
	}

	width, err := strconv.Atoi(matches[1])
	if err != nil {
		return Dimensions{}, fmt.Errorf("invalid width: %v", err)
	}
	height, err := strconv.Atoi(matches[2])
	if err != nil {
		return Dimensions{}, fmt.Errorf("invalid height: %v", err)
	}

	d := Dimensions{Width: width, Height: height}
	if err := d.Validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}
