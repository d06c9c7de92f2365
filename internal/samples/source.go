// Package samples produces the random 8-bit samples written to COE files.
package samples

import (
	"crypto/rand"
	"io"
	randv2 "math/rand/v2"
)

// seededSource is an io.Reader over a PCG generator. It never fails.
type seededSource struct {
	rng *randv2.Rand
}

// NewSource returns a deterministic source: the same seed always yields the
// same byte stream.
func NewSource(seed uint64) io.Reader {
	return &seededSource{rng: randv2.New(randv2.NewPCG(seed, seed))}
}

func (s *seededSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.rng.IntN(256))
	}
	return len(p), nil
}

// NewCryptoSource returns the operating system entropy source.
func NewCryptoSource() io.Reader {
	return rand.Reader
}
