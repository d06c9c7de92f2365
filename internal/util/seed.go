// internal/util/seed.go
package util

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
)

// ResolveSeed returns seed unchanged when non-zero, otherwise draws a fresh
// non-zero seed from entropy. Drawn seeds are reported so a run can be
// replayed with --seed.
func ResolveSeed(seed uint64, entropy io.Reader) (uint64, bool, error) {
	if seed != 0 {
		return seed, false, nil
	}

	var buf [8]byte
	for seed == 0 {
		if _, err := io.ReadFull(entropy, buf[:]); err != nil {
			return 0, false, fmt.Errorf("draw seed: %w", err)
		}
		seed = binary.LittleEndian.Uint64(buf[:])
	}
	return seed, true, nil
}

// GenerateDeterministicUID builds a DICOM UID under the 2.25 root from a
// stable hash of key. The same key always yields the same UID.
func GenerateDeterministicUID(key string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // hash.Write never returns an error
	return fmt.Sprintf("2.25.%d", h.Sum64())
}

// Checksum returns the hex SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}
