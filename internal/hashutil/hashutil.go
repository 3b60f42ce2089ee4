// Package hashutil derives stable content keys for stored artifacts.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex hashes input after trimming surrounding whitespace, so the same
// text typed with stray spaces maps to the same key.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(sum[:])
}

// ShortHex returns the first n characters of SHA256Hex. n outside 1..64
// yields the full digest.
func ShortHex(input string, n int) string {
	full := SHA256Hex(input)
	if n <= 0 || n >= len(full) {
		return full
	}
	return full[:n]
}
