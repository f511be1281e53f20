// Package shared holds small helpers used by both the server and the
// command-line tools.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns size random bytes encoded as hex, so the result
// is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes b in place. Used on password buffers once they have
// been hashed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
