// Package random provides cryptographically secure random byte generation
// for salts and other key material.
//
// All functions draw from crypto/rand, which is safe for concurrent use.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("random: length must be positive (got: %d)", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("random: read: %w", err)
	}
	return b, nil
}

// NonZeroBytes returns n cryptographically secure random bytes, none of
// which is zero. Zero-free salts survive string round-trips in callers
// that treat them as C-style byte sequences.
func NonZeroBytes(n int) ([]byte, error) {
	b, err := Bytes(n)
	if err != nil {
		return nil, err
	}
	for i := range b {
		for b[i] == 0 {
			var one [1]byte
			if _, err := io.ReadFull(rand.Reader, one[:]); err != nil {
				return nil, fmt.Errorf("random: read: %w", err)
			}
			b[i] = one[0]
		}
	}
	return b, nil
}
