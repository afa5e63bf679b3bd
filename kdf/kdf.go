package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/kbukum/authcrypt/errors"
)

const (
	// MinSaltLength is the minimum accepted salt length in bytes.
	MinSaltLength = 16

	// DefaultIterations is the default PBKDF2 iteration count.
	DefaultIterations = 10_000

	keyLength = 32
	ivLength  = 16
)

// KeyIV holds the cipher key and initialization vector derived from a
// passphrase and salt.
type KeyIV struct {
	// Key is the 32-byte cipher key (AES-256).
	Key []byte
	// IV is the 16-byte initialization vector (one AES block).
	IV []byte
}

// Option configures key derivation.
type Option func(*options)

type options struct {
	iterations int
}

// WithIterations sets the PBKDF2 iteration count (default: 10000).
// A deployment must pin this once: changing it invalidates every
// previously issued token.
func WithIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.iterations = n
		}
	}
}

// Derive stretches a passphrase and salt into a cipher key and IV using
// PBKDF2-HMAC-SHA256. It is deterministic: the same passphrase and salt
// always produce the same KeyIV, so decryption can re-derive what
// encryption used.
func Derive(passphrase string, salt []byte, opts ...Option) (*KeyIV, error) {
	if passphrase == "" {
		return nil, errors.MissingField("passphrase")
	}
	if len(salt) < MinSaltLength {
		return nil, errors.InvalidInput("salt",
			"must be at least 16 bytes").WithDetail("length", len(salt))
	}

	o := &options{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(o)
	}

	derived := pbkdf2.Key([]byte(passphrase), salt, o.iterations, keyLength+ivLength, sha256.New)
	return &KeyIV{
		Key: derived[:keyLength],
		IV:  derived[keyLength:],
	}, nil
}
