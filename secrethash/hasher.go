package secrethash

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"hash"

	"github.com/kbukum/authcrypt/errors"
	"github.com/kbukum/authcrypt/random"
)

// Algorithm represents supported digest algorithms.
type Algorithm string

const (
	// AlgorithmFast128 is MD5 with a 16-byte digest. Kept for
	// verifying blobs written by legacy credential stores; do not use
	// it for new secrets.
	AlgorithmFast128 Algorithm = "fast128"

	// AlgorithmSecure256 is SHA-256 with a 32-byte digest
	// (recommended).
	AlgorithmSecure256 Algorithm = "secure256"
)

// MinSaltLength is the minimum accepted salt length in bytes.
const MinSaltLength = 16

// Hasher computes and verifies salted digests of secrets. It holds no
// mutable state and is safe for concurrent use.
type Hasher struct {
	algorithm  Algorithm
	saltLength int
	newDigest  func() hash.Hash
	digestSize int
}

// Option configures the hasher.
type Option func(*Hasher)

// WithSaltLength sets the salt length in bytes (default: 16, minimum: 16).
func WithSaltLength(n int) Option {
	return func(h *Hasher) { h.saltLength = n }
}

// New creates a Hasher for the given algorithm. An unsupported
// algorithm or a salt length below 16 is a configuration error and is
// reported immediately, never silently defaulted.
func New(algorithm Algorithm, opts ...Option) (*Hasher, error) {
	h := &Hasher{
		algorithm:  algorithm,
		saltLength: MinSaltLength,
	}
	for _, opt := range opts {
		opt(h)
	}

	switch algorithm {
	case AlgorithmFast128:
		h.newDigest = md5.New
		h.digestSize = md5.Size
	case AlgorithmSecure256:
		h.newDigest = sha256.New
		h.digestSize = sha256.Size
	default:
		return nil, errors.UnsupportedAlgorithm(string(algorithm))
	}

	if h.saltLength < MinSaltLength {
		return nil, errors.InvalidInput("salt_length",
			"must be at least 16 bytes").WithDetail("length", h.saltLength)
	}

	return h, nil
}

// Compute returns a salted digest of the secret as salt||digest. A
// fresh random salt is drawn on every call, so two blobs for the same
// secret differ yet both verify.
func (h *Hasher) Compute(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.MissingField("secret")
	}

	salt, err := random.NonZeroBytes(h.saltLength)
	if err != nil {
		return nil, errors.Internal(err)
	}

	blob := make([]byte, 0, h.saltLength+h.digestSize)
	blob = append(blob, salt...)
	blob = append(blob, h.digest(secret, salt)...)
	return blob, nil
}

// Verify checks a candidate secret against a previously computed blob.
// It returns true iff the recomputed digest matches. A blob of the
// wrong length simply does not verify; it is not an error.
func (h *Hasher) Verify(secret string, blob []byte) (bool, error) {
	if secret == "" {
		return false, errors.MissingField("secret")
	}
	if len(blob) != h.saltLength+h.digestSize {
		return false, nil
	}

	salt := blob[:h.saltLength]
	stored := blob[h.saltLength:]
	computed := h.digest(secret, salt)

	return subtle.ConstantTimeCompare(computed, stored) == 1, nil
}

// Algorithm returns the configured digest algorithm.
func (h *Hasher) Algorithm() Algorithm { return h.algorithm }

// SaltLength returns the configured salt length in bytes.
func (h *Hasher) SaltLength() int { return h.saltLength }

// digest hashes secretBytes||salt with the configured algorithm.
func (h *Hasher) digest(secret string, salt []byte) []byte {
	d := h.newDigest()
	d.Write([]byte(secret))
	d.Write(salt)
	return d.Sum(nil)
}
