package token

import "time"

// Option configures the codec.
type Option func(*Codec)

// WithSaltLength sets the trailing salt length in bytes (default: 16,
// minimum: 16). Parsing is purely positional, so every token issued by
// a deployment must use the same salt length.
func WithSaltLength(n int) Option {
	return func(c *Codec) { c.saltLength = n }
}

// WithIterations sets the key-derivation iteration count passed through
// to the kdf package.
func WithIterations(n int) Option {
	return func(c *Codec) { c.iterations = n }
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	salt      []byte
	expiresAt time.Time
	expires   bool
}

// WithSalt supplies a fixed salt instead of a random one, for
// deterministic scenarios. It must be at least 16 bytes and match the
// codec's configured salt length.
func WithSalt(salt []byte) EncodeOption {
	return func(o *encodeOptions) { o.salt = salt }
}

// WithExpiresAt embeds an absolute expiration instant in the token.
func WithExpiresAt(t time.Time) EncodeOption {
	return func(o *encodeOptions) {
		o.expiresAt = t
		o.expires = true
	}
}

// WithExpiresIn embeds an expiration d from now. Convenience form of
// WithExpiresAt.
func WithExpiresIn(d time.Duration) EncodeOption {
	return func(o *encodeOptions) {
		o.expiresAt = time.Now().UTC().Add(d)
		o.expires = true
	}
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	ignoreExpiration bool
	suppressErrors   bool
}

// IgnoreExpiration makes Decode return the value even if the embedded
// expiration instant is in the past.
func IgnoreExpiration() DecodeOption {
	return func(o *decodeOptions) { o.ignoreExpiration = true }
}

// SuppressErrors converts decryption failures into an absent (nil, nil)
// result instead of an error. Expiration and input validation errors are
// not suppressed; tampering and expiration are independent failure axes.
func SuppressErrors() DecodeOption {
	return func(o *decodeOptions) { o.suppressErrors = true }
}
