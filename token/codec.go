package token

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/kbukum/authcrypt/errors"
	"github.com/kbukum/authcrypt/kdf"
	"github.com/kbukum/authcrypt/random"
)

// DefaultSaltLength is the default trailing salt length in bytes.
const DefaultSaltLength = 16

const (
	flagNoExpiration byte = 0
	flagExpiration   byte = 1

	// flag byte plus 8 ticks bytes
	expirationFieldSize = 9
)

// Codec encodes byte payloads into opaque, tamper-evident strings and
// decodes them back. It holds no mutable state between calls and is
// safe for concurrent use; the passphrase is supplied fresh on every
// call and never cached.
type Codec struct {
	saltLength int
	iterations int
}

// New creates a Codec. A salt length below 16 is a configuration error
// and is reported immediately.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		saltLength: DefaultSaltLength,
		iterations: kdf.DefaultIterations,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.saltLength < kdf.MinSaltLength {
		return nil, errors.InvalidInput("salt_length",
			"must be at least 16 bytes").WithDetail("length", c.saltLength)
	}
	if c.iterations <= 0 {
		return nil, errors.InvalidInput("iterations", "must be positive")
	}

	return c, nil
}

// SaltLength returns the configured trailing salt length in bytes.
func (c *Codec) SaltLength() int { return c.saltLength }

// Encode encrypts value under a key derived from the passphrase and a
// salt, and returns base64(ciphertext||salt). The salt is drawn fresh
// unless WithSalt supplies one. An expiration set via WithExpiresAt or
// WithExpiresIn travels inside the encrypted payload.
func (c *Codec) Encode(value []byte, passphrase string, opts ...EncodeOption) (string, error) {
	if value == nil {
		return "", errors.InvalidInput("value", "must not be nil")
	}
	if passphrase == "" {
		return "", errors.MissingField("passphrase")
	}

	o := &encodeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	salt := o.salt
	if salt == nil {
		var err error
		salt, err = random.NonZeroBytes(c.saltLength)
		if err != nil {
			return "", errors.Internal(err)
		}
	} else if len(salt) < kdf.MinSaltLength {
		return "", errors.InvalidInput("salt",
			"must be at least 16 bytes").WithDetail("length", len(salt))
	} else if len(salt) != c.saltLength {
		return "", errors.InvalidInput("salt",
			fmt.Sprintf("must match the codec salt length of %d bytes", c.saltLength))
	}

	payload := buildPayload(value, o)

	kiv, err := kdf.Derive(passphrase, salt, kdf.WithIterations(c.iterations))
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(kiv.Key)
	if err != nil {
		return "", errors.Internal(err)
	}

	padded := pkcs7Pad(payload, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, kiv.IV).CryptBlocks(ciphertext, padded)

	envelope := append(ciphertext, salt...)
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decode reverses Encode. The trailing saltLength bytes of the decoded
// envelope are the salt; the remainder is decrypted and unpadded, and
// the embedded expiration, if present, is checked against UTC now.
//
// Failures are reported as distinct error codes: DECRYPT_FAILED for
// anything that prevents recovering the payload (wrong passphrase,
// corrupted or truncated envelope), TOKEN_EXPIRED when decryption
// succeeded but the token is past its expiration. SuppressErrors maps
// the former, and only the former, to an absent (nil, nil) result.
func (c *Codec) Decode(tok string, passphrase string, opts ...DecodeOption) ([]byte, error) {
	if passphrase == "" {
		return nil, errors.MissingField("passphrase")
	}

	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	envelope, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return c.decryptFailed(fmt.Errorf("decode base64: %w", err), o)
	}
	if len(envelope) <= c.saltLength {
		return c.decryptFailed(fmt.Errorf("envelope too short: %d bytes", len(envelope)), o)
	}

	// Positional framing: the trailing S bytes are always the salt.
	salt := envelope[len(envelope)-c.saltLength:]
	ciphertext := envelope[:len(envelope)-c.saltLength]
	if len(ciphertext)%aes.BlockSize != 0 {
		return c.decryptFailed(fmt.Errorf("ciphertext not block-aligned: %d bytes", len(ciphertext)), o)
	}

	kiv, err := kdf.Derive(passphrase, salt, kdf.WithIterations(c.iterations))
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(kiv.Key)
	if err != nil {
		return nil, errors.Internal(err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, kiv.IV).CryptBlocks(padded, ciphertext)

	payload, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return c.decryptFailed(err, o)
	}
	if len(payload) == 0 {
		return c.decryptFailed(fmt.Errorf("empty payload"), o)
	}

	switch payload[len(payload)-1] {
	case flagNoExpiration:
		return payload[:len(payload)-1], nil

	case flagExpiration:
		if len(payload) < expirationFieldSize {
			return c.decryptFailed(fmt.Errorf("truncated expiration field"), o)
		}
		ticks := int64(binary.BigEndian.Uint64(payload[len(payload)-expirationFieldSize : len(payload)-1]))
		expiresAt := fromTicks(ticks)
		if !o.ignoreExpiration && expiresAt.Before(time.Now().UTC()) {
			return nil, errors.TokenExpired().WithDetail("expired_at", expiresAt.Format(time.RFC3339))
		}
		return payload[:len(payload)-expirationFieldSize], nil

	default:
		return c.decryptFailed(fmt.Errorf("unknown expiration flag %d", payload[len(payload)-1]), o)
	}
}

// decryptFailed reports a decryption failure, or an absent result when
// the caller opted into SuppressErrors.
func (c *Codec) decryptFailed(cause error, o *decodeOptions) ([]byte, error) {
	if o.suppressErrors {
		return nil, nil
	}
	return nil, errors.DecryptFailed(cause)
}

// buildPayload appends the optional expiration field and the flag byte
// to the value: value || [ticks (8 bytes, big-endian)] || flag.
func buildPayload(value []byte, o *encodeOptions) []byte {
	if !o.expires {
		payload := make([]byte, 0, len(value)+1)
		payload = append(payload, value...)
		return append(payload, flagNoExpiration)
	}

	payload := make([]byte, 0, len(value)+expirationFieldSize)
	payload = append(payload, value...)
	payload = binary.BigEndian.AppendUint64(payload, uint64(toTicks(o.expiresAt)))
	return append(payload, flagExpiration)
}
