// Package token implements a self-expiring encrypted token codec.
//
// Encode turns an arbitrary byte payload, plus an optional absolute
// expiration, into an opaque base64 string suitable for a cookie,
// header, or query parameter. Decode recovers the payload, detecting
// tampering and expiration as distinct failures.
//
// The decoded envelope is ciphertext||salt: the trailing S bytes are
// the salt (S >= 16, fixed per codec), everything before it is
// AES-256-CBC ciphertext. The expiration travels inside the encrypted
// payload, so it cannot be stripped or altered without making the
// token undecryptable.
//
// # Usage
//
//	codec, err := token.New()
//	tok, err := codec.Encode([]byte("hello"), "my-passphrase",
//		token.WithExpiresIn(30*time.Minute))
//	value, err := codec.Decode(tok, "my-passphrase")
package token
