// Package kdf derives cipher key material from passphrases.
//
// It stretches a caller-supplied passphrase plus a salt into a 32-byte
// AES key and a 16-byte IV using PBKDF2-HMAC-SHA256. The derivation is
// deterministic and has no side effects.
//
// # Usage
//
//	kiv, err := kdf.Derive("my-passphrase", salt)
//	block, _ := aes.NewCipher(kiv.Key)
package kdf
