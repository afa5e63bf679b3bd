// Package secrethash stores verifiable salted digests of secrets
// without retaining the secrets themselves.
//
// A blob has the binary shape salt||digest: the first N bytes are a
// random salt (N >= 16, caller-chosen), the rest is the digest of
// secretBytes||salt. Blobs are persisted by the caller (for example in
// a credential column) and compared against freshly computed digests at
// verification time; they are never reversed.
//
// # Usage
//
//	hasher, err := secrethash.New(secrethash.AlgorithmSecure256)
//	blob, err := hasher.Compute("my-secret")
//	ok, err := hasher.Verify("my-secret", blob)
package secrethash
