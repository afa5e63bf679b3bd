// Package middleware provides a Gin authentication handler built on
// the token codec.
//
// It extracts an opaque encrypted key from a request header, cookie,
// or query parameter, decodes it with a configured passphrase, and
// stores the recovered principal in the request context. All codec
// failures collapse into a generic 401 for the client; the specific
// failure kind is available internally for diagnostics.
package middleware
