// Package errors provides unified error handling for authcrypt.
// It implements structured error types with machine-readable codes and
// HTTP status mapping following RFC 7807.
package errors
