package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors (caller bugs, raised before any cryptographic work)
const (
	// ErrCodeInvalidInput indicates a nil value, empty passphrase, or
	// salt shorter than the minimum.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Codec errors (outcomes of decoding a token)
const (
	// ErrCodeDecryptFailed indicates the ciphertext could not be
	// decrypted or unpadded: wrong passphrase, corrupted or truncated
	// envelope, or a wrong salt-length assumption.
	ErrCodeDecryptFailed ErrorCode = "DECRYPT_FAILED"
	// ErrCodeTokenExpired indicates decryption succeeded but the
	// embedded expiration instant is in the past.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
)

// Configuration errors (fatal, raised at construction time)
const (
	// ErrCodeUnsupportedAlgorithm indicates an unknown digest or cipher
	// algorithm selector.
	ErrCodeUnsupportedAlgorithm ErrorCode = "UNSUPPORTED_ALGORITHM"
)

// Authentication and internal errors
const (
	// ErrCodeUnauthorized indicates a request that could not be
	// authenticated.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsRetryableCode returns true if the error code indicates a retryable
// error. Cryptographic failures are never transient, so no code in this
// package is retryable.
func IsRetryableCode(code ErrorCode) bool {
	return false
}
