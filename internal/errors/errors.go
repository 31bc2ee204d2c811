// Package errors defines the flat error taxonomy for envcrypt's
// authenticated-encryption core. These errors provide detailed
// information for debugging while maintaining security by not leaking
// key material, and by never distinguishing authentication failure from
// padding failure in their message text.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core taxonomy. Every failure the pkg/container
// entry points surface to a caller is, or wraps, one of these five.
var (
	// ErrInvalidKey indicates the secret was empty after trimming and
	// base64: prefix stripping.
	ErrInvalidKey = errors.New("envcrypt: invalid key")

	// ErrUnknownCipher indicates the cipher identifier did not match any
	// supported suite, case-insensitively.
	ErrUnknownCipher = errors.New("envcrypt: unknown cipher")

	// ErrMalformedArtifact indicates a base64 decode failure, or a
	// decoded frame shorter than the minimum for the selected suite.
	ErrMalformedArtifact = errors.New("envcrypt: malformed artifact")

	// ErrAuthenticationFailed indicates a MAC/AEAD tag mismatch, or a
	// CBC padding failure after a successful MAC check. The two causes
	// are deliberately indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("envcrypt: authentication failed")

	// ErrRandomSourceUnavailable indicates the OS random source failed
	// during seal.
	ErrRandomSourceUnavailable = errors.New("envcrypt: random source unavailable")
)

// SuiteError wraps a cipher-suite-internal failure with the operation
// that produced it. Err is usually one of the sentinels above, so that
// errors.Is checks still match; the cipher constructors in pkg/cipher also
// use it to wrap the underlying library error for a key of the wrong size,
// which matches none of the sentinels.
type SuiteError struct {
	Op  string // operation that failed, e.g. "aes-gcm seal"
	Err error  // the wrapped cause
}

func (e *SuiteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SuiteError) Unwrap() error {
	return e.Err
}

// NewSuiteError creates a new SuiteError.
func NewSuiteError(op string, err error) *SuiteError {
	return &SuiteError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target. Convenience
// wrapper around errors.Is so callers don't need a second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
