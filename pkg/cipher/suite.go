// Package cipher implements the Cipher Suite component: three
// interchangeable authenticated-encryption constructions behind a single
// seal/open contract: AES-256-CBC + HMAC-SHA256 (Encrypt-then-MAC),
// AES-256-GCM, and ChaCha20-Poly1305.
//
// The set of suites is a closed, tagged enumeration: adding a fourth
// variant is a new container-format version, not an extension of this
// package's switch statements.
package cipher

import (
	"strings"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

// Cipher is the common contract every suite implements.
type Cipher interface {
	// Suite returns the closed enumeration value this Cipher implements.
	Suite() constants.Suite

	// NonceSize returns the required nonce/IV size in bytes.
	NonceSize() int

	// TagSize returns the authentication tag size in bytes.
	TagSize() int

	// Seal encrypts and authenticates plaintext under key and nonce,
	// returning the ciphertext and authentication tag separately. key
	// must be exactly constants.DerivedKeySize bytes; nonce must be
	// exactly NonceSize() bytes.
	Seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error)

	// Open verifies tag and decrypts ciphertext under key and nonce. It
	// returns ErrAuthenticationFailed, and no plaintext, if the tag
	// does not verify, or (for CBC) if padding is invalid after a
	// successful MAC check.
	Open(key, nonce, ciphertext, tag []byte) (plaintext []byte, err error)
}

// ParseSuite matches name against the accepted spellings, case-
// insensitively and after trimming whitespace. Unknown identifiers fail
// with ErrUnknownCipher before any other work is attempted.
func ParseSuite(name string) (constants.Suite, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "AES-256-CBC":
		return constants.SuiteAES256CBCHMACSHA256, nil
	case "AES-256-GCM":
		return constants.SuiteAES256GCM, nil
	case "CHACHA20-POLY1305":
		return constants.SuiteChaCha20Poly1305, nil
	default:
		return constants.SuiteUnknown, qerrors.ErrUnknownCipher
	}
}

// New constructs the Cipher implementation for suite. Callers normally
// obtain suite via ParseSuite, which already rejects unsupported values;
// New rejects them again defensively.
//
// In a binary built with the "fips" tag, only AES-256-GCM is approved; the
// other two suites are rejected as ErrUnknownCipher even though their
// implementations are still linked in, gating availability at the factory
// rather than compiling the other algorithms out.
func New(suite constants.Suite) (Cipher, error) {
	if constants.FIPSMode() && suite != constants.SuiteAES256GCM {
		return nil, qerrors.ErrUnknownCipher
	}

	switch suite {
	case constants.SuiteAES256CBCHMACSHA256:
		return newCBCHMAC(), nil
	case constants.SuiteAES256GCM:
		return newAESGCM(), nil
	case constants.SuiteChaCha20Poly1305:
		return newChaCha20Poly1305(), nil
	default:
		return nil, qerrors.ErrUnknownCipher
	}
}
