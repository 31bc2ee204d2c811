// Package kdf implements the Key Derivation component: PBKDF2-HMAC-SHA256
// turning a user-supplied secret and a per-artifact salt into a 32-byte
// working key.
//
// The iteration count is fixed at constants.PBKDF2Iterations and must
// never be negotiated; a change to it is a breaking container-format
// change, not a tunable parameter.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/pkg/secret"
)

// Derive turns secretBytes and salt into a DerivedKey using PBKDF2 with
// HMAC-SHA256, constants.PBKDF2Iterations iterations, and an output length
// of constants.DerivedKeySize bytes.
//
// secretBytes must be non-empty (callers reject empty secrets upstream in
// secret.ParseSecret); salt must be constants.SaltSize bytes. The returned
// DerivedKey is owned by the caller, which must call Release after a
// single use.
func Derive(secretBytes, salt []byte) (*secret.DerivedKey, error) {
	if len(secretBytes) == 0 {
		return nil, qerrors.ErrInvalidKey
	}
	if len(salt) != constants.SaltSize {
		return nil, qerrors.NewSuiteError("kdf derive", qerrors.ErrMalformedArtifact)
	}

	derived := pbkdf2.Key(secretBytes, salt, constants.PBKDF2Iterations, constants.DerivedKeySize, sha256.New)
	return secret.NewDerivedKey(derived), nil
}
