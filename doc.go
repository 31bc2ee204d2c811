// Package envcrypt provides bit-exact authenticated encryption for
// environment-variable files.
//
// An envcrypt artifact is a base64-encoded frame of salt, nonce,
// ciphertext, and authentication tag produced by one of three
// interchangeable cipher suites: AES-256-CBC with an Encrypt-then-MAC
// HMAC-SHA256 tag, AES-256-GCM, or ChaCha20-Poly1305. The working key is
// never stored; it is re-derived on every seal and open from a
// user-supplied secret and the artifact's own salt via PBKDF2-HMAC-SHA256.
//
// # Quick Start
//
// For the common case of sealing and opening a whole artifact:
//
//	import "github.com/envcrypt/envcrypt/pkg/container"
//
//	artifact, err := container.Seal("AES-256-GCM", secretBytes, plaintext)
//	plaintext, err := container.Open("AES-256-GCM", secretBytes, artifact)
//
// For finer control over key material and its lifetime:
//
//	import "github.com/envcrypt/envcrypt/pkg/secret"
//
//	display, s, err := secret.GenerateSecret(nil)
//	defer s.Release()
//
// # Package Structure
//
// The library is organized into several packages:
//
//   - pkg/secret: key material parsing, generation, and guaranteed erasure
//   - pkg/kdf: PBKDF2-HMAC-SHA256 key derivation
//   - pkg/cipher: the three cipher suites behind one seal/open contract
//   - pkg/container: the artifact byte format and the Seal/Open entry points
//   - pkg/telemetry: structured logging and optional tracing
//   - internal/constants: frame sizes and KDF parameters
//   - internal/errors: the flat error taxonomy surfaced to callers
//
// # Security Properties
//
//   - Authenticated encryption: every suite fails closed on any tampering
//   - MAC-before-decrypt: CBC verifies the tag before touching padding, so
//     padding and authentication failures are indistinguishable
//   - No partial plaintext: authentication failure never returns a partial
//     result, zeroized or otherwise
//   - Guaranteed erasure: secrets and derived keys are zeroized on every
//     exit path, not merely on the success path
//   - No embedded cipher identity: the artifact carries no cipher tag;
//     callers track suite identity alongside the artifact themselves
//
// # Testing
//
// The library includes unit and property-style tests per package:
//
//	go test ./...                          # All tests
//	go test -run TestRoundTrip ./pkg/container
//
// For more information, see: https://github.com/envcrypt/envcrypt
package envcrypt
