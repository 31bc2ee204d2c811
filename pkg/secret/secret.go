// Package secret implements the Key Material component: parsing and
// generating the user-supplied symmetric key string, and a guaranteed-erase
// buffer type shared by every component that handles key material.
//
// Security Note: every operation in this package avoids leaking the secret
// through debug formatting, panics, or partial-write error paths. Secret
// and DerivedKey both implement fmt.Stringer with a fixed redacted value
// so that accidental %v/%s formatting never prints key bytes.
package secret

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"
	"sync"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

// Secret holds the user's key material. It is exclusively owned by the
// active seal/open invocation: no copies of the underlying buffer escape
// the component, and Release() guarantees the buffer is zeroed before the
// Secret is discarded, on every exit path including failure.
type Secret struct {
	mu      sync.Mutex
	buf     []byte
	once    sync.Once
	release func()
}

// newSecret takes ownership of buf. Callers must not retain buf after
// this call.
func newSecret(buf []byte) *Secret {
	s := &Secret{buf: buf}
	s.release = func() {
		for i := range s.buf {
			s.buf[i] = 0
		}
	}
	return s
}

// Bytes returns the live underlying buffer. It is not a copy: callers must
// not retain it beyond the scope of the current operation, since Release
// will zero it in place.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// Release zeroizes the underlying buffer. It is idempotent and safe to
// call on every exit path, including from a deferred call after an error.
func (s *Secret) Release() {
	if s == nil {
		return
	}
	s.once.Do(s.release)
}

// String implements fmt.Stringer with a fixed redacted value so that
// accidental logging or panics never print key bytes.
func (s *Secret) String() string {
	return "secret.Secret{REDACTED}"
}

// ParseSecret strips leading/trailing ASCII whitespace from input, then
// strips a leading "base64:" prefix if present. No base64 decoding occurs:
// the remaining characters are stored verbatim as UTF-8 bytes, matching
// the Laravel convention that "base64:XXXX" and "XXXX" are the same secret
// identifier. An empty result fails with ErrInvalidKey.
func ParseSecret(input string) (*Secret, error) {
	trimmed := strings.TrimFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
	trimmed = strings.TrimPrefix(trimmed, constants.Base64Prefix)

	if len(trimmed) == 0 {
		return nil, qerrors.ErrInvalidKey
	}

	return newSecret([]byte(trimmed)), nil
}

// GenerateSecret draws GeneratedSecretSize cryptographically random bytes
// from r (crypto/rand.Reader if r is nil), and returns both the standard
// base64 display string shown to the user and the parsed Secret ready for
// immediate use. The display string, supplied back through ParseSecret, is
// what subsequent decrypts must use.
func GenerateSecret(r io.Reader) (display string, s *Secret, err error) {
	if r == nil {
		r = rand.Reader
	}

	raw := make([]byte, constants.GeneratedSecretSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", nil, qerrors.ErrRandomSourceUnavailable
	}
	defer func() {
		for i := range raw {
			raw[i] = 0
		}
	}()

	display = base64.StdEncoding.EncodeToString(raw)
	secret, err := ParseSecret(display)
	if err != nil {
		return "", nil, err
	}
	return display, secret, nil
}

// DerivedKey is the 32-byte output of PBKDF2. Like Secret, it is owned
// exclusively by the active seal/open invocation and zeroized on release.
type DerivedKey struct {
	once    sync.Once
	buf     []byte
	release func()
}

// NewDerivedKey takes ownership of buf, which must be exactly
// constants.DerivedKeySize bytes. Callers must not retain buf afterward.
func NewDerivedKey(buf []byte) *DerivedKey {
	k := &DerivedKey{buf: buf}
	k.release = func() {
		for i := range k.buf {
			k.buf[i] = 0
		}
	}
	return k
}

// Bytes returns the live underlying buffer.
func (k *DerivedKey) Bytes() []byte {
	if k == nil {
		return nil
	}
	return k.buf
}

// Release zeroizes the underlying buffer. Idempotent.
func (k *DerivedKey) Release() {
	if k == nil {
		return
	}
	k.once.Do(k.release)
}

// String implements fmt.Stringer with a fixed redacted value.
func (k *DerivedKey) String() string {
	return "secret.DerivedKey{REDACTED}"
}

// Equal reports whether two secrets hold identical bytes. Used only by
// tests; the core itself never compares secrets directly, and this is not
// constant-time.
func Equal(a, b *Secret) bool {
	if a == nil || b == nil {
		return a == b
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
