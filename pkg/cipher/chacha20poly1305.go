// chacha20poly1305.go implements the IETF ChaCha20-Poly1305 AEAD
// construction: a 12-byte random nonce, a 16-byte Poly1305 tag, no
// padding, empty associated data, using golang.org/x/crypto/chacha20poly1305.
package cipher

import (
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

type chaCha20Poly1305 struct{}

func newChaCha20Poly1305() *chaCha20Poly1305 {
	return &chaCha20Poly1305{}
}

func (chaCha20Poly1305) Suite() constants.Suite { return constants.SuiteChaCha20Poly1305 }
func (chaCha20Poly1305) NonceSize() int         { return constants.ChaCha20Poly1305NonceSize }
func (chaCha20Poly1305) TagSize() int           { return constants.ChaCha20Poly1305TagSize }

func (c chaCha20Poly1305) Seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, qerrors.NewSuiteError("chacha20poly1305 new", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	tagOffset := len(sealed) - c.TagSize()
	return sealed[:tagOffset], sealed[tagOffset:], nil
}

func (c chaCha20Poly1305) Open(key, nonce, ciphertext, tag []byte) (plaintext []byte, err error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, qerrors.NewSuiteError("chacha20poly1305 new", err)
	}

	combined := make([]byte, 0, len(ciphertext)+len(tag))
	combined = append(combined, ciphertext...)
	combined = append(combined, tag...)

	plaintext, err = aead.Open(nil, nonce, combined, nil)
	if err != nil {
		return nil, qerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}
