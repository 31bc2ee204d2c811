// aesgcm.go implements AES-256-GCM: a 12-byte random nonce, a built-in
// 16-byte authentication tag, no padding. The associated-data input is
// always empty: the container is self-describing and the cipher
// identifier is supplied out-of-band by the caller, so there is nothing
// suite-local to bind as AAD.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

type aesGCM struct{}

func newAESGCM() *aesGCM {
	return &aesGCM{}
}

func (aesGCM) Suite() constants.Suite { return constants.SuiteAES256GCM }
func (aesGCM) NonceSize() int         { return constants.GCMNonceSize }
func (aesGCM) TagSize() int           { return constants.GCMTagSize }

func (g aesGCM) aead(key []byte) (stdcipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, qerrors.NewSuiteError("aes-gcm new cipher", err)
	}
	return stdcipher.NewGCM(block)
}

func (g aesGCM) Seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	aead, err := g.aead(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	tagOffset := len(sealed) - g.TagSize()
	return sealed[:tagOffset], sealed[tagOffset:], nil
}

func (g aesGCM) Open(key, nonce, ciphertext, tag []byte) (plaintext []byte, err error) {
	aead, err := g.aead(key)
	if err != nil {
		return nil, err
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
