// aescbc_hmac.go implements AES-256-CBC with an Encrypt-then-MAC
// HMAC-SHA256 tag: a 16-byte random IV, PKCS7 padding to the AES block
// size, and a single 32-byte derived key used for both the AES-CBC
// encryption and the HMAC-SHA256 tag (not two independent subkeys).
//
// This single-key construction is a deliberate compatibility choice with
// the reference behavior this container format preserves, not a design
// recommendation: a future format version should derive independent
// encryption and MAC subkeys via HKDF instead.
//
// Open order matters: the MAC over (IV || ciphertext) is verified in
// constant time before any attempt to decrypt or unpad. A MAC mismatch
// and a padding failure discovered after a successful MAC both surface
// as ErrAuthenticationFailed, since the two causes are never
// distinguished to the caller: distinguishing them is exactly what a
// padding-oracle attack needs.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/envcrypt/envcrypt/internal/constants"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

type cbcHMAC struct{}

func newCBCHMAC() *cbcHMAC {
	return &cbcHMAC{}
}

func (cbcHMAC) Suite() constants.Suite { return constants.SuiteAES256CBCHMACSHA256 }
func (cbcHMAC) NonceSize() int         { return constants.CBCIVSize }
func (cbcHMAC) TagSize() int           { return constants.CBCTagSize }

func (c cbcHMAC) Seal(key, iv, plaintext []byte) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, qerrors.NewSuiteError("aes-cbc new cipher", err)
	}

	padded := pkcs7Pad(plaintext, constants.CBCBlockSize)
	ciphertext = make([]byte, len(padded))
	stdcipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	tag = computeTag(key, iv, ciphertext)
	return ciphertext, tag, nil
}

func (c cbcHMAC) Open(key, iv, ciphertext, tag []byte) (plaintext []byte, err error) {
	if len(ciphertext) == 0 || len(ciphertext)%constants.CBCBlockSize != 0 {
		return nil, qerrors.ErrAuthenticationFailed
	}

	expectedTag := computeTag(key, iv, ciphertext)
	if subtle.ConstantTimeCompare(expectedTag, tag) != 1 {
		return nil, qerrors.ErrAuthenticationFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, qerrors.NewSuiteError("aes-cbc new cipher", err)
	}

	decrypted := make([]byte, len(ciphertext))
	stdcipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, ciphertext)

	unpadded, ok := pkcs7Unpad(decrypted, constants.CBCBlockSize)
	if !ok {
		// Padding is invalid after a MAC that already verified, which
		// should not occur with a valid key. Folded into
		// AuthenticationFailed rather than exposed as a distinct error,
		// to avoid reintroducing the very oracle the MAC-first order closes.
		return nil, qerrors.ErrAuthenticationFailed
	}
	return unpadded, nil
}

// computeTag is HMAC-SHA256 over (iv || ciphertext), using the same
// derived key as the AES encryption key.
func computeTag(key, iv, ciphertext []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(iv)
	h.Write(ciphertext)
	return h.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS7 padding. It is only ever reached
// after MAC verification has already succeeded, so it does not need to
// run in constant time with respect to an attacker-controlled ciphertext:
// the MAC check is what closes the padding-oracle channel.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, false
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}
	return data[:len(data)-padLen], true
}
