package kdf_test

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	xpbkdf2 "golang.org/x/crypto/pbkdf2"

	qerrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/pkg/kdf"
)

func TestDeriveMatchesReferenceConstruction(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, 16)
	want := xpbkdf2.Key([]byte("hunter2"), salt, 100_000, 32, sha256.New)

	got, err := kdf.Derive([]byte("hunter2"), salt)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	defer got.Release()

	if !bytes.Equal(got.Bytes(), want) {
		t.Error("Derive output does not match PBKDF2-HMAC-SHA256 reference construction")
	}
}

func TestDeriveOutputLength(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, 16)
	key, err := kdf.Derive([]byte("secret"), salt)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	defer key.Release()

	if len(key.Bytes()) != 32 {
		t.Errorf("derived key length = %d, want 32", len(key.Bytes()))
	}
}

func TestDeriveDifferentSaltsDifferentKeys(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1, err := kdf.Derive([]byte("hunter2"), salt1)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	defer k1.Release()

	k2, err := kdf.Derive([]byte("hunter2"), salt2)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	defer k2.Release()

	if bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Error("different salts must produce different derived keys")
	}
}

func TestDeriveRejectsEmptySecret(t *testing.T) {
	_, err := kdf.Derive(nil, bytes.Repeat([]byte{0x01}, 16))
	if !errors.Is(err, qerrors.ErrInvalidKey) {
		t.Errorf("Derive with empty secret: err = %v, want ErrInvalidKey", err)
	}
}

func TestDeriveRejectsWrongSaltSize(t *testing.T) {
	_, err := kdf.Derive([]byte("hunter2"), []byte{0x01, 0x02})
	if err == nil {
		t.Error("Derive with wrong salt size should fail")
	}
}

func TestDeriveReleaseZeroizes(t *testing.T) {
	key, err := kdf.Derive([]byte("hunter2"), bytes.Repeat([]byte{0x01}, 16))
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	key.Release()

	for i, b := range key.Bytes() {
		if b != 0 {
			t.Errorf("Release() left non-zero byte at index %d: %d", i, b)
		}
	}
}
