package secret_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	qerrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/pkg/secret"
)

func TestParseSecretBasic(t *testing.T) {
	s, err := secret.ParseSecret("hunter2")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	defer s.Release()

	if !bytes.Equal(s.Bytes(), []byte("hunter2")) {
		t.Errorf("Bytes() = %q, want %q", s.Bytes(), "hunter2")
	}
}

func TestParseSecretBase64PrefixEquivalence(t *testing.T) {
	inputs := []string{"abcDEF123==", "plain-secret-value", "x"}

	for _, in := range inputs {
		plain, err := secret.ParseSecret(in)
		if err != nil {
			t.Fatalf("ParseSecret(%q) failed: %v", in, err)
		}
		prefixed, err := secret.ParseSecret("base64:" + in)
		if err != nil {
			t.Fatalf("ParseSecret(%q) failed: %v", "base64:"+in, err)
		}

		if !secret.Equal(plain, prefixed) {
			t.Errorf("parse_secret(%q) != parse_secret(base64:%q)", in, in)
		}
		plain.Release()
		prefixed.Release()
	}
}

func TestParseSecretDoesNotBase64Decode(t *testing.T) {
	// "base64:aGVsbG8=" should yield the literal characters "aGVsbG8=",
	// not the decoded "hello": the prefix convention never decodes.
	s, err := secret.ParseSecret("base64:aGVsbG8=")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	defer s.Release()

	if !bytes.Equal(s.Bytes(), []byte("aGVsbG8=")) {
		t.Errorf("Bytes() = %q, want literal %q (no base64 decode)", s.Bytes(), "aGVsbG8=")
	}
}

func TestParseSecretWhitespaceTrimming(t *testing.T) {
	base, err := secret.ParseSecret("hunter2")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	defer base.Release()

	padded, err := secret.ParseSecret("  hunter2\n")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	defer padded.Release()

	if !secret.Equal(base, padded) {
		t.Error("parse_secret should trim leading/trailing whitespace")
	}
}

func TestParseSecretEmptyFails(t *testing.T) {
	tests := []string{"", "   ", "\t\n", "base64:", "   base64:   "}

	for _, in := range tests {
		_, err := secret.ParseSecret(in)
		if !errors.Is(err, qerrors.ErrInvalidKey) {
			t.Errorf("ParseSecret(%q) error = %v, want ErrInvalidKey", in, err)
		}
	}
}

func TestGenerateSecretRoundTrip(t *testing.T) {
	display, s, err := secret.GenerateSecret(nil)
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	defer s.Release()

	if display == "" {
		t.Fatal("GenerateSecret returned empty display string")
	}

	reparsed, err := secret.ParseSecret(display)
	if err != nil {
		t.Fatalf("ParseSecret(display) failed: %v", err)
	}
	defer reparsed.Release()

	if !secret.Equal(s, reparsed) {
		t.Error("GenerateSecret's returned Secret should match ParseSecret(display)")
	}
}

func TestGenerateSecretUniqueness(t *testing.T) {
	d1, s1, err := secret.GenerateSecret(nil)
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	defer s1.Release()

	d2, s2, err := secret.GenerateSecret(nil)
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	defer s2.Release()

	if d1 == d2 {
		t.Error("two successive GenerateSecret calls produced identical output")
	}
}

func TestGenerateSecretRandomSourceFailure(t *testing.T) {
	_, _, err := secret.GenerateSecret(strings.NewReader(""))
	if !errors.Is(err, qerrors.ErrRandomSourceUnavailable) {
		t.Errorf("GenerateSecret with exhausted reader: err = %v, want ErrRandomSourceUnavailable", err)
	}
}

func TestSecretRelease(t *testing.T) {
	s, err := secret.ParseSecret("hunter2")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}

	buf := s.Bytes()
	s.Release()

	for i, b := range buf {
		if b != 0 {
			t.Errorf("Release() left non-zero byte at index %d: %d", i, b)
		}
	}

	// Idempotent: calling Release a second time must not panic.
	s.Release()
}

func TestSecretStringDoesNotLeak(t *testing.T) {
	s, err := secret.ParseSecret("hunter2")
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	defer s.Release()

	if strings.Contains(s.String(), "hunter2") {
		t.Error("Secret.String() must never contain the raw secret")
	}
}

func TestDerivedKeyRelease(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	k := secret.NewDerivedKey(buf)

	if !bytes.Equal(k.Bytes(), []byte{1, 2, 3, 4}) {
		t.Fatalf("Bytes() = %v, want %v", k.Bytes(), []byte{1, 2, 3, 4})
	}

	k.Release()
	for i, b := range k.Bytes() {
		if b != 0 {
			t.Errorf("Release() left non-zero byte at index %d: %d", i, b)
		}
	}
	k.Release() // idempotent
}

func TestDerivedKeyStringDoesNotLeak(t *testing.T) {
	k := secret.NewDerivedKey([]byte("sensitive-key-bytes-000000000000"))
	defer k.Release()

	if strings.Contains(k.String(), "sensitive") {
		t.Error("DerivedKey.String() must never contain the raw key")
	}
}
