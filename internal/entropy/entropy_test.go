package entropy_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/envcrypt/envcrypt/internal/entropy"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

func TestCheckAcceptsRealRandomBytes(t *testing.T) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	if err := entropy.Check(b); err != nil {
		t.Errorf("Check rejected genuine random bytes: %v", err)
	}
}

func TestCheckRejectsAllZero(t *testing.T) {
	b := make([]byte, 16)
	if err := entropy.Check(b); !errors.Is(err, qerrors.ErrRandomSourceUnavailable) {
		t.Errorf("got %v, want ErrRandomSourceUnavailable", err)
	}
}

func TestCheckRejectsAllSameByte(t *testing.T) {
	b := bytes.Repeat([]byte{0x7f}, 16)
	if err := entropy.Check(b); !errors.Is(err, qerrors.ErrRandomSourceUnavailable) {
		t.Errorf("got %v, want ErrRandomSourceUnavailable", err)
	}
}

func TestCheckAcceptsEmpty(t *testing.T) {
	if err := entropy.Check(nil); err != nil {
		t.Errorf("Check(nil) = %v, want nil", err)
	}
}

func TestCheckDistinctRejectsRepeatedDraw(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	prev := make([]byte, len(b))
	copy(prev, b)

	if err := entropy.CheckDistinct(b, prev); !errors.Is(err, qerrors.ErrRandomSourceUnavailable) {
		t.Errorf("got %v, want ErrRandomSourceUnavailable", err)
	}
}

func TestCheckDistinctAcceptsDifferentDraws(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6, 7, 8}
	if err := entropy.CheckDistinct(b, a); err != nil {
		t.Errorf("CheckDistinct rejected distinct draws: %v", err)
	}
}
