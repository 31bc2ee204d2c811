package constants

import "testing"

func TestSuiteString(t *testing.T) {
	tests := []struct {
		suite Suite
		want  string
	}{
		{SuiteAES256CBCHMACSHA256, "AES-256-CBC"},
		{SuiteAES256GCM, "AES-256-GCM"},
		{SuiteChaCha20Poly1305, "CHACHA20-POLY1305"},
		{SuiteUnknown, "Unknown"},
		{Suite(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.suite.String(); got != tt.want {
			t.Errorf("Suite(%d).String() = %q, want %q", tt.suite, got, tt.want)
		}
	}
}

func TestSuiteIsSupported(t *testing.T) {
	tests := []struct {
		suite Suite
		want  bool
	}{
		{SuiteAES256CBCHMACSHA256, true},
		{SuiteAES256GCM, true},
		{SuiteChaCha20Poly1305, true},
		{SuiteUnknown, false},
		{Suite(99), false},
	}

	for _, tt := range tests {
		if got := tt.suite.IsSupported(); got != tt.want {
			t.Errorf("Suite(%d).IsSupported() = %v, want %v", tt.suite, got, tt.want)
		}
	}
}

func TestSuiteNonceAndTagSizes(t *testing.T) {
	tests := []struct {
		suite      Suite
		nonceSize  int
		tagSize    int
		minFrame   int
	}{
		{SuiteAES256CBCHMACSHA256, 16, 32, SaltSize + 16 + 32},
		{SuiteAES256GCM, 12, 16, SaltSize + 12 + 16},
		{SuiteChaCha20Poly1305, 12, 16, SaltSize + 12 + 16},
	}

	for _, tt := range tests {
		if got := tt.suite.NonceSize(); got != tt.nonceSize {
			t.Errorf("%v.NonceSize() = %d, want %d", tt.suite, got, tt.nonceSize)
		}
		if got := tt.suite.TagSize(); got != tt.tagSize {
			t.Errorf("%v.TagSize() = %d, want %d", tt.suite, got, tt.tagSize)
		}
		if got := tt.suite.MinFrameSize(); got != tt.minFrame {
			t.Errorf("%v.MinFrameSize() = %d, want %d", tt.suite, got, tt.minFrame)
		}
	}
}

func TestSuiteNonceSizePanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NonceSize() on SuiteUnknown should panic")
		}
	}()
	SuiteUnknown.NonceSize()
}

func TestSuiteTagSizePanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TagSize() on SuiteUnknown should panic")
		}
	}()
	SuiteUnknown.TagSize()
}

func TestSuiteUniqueness(t *testing.T) {
	suites := []Suite{SuiteAES256CBCHMACSHA256, SuiteAES256GCM, SuiteChaCha20Poly1305}
	seen := map[Suite]bool{}
	for _, s := range suites {
		if seen[s] {
			t.Errorf("duplicate suite value %v", s)
		}
		seen[s] = true
	}
}

func TestKDFParameters(t *testing.T) {
	if PBKDF2Iterations != 100_000 {
		t.Errorf("PBKDF2Iterations = %d, want 100000", PBKDF2Iterations)
	}
	if DerivedKeySize != 32 {
		t.Errorf("DerivedKeySize = %d, want 32", DerivedKeySize)
	}
	if SaltSize != 16 {
		t.Errorf("SaltSize = %d, want 16", SaltSize)
	}
}
