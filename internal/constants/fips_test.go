package constants_test

import (
	"testing"

	"github.com/envcrypt/envcrypt/internal/constants"
)

func TestFIPSModeDefaultDisabled(t *testing.T) {
	// This test file is compiled under the default (!fips) build; a
	// separate build with -tags fips would see FIPSMode() return true
	// instead, restricting pkg/cipher.New to AES-256-GCM.
	if constants.FIPSMode() {
		t.Error("FIPSMode() = true without the fips build tag")
	}
}
