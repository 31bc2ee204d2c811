// Package entropy runs a lightweight health check on freshly drawn random
// bytes before they become a salt or nonce. It does not replace the OS
// CSPRNG or attempt to improve its output; it only catches the class of
// catastrophic RNG failure where the source is readable but broken
// (stuck-at-zero, stuck-at-one-byte), surfacing it as
// RandomSourceUnavailable instead of silently sealing with a predictable
// frame.
package entropy

import (
	"bytes"

	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

// Check reports whether b looks like a plausible draw from a CSPRNG: not
// all zeros, and not a single repeated byte. It never runs a statistical
// test beyond that; those two conditions are the only failure modes
// these draws are short enough to reliably detect, and the only ones a
// broken-but-readable random source has been observed to produce.
func Check(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	allZero := true
	allSame := true
	first := b[0]
	for _, v := range b {
		if v != 0 {
			allZero = false
		}
		if v != first {
			allSame = false
		}
	}
	if allZero || allSame {
		return qerrors.ErrRandomSourceUnavailable
	}
	return nil
}

// CheckDistinct additionally rejects b if it is identical to prev, the
// previous draw from the same reader. Two consecutive identical salts (or
// nonces) would otherwise go undetected by Check alone, since a constant
// non-zero, non-uniform value can still pass it.
func CheckDistinct(b, prev []byte) error {
	if err := Check(b); err != nil {
		return err
	}
	if len(prev) > 0 && bytes.Equal(b, prev) {
		return qerrors.ErrRandomSourceUnavailable
	}
	return nil
}
