//go:build fips
// +build fips

package constants

// FIPSMode reports whether the binary was built with the "fips" tag. In
// FIPS mode only AES-256-GCM is an approved algorithm; AES-256-CBC+HMAC and
// ChaCha20-Poly1305 are rejected as unsupported ciphers even though their
// implementations remain present in the binary.
func FIPSMode() bool { return true }
