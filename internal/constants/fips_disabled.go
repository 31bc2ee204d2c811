//go:build !fips
// +build !fips

package constants

// FIPSMode reports whether the binary was built with the "fips" tag. When
// false, all three cipher suites are available.
func FIPSMode() bool { return false }
