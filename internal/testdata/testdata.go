// Package testdata provides a deterministic source of test inputs.
package testdata

import "crypto/sha3"

// DRBG is a deterministic byte generator keyed by a domain string. It is for tests and benchmarks only.
type DRBG struct {
	shake *sha3.SHAKE
}

// New returns a DRBG seeded with the given domain string.
func New(domain string) *DRBG {
	shake := sha3.NewSHAKE128()
	_, _ = shake.Write([]byte(domain))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.shake.Read(b)
	return b
}
