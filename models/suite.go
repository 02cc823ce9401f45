package models

import (
	"crypto/cipher"
	"hash"
)

// -----------------------------------------------------------------------------

// Suite is the minimal interface that must be implemented by every primitive
// pair the wide-block cipher can be built on: a keyed stream cipher and a
// keyed MAC, together with their size constants.
type Suite interface {
	// Name returns the name of the suite.
	Name() string

	// StreamKeyLen returns the length of a stream cipher key in bytes.
	StreamKeyLen() int
	// StreamIVLen returns the length of a stream cipher IV in bytes.
	StreamIVLen() int

	// MACKeyLen returns the length of a MAC key in bytes.
	MACKeyLen() int
	// MACLen returns the length of a MAC digest in bytes.
	MACLen() int

	// NewStream creates a keyed stream cipher instance. The keystream it
	// produces must be fully determined by key and iv.
	NewStream(key []byte, iv []byte) (cipher.Stream, error)
	// NewMAC creates a keyed MAC instance with a digest of exactly MACLen
	// bytes.
	NewMAC(key []byte) (hash.Hash, error)
}

// -----------------------------------------------------------------------------

// KeyLen returns the total master key length required by the given suite.
func KeyLen(s Suite) int {
	return 2 * (s.StreamKeyLen() + s.MACKeyLen())
}
