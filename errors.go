package lioness

import (
	"errors"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidKeyLength is returned when the provided master key does not have the
	// exact length required by the suite, i.e. 2*(StreamKeyLen+MACKeyLen).
	ErrInvalidKeyLength = errors.New("invalid master key length")

	// ErrInvalidIVLength is returned when an explicit stream IV of the wrong length
	// is provided.
	ErrInvalidIVLength = errors.New("invalid iv length")

	// ErrIncompatibleSuite is returned when the suite's MAC digest is shorter than its
	// stream cipher key. The construction requires MACLen >= StreamKeyLen so the left
	// half of a block can always key the stream cipher.
	ErrIncompatibleSuite = errors.New("mac digest shorter than stream key")

	// ErrInvalidBlockLength is returned by EncryptBlock and DecryptBlock when the
	// block is not strictly longer than the MAC digest. The block is left untouched.
	ErrInvalidBlockLength = errors.New("invalid block length")
)
