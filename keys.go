package lioness

import (
	"github.com/mxmauro/lioness/models"
	"github.com/mxmauro/lioness/util"
)

// -----------------------------------------------------------------------------

// subKeys holds the four round subkeys sliced out of a master key.
type subKeys struct {
	k1 []byte // stream cipher
	k2 []byte // mac
	k3 []byte // stream cipher
	k4 []byte // mac
}

// -----------------------------------------------------------------------------

// splitMasterKey derives the round subkeys by contiguous slicing of the master
// key, in the fixed order k1 (stream), k2 (mac), k3 (stream), k4 (mac). The
// subkeys are copies so the caller can dispose of the master key afterwards.
func splitMasterKey(s models.Suite, key []byte) subKeys {
	skl := s.StreamKeyLen()
	mkl := s.MACKeyLen()

	keys := subKeys{
		k1: make([]byte, skl),
		k2: make([]byte, mkl),
		k3: make([]byte, skl),
		k4: make([]byte, mkl),
	}
	copy(keys.k1, key[:skl])
	copy(keys.k2, key[skl:skl+mkl])
	copy(keys.k3, key[skl+mkl:2*skl+mkl])
	copy(keys.k4, key[2*skl+mkl:])

	// Done
	return keys
}

// Zeroize wipes the cipher's key material. The instance must not be used
// afterwards.
func (c *Cipher) Zeroize() {
	util.WipeAll(c.keys.k1, c.keys.k2, c.keys.k3, c.keys.k4, c.iv)
	c.suite = nil
}
