package lioness

import (
	"errors"

	"github.com/mxmauro/lioness/crypto/suites"
	"github.com/mxmauro/lioness/models"
	"github.com/mxmauro/lioness/util"
)

// -----------------------------------------------------------------------------

// Cipher implements the LIONESS wide-block cipher construction on top of the
// stream cipher and MAC primitives of a suite. Four unbalanced Feistel rounds
// turn the pair into a single pseudorandom permutation over blocks of any
// length greater than the MAC digest.
//
// An instance is immutable once created and can be shared by any number of
// concurrent encrypt/decrypt calls.
type Cipher struct {
	suite models.Suite
	iv    []byte
	keys  subKeys
}

// Options configure the Cipher parameters.
type Options struct {
	// Suite holding the stream cipher and MAC primitives to build the cipher on.
	Suite models.Suite

	// Master key of exactly 2*(StreamKeyLen+MACKeyLen) bytes. The cipher keeps
	// its own copy of the derived subkeys; the caller remains the owner of the
	// provided slice.
	Key []byte

	// An optional stream cipher IV of StreamIVLen bytes, shared by every round.
	// If nil, the conventional all-zero IV is used.
	IV []byte
}

// -----------------------------------------------------------------------------

// New creates a new keyed wide-block cipher from the given options.
func New(opts Options) (*Cipher, error) {
	// Verify if the suite is valid.
	if opts.Suite == nil {
		return nil, errors.New("invalid suite")
	}

	// The left half of a block doubles as stream key material, so the MAC
	// digest must cover at least one stream key.
	if opts.Suite.MACLen() < opts.Suite.StreamKeyLen() {
		return nil, ErrIncompatibleSuite
	}

	// Verify the master key length.
	if len(opts.Key) != models.KeyLen(opts.Suite) {
		return nil, ErrInvalidKeyLength
	}

	// Resolve the stream IV. An explicit IV must match the primitive's length.
	iv := make([]byte, opts.Suite.StreamIVLen())
	if opts.IV != nil {
		if len(opts.IV) != len(iv) {
			return nil, ErrInvalidIVLength
		}
		copy(iv, opts.IV)
	}

	// Create the new cipher with its own copy of the round subkeys.
	c := Cipher{
		suite: opts.Suite,
		iv:    iv,
		keys:  splitMasterKey(opts.Suite, opts.Key),
	}

	// Done
	return &c, nil
}

// NewFromSuite creates a new keyed wide-block cipher using a named suite from
// the registry and the all-zero IV.
func NewFromSuite(name string, key []byte) (*Cipher, error) {
	suite, err := suites.New(name)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Suite: suite,
		Key:   key,
	})
}

// Suite returns the primitive suite the cipher was built on.
func (c *Cipher) Suite() models.Suite {
	return c.suite
}

// KeyLen returns the length of the master key used by the cipher.
func (c *Cipher) KeyLen() int {
	return models.KeyLen(c.suite)
}

// MinBlockLen returns the smallest block length accepted by EncryptBlock and
// DecryptBlock.
func (c *Cipher) MinBlockLen() int {
	return c.suite.MACLen() + 1
}

// EncryptBlock enciphers the given block in place. The block must be strictly
// longer than the suite's MAC digest; otherwise ErrInvalidBlockLength is
// returned and the block is left untouched.
func (c *Cipher) EncryptBlock(block []byte) error {
	left, right, err := c.splitBlock(block)
	if err != nil {
		return err
	}

	// R = R ^ S(L ^ K1)
	err = c.rightXORStream(left, right, c.keys.k1)
	if err != nil {
		return err
	}

	// L = L ^ H(K2, R)
	err = c.leftXORDigest(left, right, c.keys.k2)
	if err != nil {
		return err
	}

	// R = R ^ S(L ^ K3)
	err = c.rightXORStream(left, right, c.keys.k3)
	if err != nil {
		return err
	}

	// L = L ^ H(K4, R)
	err = c.leftXORDigest(left, right, c.keys.k4)
	if err != nil {
		return err
	}

	// Done
	return nil
}

// DecryptBlock deciphers the given block in place by running the four rounds
// in reverse. The block must be strictly longer than the suite's MAC digest;
// otherwise ErrInvalidBlockLength is returned and the block is left untouched.
func (c *Cipher) DecryptBlock(block []byte) error {
	left, right, err := c.splitBlock(block)
	if err != nil {
		return err
	}

	// L = L ^ H(K4, R)
	err = c.leftXORDigest(left, right, c.keys.k4)
	if err != nil {
		return err
	}

	// R = R ^ S(L ^ K3)
	err = c.rightXORStream(left, right, c.keys.k3)
	if err != nil {
		return err
	}

	// L = L ^ H(K2, R)
	err = c.leftXORDigest(left, right, c.keys.k2)
	if err != nil {
		return err
	}

	// R = R ^ S(L ^ K1)
	err = c.rightXORStream(left, right, c.keys.k1)
	if err != nil {
		return err
	}

	// Done
	return nil
}

// -----------------------------------------------------------------------------

// splitBlock validates the block length and splits the block into its left
// (MAC digest sized) and right halves.
func (c *Cipher) splitBlock(block []byte) ([]byte, []byte, error) {
	macLen := c.suite.MACLen()
	if len(block) <= macLen {
		return nil, nil, ErrInvalidBlockLength
	}
	return block[:macLen], block[macLen:], nil
}

// rightXORStream XORs into the right half the keystream of the stream cipher
// keyed with left XOR key. Only the first StreamKeyLen bytes of the left half
// take part in the derived key; the remainder of a wider left half is ignored
// on purpose.
func (c *Cipher) rightXORStream(left []byte, right []byte, key []byte) error {
	// Derive the per-round stream key.
	derived := make([]byte, len(key))
	for idx := range derived {
		derived[idx] = left[idx] ^ key[idx]
	}
	defer util.WipeBytes(derived)

	s, err := c.suite.NewStream(derived, c.iv)
	if err != nil {
		// Key and IV lengths are fixed at construction time, so this means a
		// broken suite.
		return util.NewChainedError(err, "failed to create stream cipher")
	}
	s.XORKeyStream(right, right)

	// Done
	return nil
}

// leftXORDigest XORs into the left half the MAC digest of the right half
// under key.
func (c *Cipher) leftXORDigest(left []byte, right []byte, key []byte) error {
	h, err := c.suite.NewMAC(key)
	if err != nil {
		return util.NewChainedError(err, "failed to create mac")
	}
	_, _ = h.Write(right)
	digest := h.Sum(nil)
	defer util.WipeBytes(digest)

	for idx := range left {
		left[idx] ^= digest[idx]
	}

	// Done
	return nil
}
