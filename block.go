package lioness

import (
	"crypto/cipher"
)

// -----------------------------------------------------------------------------

// BlockCipher exposes the wide-block cipher through the standard
// crypto/cipher.Block interface at one fixed block size.
type BlockCipher struct {
	inner    *Cipher
	blockLen int
}

var _ cipher.Block = (*BlockCipher)(nil)

// -----------------------------------------------------------------------------

// NewBlockCipher creates a new fixed-size block cipher from the given options.
// The block size must be strictly greater than the suite's MAC digest length;
// once that holds, Encrypt and Decrypt cannot fail.
func NewBlockCipher(opts Options, blockLen int) (*BlockCipher, error) {
	inner, err := New(opts)
	if err != nil {
		return nil, err
	}
	if blockLen <= inner.Suite().MACLen() {
		inner.Zeroize()
		return nil, ErrInvalidBlockLength
	}

	// Done
	return &BlockCipher{
		inner:    inner,
		blockLen: blockLen,
	}, nil
}

// BlockSize returns the fixed block size in bytes.
func (b *BlockCipher) BlockSize() int {
	return b.blockLen
}

// Encrypt enciphers the first BlockSize bytes of src into dst. Dst and src may
// be the same slice.
func (b *BlockCipher) Encrypt(dst []byte, src []byte) {
	b.apply(dst, src, b.inner.EncryptBlock)
}

// Decrypt deciphers the first BlockSize bytes of src into dst. Dst and src may
// be the same slice.
func (b *BlockCipher) Decrypt(dst []byte, src []byte) {
	b.apply(dst, src, b.inner.DecryptBlock)
}

// Zeroize wipes the underlying cipher's key material.
func (b *BlockCipher) Zeroize() {
	b.inner.Zeroize()
}

// -----------------------------------------------------------------------------

func (b *BlockCipher) apply(dst []byte, src []byte, transform func([]byte) error) {
	if len(src) < b.blockLen {
		panic("lioness: input not full block")
	}
	if len(dst) < b.blockLen {
		panic("lioness: output not full block")
	}

	block := dst[:b.blockLen]
	copy(block, src[:b.blockLen])
	err := transform(block)
	if err != nil {
		// The block length is asserted at construction time, so reaching this
		// point means a broken suite.
		panic("lioness: " + err.Error())
	}
}
