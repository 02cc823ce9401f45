package chacha20_blake2b

import (
	"crypto/cipher"
	"hash"

	"github.com/mxmauro/lioness/models"
	"github.com/mxmauro/lioness/util"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// -----------------------------------------------------------------------------

const (
	// Name256 identifies the ChaCha20 + keyed BLAKE2b-256 suite.
	Name256 = "chacha20-blake2b256"

	// Name512 identifies the ChaCha20 + keyed BLAKE2b-512 suite.
	Name512 = "chacha20-blake2b512"
)

// -----------------------------------------------------------------------------

type chaChaBlake2bSuite struct {
	name      string
	macKeyLen int
	macLen    int
	newMAC    func(key []byte) (hash.Hash, error)
}

// -----------------------------------------------------------------------------

// New256 creates the suite pairing ChaCha20 with keyed BLAKE2b-256. Stream and
// MAC keys are 32 bytes each and the MAC digest is 32 bytes, for a 128-byte
// master key.
func New256() (models.Suite, error) {
	return &chaChaBlake2bSuite{
		name:      Name256,
		macKeyLen: 32,
		macLen:    blake2b.Size256,
		newMAC:    blake2b.New256,
	}, nil
}

// New512 creates the suite pairing ChaCha20 with keyed BLAKE2b-512. The
// 64-byte digest gives the cipher a left half wider than a stream key, for a
// 192-byte master key.
func New512() (models.Suite, error) {
	return &chaChaBlake2bSuite{
		name:      Name512,
		macKeyLen: 64,
		macLen:    blake2b.Size,
		newMAC:    blake2b.New512,
	}, nil
}

// Name returns the name of the suite.
func (s *chaChaBlake2bSuite) Name() string {
	return s.name
}

// StreamKeyLen returns the length of a ChaCha20 key.
func (s *chaChaBlake2bSuite) StreamKeyLen() int {
	return chacha20.KeySize
}

// StreamIVLen returns the length of a ChaCha20 nonce.
func (s *chaChaBlake2bSuite) StreamIVLen() int {
	return chacha20.NonceSize
}

// MACKeyLen returns the length of a BLAKE2b key.
func (s *chaChaBlake2bSuite) MACKeyLen() int {
	return s.macKeyLen
}

// MACLen returns the length of a BLAKE2b digest.
func (s *chaChaBlake2bSuite) MACLen() int {
	return s.macLen
}

// NewStream creates a ChaCha20 instance keyed with the given key and iv.
func (s *chaChaBlake2bSuite) NewStream(key []byte, iv []byte) (cipher.Stream, error) {
	st, err := chacha20.NewUnauthenticatedCipher(key, iv)
	if err != nil {
		return nil, util.NewChainedError(err, "failed to create stream cipher")
	}

	// Done.
	return st, nil
}

// NewMAC creates a keyed BLAKE2b instance.
func (s *chaChaBlake2bSuite) NewMAC(key []byte) (hash.Hash, error) {
	h, err := s.newMAC(key)
	if err != nil {
		return nil, util.NewChainedError(err, "failed to create mac")
	}

	// Done.
	return h, nil
}
