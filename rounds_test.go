package lioness_test

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"hash"
	"testing"

	"github.com/mxmauro/lioness"
)

// -----------------------------------------------------------------------------

// recordingSuite is a deterministic fake primitive pair that records every key
// and IV handed to it by the cipher core.
type recordingSuite struct {
	streamKeyLen int
	ivLen        int
	macKeyLen    int
	macLen       int

	streamKeys [][]byte
	ivs        [][]byte
	macKeys    [][]byte
}

func (s *recordingSuite) Name() string {
	return "recording"
}

func (s *recordingSuite) StreamKeyLen() int {
	return s.streamKeyLen
}

func (s *recordingSuite) StreamIVLen() int {
	return s.ivLen
}

func (s *recordingSuite) MACKeyLen() int {
	return s.macKeyLen
}

func (s *recordingSuite) MACLen() int {
	return s.macLen
}

func (s *recordingSuite) NewStream(key []byte, iv []byte) (cipher.Stream, error) {
	s.streamKeys = append(s.streamKeys, bytes.Clone(key))
	s.ivs = append(s.ivs, bytes.Clone(iv))
	return &xorStream{key: bytes.Clone(key)}, nil
}

func (s *recordingSuite) NewMAC(key []byte) (hash.Hash, error) {
	s.macKeys = append(s.macKeys, bytes.Clone(key))
	return &foldMAC{key: bytes.Clone(key), size: s.macLen}, nil
}

// xorStream is a toy keyed stream cipher. Its keystream depends only on the
// key, which is all the round-trip tests need.
type xorStream struct {
	key []byte
	pos int
}

func (x *xorStream) XORKeyStream(dst []byte, src []byte) {
	for idx := range src {
		dst[idx] = src[idx] ^ x.key[x.pos%len(x.key)] ^ byte(x.pos)
		x.pos++
	}
}

// foldMAC is a toy keyed MAC with a fixed-size digest.
type foldMAC struct {
	key  []byte
	data []byte
	size int
}

func (m *foldMAC) Write(p []byte) (int, error) {
	m.data = append(m.data, p...)
	return len(p), nil
}

func (m *foldMAC) Sum(b []byte) []byte {
	digest := make([]byte, m.size)
	for idx := range digest {
		digest[idx] = byte(idx) ^ m.key[idx%len(m.key)]
	}
	for idx, v := range m.data {
		digest[idx%m.size] ^= v ^ byte(idx)
	}
	return append(b, digest...)
}

func (m *foldMAC) Reset() {
	m.data = nil
}

func (m *foldMAC) Size() int {
	return m.size
}

func (m *foldMAC) BlockSize() int {
	return 1
}

// -----------------------------------------------------------------------------

func TestRoundKeySchedule(t *testing.T) {
	suite := &recordingSuite{
		streamKeyLen: 4,
		ivLen:        3,
		macKeyLen:    5,
		macLen:       6,
	}

	// Master key 0..17: k1=0..3, k2=4..8, k3=9..12, k4=13..17.
	key := patternedKey(18)

	t.Log("Creating cipher over the recording suite")
	c, err := lioness.New(lioness.Options{
		Suite: suite,
		Key:   key,
	})
	if err != nil {
		t.Fatal(err)
	}

	block := patternedKey(10)
	left := bytes.Clone(block[:6])

	t.Log("Encrypting one block")
	err = c.EncryptBlock(block)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Verifying the recorded round keys")
	if len(suite.streamKeys) != 2 || len(suite.macKeys) != 2 {
		t.Fatalf("unexpected round count: %d stream, %d mac", len(suite.streamKeys), len(suite.macKeys))
	}

	// The MAC rounds receive k2 and k4 verbatim.
	if !bytes.Equal(suite.macKeys[0], key[4:9]) {
		t.Fatal("first mac key is not k2")
	}
	if !bytes.Equal(suite.macKeys[1], key[13:18]) {
		t.Fatal("second mac key is not k4")
	}

	// The first stream round receives left[:4] XOR k1.
	expected := make([]byte, 4)
	for idx := range expected {
		expected[idx] = left[idx] ^ key[idx]
	}
	if !bytes.Equal(suite.streamKeys[0], expected) {
		t.Fatal("first stream key is not left XOR k1")
	}

	// Every stream round uses the all-zero IV by default.
	for _, iv := range suite.ivs {
		if !bytes.Equal(iv, make([]byte, 3)) {
			t.Fatal("stream iv is not all-zero")
		}
	}
}

func TestStreamKeyTruncation(t *testing.T) {
	// macLen 6 > streamKeyLen 4, so the last two bytes of the left half must
	// not reach the derived stream keys.
	key := patternedKey(18)

	blockA := patternedKey(10)
	blockB := patternedKey(10)
	blockB[4] ^= 0xff
	blockB[5] ^= 0xff

	var firstKeys [][]byte
	for _, block := range [][]byte{blockA, blockB} {
		suite := &recordingSuite{
			streamKeyLen: 4,
			ivLen:        3,
			macKeyLen:    5,
			macLen:       6,
		}
		c, err := lioness.New(lioness.Options{
			Suite: suite,
			Key:   key,
		})
		if err != nil {
			t.Fatal(err)
		}
		err = c.EncryptBlock(block)
		if err != nil {
			t.Fatal(err)
		}
		if len(suite.streamKeys[0]) != 4 {
			t.Fatalf("derived stream key has length %d", len(suite.streamKeys[0]))
		}
		firstKeys = append(firstKeys, suite.streamKeys[0])
	}

	if !bytes.Equal(firstKeys[0], firstKeys[1]) {
		t.Fatal("bytes of the left half beyond the stream key length influenced the derived key")
	}
}

func TestRoundTripWithFakeSuite(t *testing.T) {
	suite := &recordingSuite{
		streamKeyLen: 4,
		ivLen:        3,
		macKeyLen:    5,
		macLen:       6,
	}

	t.Log("Creating cipher over the recording suite")
	c, err := lioness.New(lioness.Options{
		Suite: suite,
		Key:   patternedKey(18),
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Encrypting and decrypting a block")
	orig := patternedKey(40)
	block := bytes.Clone(orig)
	err = c.EncryptBlock(block)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(block, orig) {
		t.Fatal("encryption did not alter the block")
	}
	err = c.DecryptBlock(block)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(block, orig) {
		t.Fatal("original and decrypted block mismatch")
	}
}

func TestIncompatibleSuite(t *testing.T) {
	// MAC digest shorter than a stream key cannot key the stream rounds.
	suite := &recordingSuite{
		streamKeyLen: 4,
		ivLen:        3,
		macKeyLen:    5,
		macLen:       3,
	}

	t.Log("Creating cipher over an incompatible suite (expected to fail)")
	_, err := lioness.New(lioness.Options{
		Suite: suite,
		Key:   patternedKey(18),
	})
	if !errors.Is(err, lioness.ErrIncompatibleSuite) {
		t.Fatalf("unexpected error %v", err)
	}
}
