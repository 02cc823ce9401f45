package suites

import (
	"errors"
	"io"

	"github.com/mxmauro/lioness/crypto/suites/chacha20_blake2b"
	"github.com/mxmauro/lioness/models"
)

// -----------------------------------------------------------------------------

// NewSuiteFunc creates a primitive suite instance.
type NewSuiteFunc func() (models.Suite, error)

// -----------------------------------------------------------------------------

var suitesList = map[string]NewSuiteFunc{
	chacha20_blake2b.Name256: chacha20_blake2b.New256,
	chacha20_blake2b.Name512: chacha20_blake2b.New512,
}

var ErrSuiteNotSupported = errors.New("suite not supported")

// -----------------------------------------------------------------------------

// Supported returns a list of supported primitive suites.
func Supported() []string {
	list := make([]string, 0, len(suitesList))
	for name := range suitesList {
		list = append(list, name)
	}
	return list
}

// IsSupported returns true if the given primitive suite is supported.
func IsSupported(name string) bool {
	_, ok := suitesList[name]
	return ok
}

// Register registers a custom primitive suite.
func Register(name string, newSuite NewSuiteFunc) error {
	if len(name) == 0 {
		return errors.New("suite name cannot be empty")
	}
	if newSuite == nil {
		return errors.New("newSuite cannot be nil")
	}

	// Check if the suite is already registered
	if _, ok := suitesList[name]; ok {
		return errors.New("suite already exists")
	}

	// Add the suite to the list.
	suitesList[name] = newSuite

	// Done
	return nil
}

// New creates a new suite object for the given name.
func New(name string) (models.Suite, error) {
	f, ok := suitesList[name]
	if !ok {
		return nil, ErrSuiteNotSupported
	}
	return f()
}

// GenerateKey generates a new random master key of the exact total length
// required by the given suite.
func GenerateKey(name string, r io.Reader) ([]byte, error) {
	s, err := New(name)
	if err != nil {
		return nil, err
	}

	key := make([]byte, models.KeyLen(s))

	n, err := r.Read(key)
	if err != nil {
		return nil, err
	}
	if n != len(key) {
		return nil, errors.New("unable to generate master key")
	}

	// Done.
	return key, nil
}
