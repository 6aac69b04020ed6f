package base32hex

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// invalidDigit marks decode table entries with no alphabet symbol.
const invalidDigit = 0xFF

// Encoding is a base32hex codec bound to a single 32-character alphabet.
//
// An Encoding holds two lookup tables derived from its alphabet at
// construction: one from digit values 0-31 to symbol bytes, and one from
// symbol bytes back to digit values. The alphabet's character set is all
// ASCII, so the byte-keyed table doubles as the character lookup and the
// codec can run directly over raw symbol buffers.
//
// Encodings are immutable after construction and safe for concurrent use.
type Encoding struct {
	alphabet string
	enc      [Base]byte
	dec      [256]byte
}

// NewEncoding builds an Encoding around a custom alphabet. The alphabet
// must be exactly 32 characters drawn from DefaultAlphabet with no
// repeats; the order of the characters defines their digit values.
//
// Failures are reported as *InvalidAlphabetError, *InvalidCharacterError
// or *DuplicateCharacterError, naming the offending length, index and
// character.
func NewEncoding(alphabet string) (*Encoding, error) {
	enc, err := newEncoding(alphabet)
	if err != nil {
		log.WithError(err).Error("rejected base32hex alphabet")
		return nil, err
	}
	log.WithFields(logger.Fields{
		"alphabet": alphabet,
	}).Debug("built base32hex encoding")
	return enc, nil
}

// MustEncoding is like NewEncoding but panics on an invalid alphabet.
// It simplifies package-level Encoding variables.
func MustEncoding(alphabet string) *Encoding {
	enc, err := NewEncoding(alphabet)
	if err != nil {
		panic(err)
	}
	return enc
}

// Alphabet returns the 32-character alphabet this Encoding was built with.
func (e *Encoding) Alphabet() string {
	return e.alphabet
}

func newEncoding(alphabet string) (*Encoding, error) {
	runes := []rune(alphabet)
	if len(runes) != Base {
		return nil, &InvalidAlphabetError{Length: len(runes)}
	}

	e := &Encoding{alphabet: alphabet}
	for i := range e.dec {
		e.dec[i] = invalidDigit
	}

	for i, r := range runes {
		if !legalAlphabetChar(r) {
			return nil, &InvalidCharacterError{Index: i, Char: r}
		}
		c := byte(r)
		if e.dec[c] != invalidDigit {
			return nil, &DuplicateCharacterError{Index: i, Char: r}
		}
		e.enc[i] = c
		e.dec[c] = byte(i)
	}
	return e, nil
}

// legalAlphabetChar reports whether r belongs to the default alphabet's
// character set, the only characters a custom alphabet may use.
func legalAlphabetChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'V')
}
