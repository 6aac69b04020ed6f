package base32hex

import (
	"errors"
	"fmt"
)

// ErrRange is returned when a decoded integer does not fit in an int64.
var ErrRange = errors.New("value out of range")

// InvalidAlphabetError is returned when an alphabet does not contain
// exactly 32 characters.
type InvalidAlphabetError struct {
	Length int
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("alphabet must be %d characters, got %d", Base, e.Length)
}

// InvalidCharacterError is returned when an alphabet contains a character
// outside the default alphabet's character set.
type InvalidCharacterError struct {
	Index int
	Char  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid alphabet character %q at index %d", e.Char, e.Index)
}

// DuplicateCharacterError is returned when an alphabet repeats a character.
// Index is the position of the second occurrence.
type DuplicateCharacterError struct {
	Index int
	Char  rune
}

func (e *DuplicateCharacterError) Error() string {
	return fmt.Sprintf("duplicate alphabet character %q at index %d", e.Char, e.Index)
}

// InvalidSymbolError is returned when decoding encounters a byte that does
// not resolve to a digit value in the encoding's alphabet. Pos is the index
// of the offending byte within the decoded range.
type InvalidSymbolError struct {
	Pos    int
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q (0x%02X) at index %d", e.Symbol, e.Symbol, e.Pos)
}
