package base32hex

import (
	"math/big"
)

const (
	// Base is the radix of the encoding.
	Base = 32
	// BitsPerSymbol is the number of source bits carried by one symbol.
	BitsPerSymbol = 5
	// DefaultAlphabet is the RFC 4648 Extended Hex alphabet. Custom
	// alphabets must be permutations of these 32 characters.
	DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	// PadChar right-pads encoded strings to a multiple of 8 characters.
	PadChar byte = '='
	// NegChar marks negative values in integer encodings.
	NegChar byte = '-'
)

// DefaultEncoding is the process-wide Encoding built from
// DefaultAlphabet. The package-level functions are bound to it.
var DefaultEncoding = MustEncoding(DefaultAlphabet)

// Encode encodes src to unpadded symbol bytes using DefaultEncoding.
func Encode(src []byte, bounds ...int) []byte {
	return DefaultEncoding.Encode(src, bounds...)
}

// EncodeToString encodes src to a padded base32hex string using DefaultEncoding.
func EncodeToString(src []byte, bounds ...int) string {
	return DefaultEncoding.EncodeToString(src, bounds...)
}

// EncodeText encodes the UTF-8 bytes of s using DefaultEncoding.
func EncodeText(s string, bounds ...int) string {
	return DefaultEncoding.EncodeText(s, bounds...)
}

// Decode decodes raw symbol bytes using DefaultEncoding.
func Decode(src []byte, bounds ...int) ([]byte, error) {
	return DefaultEncoding.Decode(src, bounds...)
}

// DecodeString decodes a padded base32hex string using DefaultEncoding.
func DecodeString(s string, bounds ...int) ([]byte, error) {
	return DefaultEncoding.DecodeString(s, bounds...)
}

// DecodeText decodes a padded base32hex string to UTF-8 text using DefaultEncoding.
func DecodeText(s string, bounds ...int) (string, error) {
	return DefaultEncoding.DecodeText(s, bounds...)
}

// EncodeInt encodes v as a base 32 numeral using DefaultEncoding.
func EncodeInt(v int64) string {
	return DefaultEncoding.EncodeInt(v)
}

// DecodeInt decodes a base 32 numeral to an int64 using DefaultEncoding.
func DecodeInt(s string) (int64, error) {
	return DefaultEncoding.DecodeInt(s)
}

// EncodeBigInt encodes v as a base 32 numeral using DefaultEncoding.
func EncodeBigInt(v *big.Int) string {
	return DefaultEncoding.EncodeBigInt(v)
}

// DecodeBigInt decodes a base 32 numeral of any length using DefaultEncoding.
func DecodeBigInt(s string) (*big.Int, error) {
	return DefaultEncoding.DecodeBigInt(s)
}
