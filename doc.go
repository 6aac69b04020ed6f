// Package base32hex implements base32hex (RFC 4648 Extended Hex)
// encoding of byte buffers, UTF-8 text, and integers, with support for
// custom alphabets.
//
// # Encodings
//
// DefaultEncoding uses the standard alphabet "0123456789ABCDEFGHIJKLMNOPQRSTUV"
// and backs the package-level functions. NewEncoding builds an instance
// around a custom alphabet, which must be a permutation of the default
// set so every encoding stays within the base32hex character repertoire:
//
//	enc, err := base32hex.NewEncoding("V0123456789ABCDEFGHIJKLMNOPQRSTU")
//
// Encodings are immutable after construction and safe for concurrent use.
//
// # Byte and text encoding
//
// Encode produces unpadded symbol bytes. EncodeToString and EncodeText
// right-pad their output with '=' to a multiple of 8 characters, and
// DecodeString and DecodeText strip up to 6 trailing pad characters
// before decoding. Decode works on raw symbols only and treats '=' as
// an invalid byte.
//
// The byte and string entry points take optional bounds that select a
// sub-range of the input with slice semantics: one value selects a
// start, two select start and end, negative values count from the end,
// and out-of-range values clamp to the buffer instead of failing:
//
//	base32hex.EncodeToString(data)        // all of data
//	base32hex.EncodeToString(data, 2)     // data[2:]
//	base32hex.EncodeToString(data, 2, 5)  // data[2:5]
//	base32hex.EncodeToString(data, -3)    // last 3 bytes
//
// # Integer encoding
//
// EncodeInt and EncodeBigInt render integers as place-value base 32
// numerals: zero is the first alphabet character and negative values
// carry a leading '-'. DecodeInt reports values outside the int64 range
// with an error matching ErrRange; DecodeBigInt has no range limit.
package base32hex
