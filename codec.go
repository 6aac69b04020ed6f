package base32hex

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// EncodedLen returns the number of symbols produced by encoding n source
// bytes, before any padding.
func EncodedLen(n int) int {
	return (n*8 + BitsPerSymbol - 1) / BitsPerSymbol
}

// DecodedLen returns the number of bytes produced by decoding n symbols
// of a canonically encoded input.
func DecodedLen(n int) int {
	return n * BitsPerSymbol / 8
}

// paddedLen rounds a symbol count up to the next multiple of 8.
func paddedLen(n int) int {
	return (n + 7) / 8 * 8
}

// Encode converts src, or the sub-range of src selected by bounds, into
// unpadded base32hex symbol bytes. The result holds exactly
// EncodedLen(n) symbols for n input bytes.
//
// Bounds follow slice semantics: up to two values select the start and
// end of the range, negative values count from the end of src, and
// out-of-range values clamp to the buffer instead of failing.
func (e *Encoding) Encode(src []byte, bounds ...int) []byte {
	start, end := sliceBounds(len(src), bounds)
	dst := make([]byte, EncodedLen(end-start))
	n := e.encodeSymbols(dst, src[start:end])
	return dst[:n]
}

// EncodeToString converts src, or the sub-range of src selected by
// bounds, into a base32hex string right-padded with PadChar to a
// multiple of 8 characters.
func (e *Encoding) EncodeToString(src []byte, bounds ...int) string {
	start, end := sliceBounds(len(src), bounds)
	dst := make([]byte, paddedLen(EncodedLen(end-start)))
	n := e.encodeSymbols(dst, src[start:end])
	for n < len(dst) {
		dst[n] = PadChar
		n++
	}
	return string(dst)
}

// EncodeText encodes the UTF-8 bytes of s into a padded base32hex
// string. Bounds address bytes of the UTF-8 encoding, not characters.
func (e *Encoding) EncodeText(s string, bounds ...int) string {
	return e.EncodeToString([]byte(s), bounds...)
}

// Decode converts raw base32hex symbol bytes, or the sub-range selected
// by bounds, back into the encoded bytes. It has no padding awareness:
// every byte in the range must be an alphabet symbol, and a padding
// character fails like any other unknown byte, with an
// *InvalidSymbolError naming the offending index and value.
func (e *Encoding) Decode(src []byte, bounds ...int) ([]byte, error) {
	start, end := sliceBounds(len(src), bounds)
	return e.decodeSymbols(src[start:end])
}

// DecodeString converts a padded base32hex string, or the sub-range
// selected by bounds, back into bytes. When the selected range is a
// multiple of 8 characters long, up to 6 trailing padding characters are
// stripped before decoding; any further padding is left in place and
// rejected by symbol lookup. Ranges of any other length decode as-is.
func (e *Encoding) DecodeString(s string, bounds ...int) ([]byte, error) {
	start, end := sliceBounds(len(s), bounds)
	return e.decodeSymbols(stripPadding([]byte(s[start:end])))
}

// DecodeText decodes a padded base32hex string and interprets the result
// as UTF-8 text. The decoded bytes are returned unmodified, so malformed
// sequences are preserved rather than replaced.
func (e *Encoding) DecodeText(s string, bounds ...int) (string, error) {
	decoded, err := e.DecodeString(s, bounds...)
	if err != nil {
		return "", oops.Errorf("failed to decode base32hex text: %w", err)
	}
	return string(decoded), nil
}

// encodeSymbols writes the symbols for src into dst and returns the
// symbol count. dst must hold at least EncodedLen(len(src)) bytes.
//
// Bytes are consumed MSB-first in 5-bit groups. shift tracks how many
// bits of the current byte have not been consumed yet, and carry holds
// leftover bits already shifted into position for the next symbol, so
// groups crossing byte boundaries never need lookahead.
func (e *Encoding) encodeSymbols(dst, src []byte) int {
	var (
		shift = 3
		carry byte
		n     int
	)

	for _, b := range src {
		dst[n] = e.enc[(carry|b>>shift)&0x1F]
		n++
		if shift > 5 {
			// The byte still holds a whole 5-bit group.
			shift -= 5
			dst[n] = e.enc[(b>>shift)&0x1F]
			n++
		}
		shift = 5 - shift
		carry = b << shift
		shift = 8 - shift
	}

	// A carry was produced but never completed into a symbol.
	if shift != 3 {
		dst[n] = e.enc[carry&0x1F]
		n++
	}
	return n
}

// decodeSymbols converts symbol bytes back into the encoded bytes.
//
// shift tracks how many bits of the current output byte are still
// unfilled, starting from a full byte of 8. Each 5-bit symbol value
// either fits inside the current byte, completes it exactly, or
// straddles into the next one. If the input ends with leftover bits and
// any of them are set, the partial byte is appended to the output, so
// noncanonical input can decode to one byte more than DecodedLen.
func (e *Encoding) decodeSymbols(src []byte) ([]byte, error) {
	var (
		dst   = make([]byte, 0, DecodedLen(len(src))+1)
		shift = 8
		carry byte
	)

	for i, c := range src {
		v := e.dec[c]
		if v == invalidDigit {
			log.WithFields(logger.Fields{
				"index":  i,
				"symbol": c,
			}).Warn("base32hex decode failed")
			return nil, &InvalidSymbolError{Pos: i, Symbol: c}
		}

		shift -= 5
		switch {
		case shift > 0:
			carry |= v << shift
		case shift < 0:
			dst = append(dst, carry|v>>(-shift))
			shift += 8
			carry = v << shift
		default:
			dst = append(dst, carry|v)
			shift = 8
			carry = 0
		}
	}

	if shift != 8 && carry != 0 {
		dst = append(dst, carry)
	}
	return dst, nil
}

// stripPadding removes trailing padding from a symbol block whose length
// is a multiple of 8. At most 6 padding characters are removed; anything
// beyond that stays and fails symbol lookup. Blocks of any other length
// pass through untouched.
func stripPadding(symbols []byte) []byte {
	if len(symbols)%8 != 0 {
		return symbols
	}
	n := len(symbols)
	for i := 0; i < 6 && n > 0 && symbols[n-1] == PadChar; i++ {
		n--
	}
	return symbols[:n]
}

// sliceBounds resolves optional start and end values against a buffer
// length using slice semantics: negative values count from the end, both
// values clamp into [0, length], and start past end yields an empty
// range. Values beyond the first two are ignored.
func sliceBounds(length int, bounds []int) (start, end int) {
	start, end = 0, length
	if len(bounds) > 0 {
		start = clampIndex(bounds[0], length)
	}
	if len(bounds) > 1 {
		end = clampIndex(bounds[1], length)
	}
	if start > end {
		end = start
	}
	return start, end
}

func clampIndex(idx, length int) int {
	if idx < 0 {
		idx += length
		if idx < 0 {
			idx = 0
		}
	} else if idx > length {
		idx = length
	}
	return idx
}
