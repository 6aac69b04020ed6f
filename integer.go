package base32hex

import (
	"math"
	"math/big"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// maxIntDigits is the symbol count of the widest int64 magnitude:
// 2^63 is an 8 followed by twelve zeros in base 32.
const maxIntDigits = 13

// bigDigits is the digit set math/big uses for base 32 text.
const bigDigits = "0123456789abcdefghijklmnopqrstuv"

// EncodeInt renders v as a place-value base 32 numeral in the instance
// alphabet. Zero encodes to the first alphabet character and negative
// values carry a leading NegChar before the digits of the magnitude.
func (e *Encoding) EncodeInt(v int64) string {
	u := uint64(v)
	if v < 0 {
		u = -u
	}

	var buf [maxIntDigits + 1]byte
	i := len(buf)
	for {
		i--
		buf[i] = e.enc[u%Base]
		u /= Base
		if u == 0 {
			break
		}
	}
	if v < 0 {
		i--
		buf[i] = NegChar
	}
	return string(buf[i:])
}

// DecodeInt parses a place-value base 32 numeral back into an int64. A
// leading NegChar marks a negative value only when followed by at least
// one digit. The empty string decodes to zero. Unknown characters fail
// with an *InvalidSymbolError carrying their position in s, and values
// outside the int64 range fail with an error matching ErrRange.
func (e *Encoding) DecodeInt(s string) (int64, error) {
	neg, digits := splitSign(s)

	var un uint64
	// un*Base overflows uint64 from this value on.
	cutoff := uint64(math.MaxUint64)/Base + 1
	maxVal := uint64(math.MaxInt64)
	if neg {
		maxVal++
	}

	for i := 0; i < len(digits); i++ {
		v := e.dec[digits[i]]
		if v == invalidDigit {
			pos := i
			if neg {
				pos++
			}
			log.WithFields(logger.Fields{
				"value":  s,
				"index":  pos,
				"symbol": digits[i],
			}).Warn("base32hex integer decode failed")
			return 0, &InvalidSymbolError{Pos: pos, Symbol: digits[i]}
		}
		if un >= cutoff {
			return 0, intRangeErr(s)
		}
		un = un*Base + uint64(v)
		if un > maxVal {
			return 0, intRangeErr(s)
		}
	}

	n := int64(un)
	if neg {
		n = -n
	}
	return n, nil
}

func intRangeErr(s string) error {
	log.WithFields(logger.Fields{
		"value": s,
	}).Warn("base32hex integer overflows int64")
	return oops.Errorf("failed to decode base32hex integer %q: %w", s, ErrRange)
}

// EncodeBigInt renders v as a place-value base 32 numeral in the
// instance alphabet, with the same zero and sign rules as EncodeInt.
// Digit arithmetic is delegated to math/big; only the symbols are
// translated. A nil v panics.
func (e *Encoding) EncodeBigInt(v *big.Int) string {
	if v == nil {
		panic("base32hex: EncodeBigInt on nil big.Int")
	}

	text := v.Text(Base)
	buf := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == NegChar {
			buf[i] = c
			continue
		}
		buf[i] = e.enc[bigDigitValue(c)]
	}
	return string(buf)
}

// DecodeBigInt parses a place-value base 32 numeral of any length into
// a big.Int. Sign and error rules match DecodeInt; the empty string
// decodes to big zero.
func (e *Encoding) DecodeBigInt(s string) (*big.Int, error) {
	if len(s) == 0 {
		return new(big.Int), nil
	}
	neg, digits := splitSign(s)

	buf := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		v := e.dec[digits[i]]
		if v == invalidDigit {
			pos := i
			if neg {
				pos++
			}
			log.WithFields(logger.Fields{
				"value":  s,
				"index":  pos,
				"symbol": digits[i],
			}).Warn("base32hex integer decode failed")
			return nil, &InvalidSymbolError{Pos: pos, Symbol: digits[i]}
		}
		buf[i] = bigDigits[v]
	}

	text := string(buf)
	if neg {
		text = string(NegChar) + text
	}
	n, ok := new(big.Int).SetString(text, Base)
	if !ok {
		return nil, oops.Errorf("failed to parse base32hex big integer %q", s)
	}
	return n, nil
}

// splitSign peels a leading NegChar off s. The marker counts as a sign
// only when at least one digit follows it, so a bare "-" falls through
// to symbol lookup and fails there.
func splitSign(s string) (neg bool, digits string) {
	if len(s) > 1 && s[0] == NegChar {
		return true, s[1:]
	}
	return false, s
}

// bigDigitValue maps a math/big base 32 digit to its numeric value.
func bigDigitValue(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}
