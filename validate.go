package base32hex

// IsAlphabet reports whether s would be accepted by NewEncoding: 32
// characters drawn from the default alphabet with no repeats. It never
// fails; call NewEncoding to learn why a candidate was rejected.
func IsAlphabet(s string) bool {
	_, err := newEncoding(s)
	return err == nil
}

// IsBase32HexString reports whether s is a padded base32hex string in
// the default alphabet: byte length a multiple of 8 and, once up to 6
// trailing padding characters are stripped, nothing but default
// alphabet symbols. Custom encodings are not consulted. The empty
// string passes.
func IsBase32HexString(s string) bool {
	if len(s)%8 != 0 {
		return false
	}
	for _, c := range stripPadding([]byte(s)) {
		if DefaultEncoding.dec[c] == invalidDigit {
			return false
		}
	}
	return true
}
