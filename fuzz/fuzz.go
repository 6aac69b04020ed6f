package exportable

import (
	"bytes"

	"github.com/go-i2p/base32hex"
)

func Fuzz(data []byte) int {
	encoded := base32hex.EncodeToString(data)
	decoded, err := base32hex.DecodeString(encoded)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(decoded, data) {
		panic("round trip mismatch")
	}

	_ = base32hex.IsBase32HexString(string(data))
	_, _ = base32hex.DecodeString(string(data))
	_, _ = base32hex.DecodeInt(string(data))
	return 0
}
