package base32hex

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEncodingDefault(t *testing.T) {
	assert := assert.New(t)

	enc, err := NewEncoding(DefaultAlphabet)
	assert.Nil(err)
	assert.Equal(DefaultAlphabet, enc.Alphabet())

	data := []byte("The quick brown fox jumps over the lazy dog")
	assert.Equal(DefaultEncoding.EncodeToString(data), enc.EncodeToString(data))
}

func TestNewEncodingRejects(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		wantErr  string
	}{
		{
			name:     "too short",
			alphabet: "0123456789ABCDEFGHIJKLMNOPQRSTU",
			wantErr:  "must be 32 characters, got 31",
		},
		{
			name:     "too long",
			alphabet: DefaultAlphabet + "V",
			wantErr:  "must be 32 characters, got 33",
		},
		{
			name:     "lowercase character",
			alphabet: "0123456789abcdefghijklmnopqrstuv",
			wantErr:  "invalid alphabet character 'a' at index 10",
		},
		{
			name:     "character past V",
			alphabet: "0123456789ABCDEFGHIJKLMNOPQRSTUW",
			wantErr:  "invalid alphabet character 'W' at index 31",
		},
		{
			name:     "duplicate character",
			alphabet: "00123456789ABCDEFGHIJKLMNOPQRSTU",
			wantErr:  "duplicate alphabet character '0' at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoding(tt.alphabet)
			if err == nil {
				t.Fatalf("NewEncoding(%q) = %v, want error", tt.alphabet, enc)
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.wantErr)) {
				t.Errorf("Error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAlphabetErrorTypes(t *testing.T) {
	assert := assert.New(t)

	_, err := NewEncoding("0123456789")
	var lenErr *InvalidAlphabetError
	assert.True(errors.As(err, &lenErr))
	assert.Equal(10, lenErr.Length)

	_, err = NewEncoding("0123456789ABCDEFGHIJKLMNOPQRSTUW")
	var charErr *InvalidCharacterError
	assert.True(errors.As(err, &charErr))
	assert.Equal(31, charErr.Index)
	assert.Equal('W', charErr.Char)

	_, err = NewEncoding("0123456789ABCDEFGHIJKLMNOPQRSTUA")
	var dupErr *DuplicateCharacterError
	assert.True(errors.As(err, &dupErr))
	assert.Equal(31, dupErr.Index)
	assert.Equal('A', dupErr.Char)
}

func TestMustEncodingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustEncoding accepted a 10-character alphabet")
		}
	}()
	MustEncoding("0123456789")
}
