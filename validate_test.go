package base32hex

import (
	"testing"
)

func TestIsAlphabet(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"default", DefaultAlphabet, true},
		{"rotated", "V0123456789ABCDEFGHIJKLMNOPQRSTU", true},
		{"reversed", "VUTSRQPONMLKJIHGFEDCBA9876543210", true},
		{"too short", "0123456789ABCDEFGHIJKLMNOPQRSTU", false},
		{"lowercase", "0123456789abcdefghijklmnopqrstuv", false},
		{"duplicate", "00123456789ABCDEFGHIJKLMNOPQRSTU", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlphabet(tt.s); got != tt.want {
				t.Errorf("IsAlphabet(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestIsBase32HexString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", true},
		{"one block", "AA======", true},
		{"two blocks", "CPNMUOJ1E8======", true},
		{"full block no pads", "CPNMUOJ1", true},
		{"all pads", "========", false},
		{"seven pads", "A=======", false},
		{"length off block", "CO", false},
		{"lowercase symbol", "aa======", false},
		{"pad inside", "A=A=====", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBase32HexString(tt.s); got != tt.want {
				t.Errorf("IsBase32HexString(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
