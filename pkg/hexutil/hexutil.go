// Package hexutil decodes the strict "0x"-prefixed hex strings used at the
// program's input boundary (§6). It enforces exactly the prefix, even
// length, and character set the harness requires, deliberately narrower
// than encoding/hex's bare nibble decoding.
package hexutil

import (
	"errors"
	"strings"
)

// ErrMissingPrefix is returned when the input does not start with "0x".
var ErrMissingPrefix = errors.New("hexutil: missing 0x prefix")

// ErrOddLength is returned when the input (after the "0x" prefix) has an
// odd number of hex digits.
var ErrOddLength = errors.New("hexutil: odd-length hex string")

// ErrInvalidByte is returned when a byte outside 0-9a-fA-F appears where a
// hex digit is expected.
var ErrInvalidByte = errors.New("hexutil: invalid hex digit")

// Decode decodes a strict "0x"-prefixed hex string into bytes. The prefix is
// mandatory and case-sensitive; hex digits may be upper or lower case.
func Decode(s string) ([]byte, error) {
	hex, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return nil, ErrMissingPrefix
	}
	if len(hex)%2 != 0 {
		return nil, ErrOddLength
	}

	out := make([]byte, len(hex)/2)
	for i := range out {
		hi, err := nibble(hex[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := nibble(hex[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func nibble(b byte) (byte, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	default:
		return 0, ErrInvalidByte
	}
}
