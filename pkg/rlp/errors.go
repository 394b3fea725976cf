package rlp

import "errors"

var (
	// ErrUnexpectedEOF is returned when the input ends before a declared
	// length can be satisfied.
	ErrUnexpectedEOF = errors.New("rlp: unexpected end of input")

	// ErrTypeMismatch is returned when a byte string is expected but a list
	// is found, or vice versa.
	ErrTypeMismatch = errors.New("rlp: type mismatch")

	// ErrLengthOfLengthTooLong is returned when a long-form length prefix
	// declares more than 4 bytes of length.
	ErrLengthOfLengthTooLong = errors.New("rlp: length-of-length exceeds 4 bytes")

	// ErrTrailingData is returned when a decoder still has unconsumed bytes
	// where none are expected.
	ErrTrailingData = errors.New("rlp: trailing data")

	// ErrFixedSizeMismatch is returned when a byte string does not match the
	// fixed array size it is being decoded into.
	ErrFixedSizeMismatch = errors.New("rlp: byte string has wrong fixed size")

	// ErrUintTooLong is returned when a uint byte string is longer than 32
	// bytes and cannot be left-padded into a word.
	ErrUintTooLong = errors.New("rlp: uint byte string longer than 32 bytes")

	// ErrInvalidBool is returned when a bool byte string is neither empty
	// nor exactly []byte{0x01}.
	ErrInvalidBool = errors.New("rlp: invalid boolean encoding")
)
