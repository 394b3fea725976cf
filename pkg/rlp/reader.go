// Package rlp implements a minimal, strict-framing RLP (Recursive Length
// Prefix) decoder, plus a matching encoder used only to build test fixtures
// and exercise the round-trip testable property. The decoder enforces
// strict length framing (truncation, a length-of-length over 4 bytes, and
// leftover bytes where none are expected are errors); it does not check
// that an encoding is canonical, so non-minimal length prefixes are
// accepted.
package rlp

import "encoding/binary"

// ItemKind distinguishes the two RLP item shapes.
type ItemKind int

const (
	// KindBytes marks a byte-string item.
	KindBytes ItemKind = iota
	// KindList marks a list item.
	KindList
)

// Item is one decoded RLP element: either a byte string or a nested list.
type Item struct {
	Kind  ItemKind
	Bytes []byte  // valid when Kind == KindBytes
	List  Decoder // valid when Kind == KindList
}

// Decoder is a cursor over RLP-encoded bytes. The zero value is not usable;
// construct one with NewDecoder.
type Decoder struct {
	data []byte
}

// NewDecoder creates a decoder over an RLP byte slice. The slice is not
// copied; callers must not mutate it while the decoder is in use.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// DecodeStruct decodes a single RLP list, calling f with a decoder scoped to
// the list's elements, and asserts there is nothing before or after the
// list in d and nothing left over inside it once f returns.
func DecodeStruct[T any](d *Decoder, f func(*Decoder) (T, error)) (T, error) {
	var zero T
	list, err := d.List()
	if err != nil {
		return zero, err
	}
	if err := d.Done(); err != nil {
		return zero, err
	}
	result, err := f(list)
	if err != nil {
		return zero, err
	}
	if err := list.Done(); err != nil {
		return zero, err
	}
	return result, nil
}

// Vec decodes every element of an RLP list with f, returning the results in
// input order.
func Vec[T any](d *Decoder, f func(*Decoder) (T, error)) ([]T, error) {
	list, err := d.List()
	if err != nil {
		return nil, err
	}

	var result []T
	for {
		raw := list.data
		item, err := list.Next()
		if err != nil {
			return nil, err
		}
		if item == nil {
			break
		}
		raw = raw[:len(raw)-len(list.data)]
		elem, err := f(itemDecoder(item, raw))
		if err != nil {
			return nil, err
		}
		result = append(result, elem)
	}
	return result, nil
}

func itemDecoder(item *Item, raw []byte) *Decoder {
	if item.Kind == KindList {
		return &item.List
	}
	return NewDecoder(raw)
}

// List decodes a list item and returns a decoder scoped to its elements.
func (d *Decoder) List() (*Decoder, error) {
	item, err := d.Next()
	if err != nil {
		return nil, err
	}
	if item == nil || item.Kind != KindList {
		return nil, ErrTypeMismatch
	}
	return &item.List, nil
}

// Bytes decodes a byte-string item.
func (d *Decoder) Bytes() ([]byte, error) {
	item, err := d.Next()
	if err != nil {
		return nil, err
	}
	if item == nil || item.Kind != KindBytes {
		return nil, ErrTypeMismatch
	}
	return item.Bytes, nil
}

// FixedBytes decodes a byte-string item and asserts it is exactly n bytes.
func (d *Decoder) FixedBytes(n int) ([]byte, error) {
	b, err := d.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, ErrFixedSizeMismatch
	}
	return b, nil
}

// Address decodes a 20-byte address item.
func (d *Decoder) Address() ([20]byte, error) {
	var out [20]byte
	b, err := d.FixedBytes(20)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// Uint decodes an RLP-encoded unsigned integer into a left-padded 32-byte
// word. Source byte strings longer than 32 bytes are rejected.
func (d *Decoder) Uint() ([32]byte, error) {
	var out [32]byte
	b, err := d.Bytes()
	if err != nil {
		return out, err
	}
	if len(b) > 32 {
		return out, ErrUintTooLong
	}
	copy(out[32-len(b):], b)
	return out, nil
}

// Bool decodes an RLP boolean: an empty byte string is false, []byte{0x01}
// is true, anything else is rejected.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.Bytes()
	if err != nil {
		return false, err
	}
	switch {
	case len(b) == 0:
		return false, nil
	case len(b) == 1 && b[0] == 0x01:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// Done asserts the decoder has no remaining bytes.
func (d *Decoder) Done() error {
	if len(d.data) != 0 {
		return ErrTrailingData
	}
	return nil
}

// Next decodes the next RLP item, advancing the cursor past it. It returns
// (nil, nil) when the decoder is exhausted.
func (d *Decoder) Next() (*Item, error) {
	if len(d.data) == 0 {
		return nil, nil
	}
	tag := d.data[0]

	var item Item
	var rest []byte
	var err error

	switch {
	case tag <= 0x7f:
		item = Item{Kind: KindBytes, Bytes: d.data[0:1]}
		rest = d.data[1:]
	case tag <= 0xbf:
		var data []byte
		data, rest, err = prefixedLen(tag, 0x80, d.data)
		if err != nil {
			return nil, err
		}
		item = Item{Kind: KindBytes, Bytes: data}
	default:
		var data []byte
		data, rest, err = prefixedLen(tag, 0xc0, d.data)
		if err != nil {
			return nil, err
		}
		item = Item{Kind: KindList, List: Decoder{data: data}}
	}

	d.data = rest
	return &item, nil
}

// prefixedLen splits data after a length-prefixed tag byte into (item
// payload, remaining bytes). offset is 0x80 for byte strings, 0xc0 for
// lists. Short form (tag - offset <= 55) encodes the length directly in the
// tag; long form encodes a big-endian length of up to 4 bytes following the
// tag.
func prefixedLen(tag, offset byte, data []byte) (item, rest []byte, err error) {
	long := offset + 55
	if tag <= long {
		length := int(tag - offset)
		return split(data[1:], length)
	}

	llen := int(tag - long)
	if llen > 4 {
		return nil, nil, ErrLengthOfLengthTooLong
	}
	lend := 1 + llen
	if lend > len(data) {
		return nil, nil, ErrUnexpectedEOF
	}
	lbytes := data[1:lend]

	var be [4]byte
	copy(be[4-llen:], lbytes)
	length := int(binary.BigEndian.Uint32(be[:]))

	return split(data[lend:], length)
}

func split(data []byte, length int) (item, rest []byte, err error) {
	if length > len(data) {
		return nil, nil, ErrUnexpectedEOF
	}
	return data[:length], data[length:], nil
}
