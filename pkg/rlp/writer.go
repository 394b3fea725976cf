package rlp

// Encoder builds RLP-encoded bytes. It exists to construct test fixtures and
// to exercise the RLP round-trip testable property; the circuit predicate
// itself never encodes.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes appends a byte-string item.
func (e *Encoder) Bytes(b []byte) *Encoder {
	e.buf = append(e.buf, EncodeBytes(b)...)
	return e
}

// List appends a list item whose elements are produced by f against a fresh
// encoder.
func (e *Encoder) List(f func(*Encoder)) *Encoder {
	inner := NewEncoder()
	f(inner)
	e.buf = append(e.buf, encodeHeader(0xc0, inner.buf)...)
	return e
}

// Uint appends a 32-byte word as its minimal (leading-zero-stripped)
// byte-string item.
func (e *Encoder) Uint(word [32]byte) *Encoder {
	e.buf = append(e.buf, EncodeUint(word)...)
	return e
}

// Bool appends a boolean item.
func (e *Encoder) Bool(v bool) *Encoder {
	e.buf = append(e.buf, EncodeBool(v)...)
	return e
}

// Encoded returns the accumulated encoded bytes.
func (e *Encoder) Encoded() []byte {
	return e.buf
}

// EncodeBytes encodes a single RLP byte string, including the single-byte
// fast path for a lone byte below 0x80.
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return encodeHeader(0x80, b)
}

// EncodeUint encodes a 32-byte word as its minimal big-endian byte string
// (leading zero bytes stripped), the canonical RLP uint encoding.
func EncodeUint(word [32]byte) []byte {
	i := 0
	for i < len(word) && word[i] == 0 {
		i++
	}
	return EncodeBytes(word[i:])
}

// EncodeBool encodes a bool as RLP: false is the empty byte string, true is
// []byte{0x01}.
func EncodeBool(v bool) []byte {
	if !v {
		return EncodeBytes(nil)
	}
	return EncodeBytes([]byte{0x01})
}

func encodeHeader(offset byte, payload []byte) []byte {
	n := len(payload)
	long := int(offset) + 55
	if n <= 55 {
		out := make([]byte, 0, 1+n)
		out = append(out, offset+byte(n))
		return append(out, payload...)
	}

	var lenBytes []byte
	for v := n; v > 0; v >>= 8 {
		lenBytes = append([]byte{byte(v)}, lenBytes...)
	}

	out := make([]byte, 0, 1+len(lenBytes)+n)
	out = append(out, byte(long+len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, payload...)
}
