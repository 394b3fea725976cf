package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// ErrInvalidX25519KeySize is returned when a scalar or point is not exactly
// X25519KeySize bytes.
var ErrInvalidX25519KeySize = errors.New("crypto: X25519 key must be 32 bytes")

// X25519PublicKey computes the X25519 public key for scalar, i.e. scalar
// multiplication of the base point 9 by scalar with RFC 7748 clamping
// applied internally by curve25519.X25519.
func X25519PublicKey(scalar []byte) ([32]byte, error) {
	var out [32]byte
	if len(scalar) != X25519KeySize {
		return out, ErrInvalidX25519KeySize
	}
	pub, err := curve25519.X25519(scalar, curve25519.Basepoint)
	if err != nil {
		return out, fmt.Errorf("crypto: computing X25519 public key: %w", err)
	}
	copy(out[:], pub)
	return out, nil
}

// X25519SharedSecret computes the X25519 Diffie-Hellman shared secret
// between scalar (a private key) and point (a peer's public key). No
// validation is performed on point beyond its length; low-order points are
// accepted, since a dishonest prover can at worst make the result fail a
// later equality check rather than gain anything from the all-zero or
// other degenerate outputs they produce.
func X25519SharedSecret(scalar, point []byte) ([32]byte, error) {
	var out [32]byte
	if len(scalar) != X25519KeySize {
		return out, ErrInvalidX25519KeySize
	}
	if len(point) != X25519KeySize {
		return out, ErrInvalidX25519KeySize
	}
	// ScalarMult rather than X25519: X25519 returns an error for a
	// low-order point, ScalarMult yields the all-zero output instead.
	var s, p [32]byte
	copy(s[:], scalar)
	copy(p[:], point)
	curve25519.ScalarMult(&out, &s, &p)
	return out, nil
}
