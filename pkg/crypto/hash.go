// Package crypto provides the cryptographic primitives the Safe TXE circuit
// recomputes and compares against its public input: AES-128-GCM, X25519
// ECDH, Concat-KDF, and RFC 3394 AES-128 Key Wrap.
package crypto

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA-256 output sizes.
const (
	// SHA256LenBits is the SHA-256 output length in bits.
	SHA256LenBits = 256

	// SHA256LenBytes is the SHA-256 output length in bytes.
	SHA256LenBytes = 32

	// Keccak256LenBytes is the Keccak-256 output length in bytes.
	Keccak256LenBytes = 32
)

// NewSHA256 returns a new hash.Hash for computing SHA-256 digests
// incrementally. ConcatKDF is the one caller: it writes the counter, the
// shared secret, and OtherInfo into one digest rather than concatenating
// them into a single buffer first.
func NewSHA256() hash.Hash {
	return sha256.New()
}

// Keccak256 computes the Keccak-256 hash of a message, the pre-standardization
// variant used by EIP-712 struct hashing (not NIST SHA3-256, which differs in
// its padding byte).
//
// Returns a 32-byte hash digest.
func Keccak256(message []byte) [Keccak256LenBytes]byte {
	var out [Keccak256LenBytes]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(message)
	h.Sum(out[:0])
	return out
}

// NewKeccak256 returns a new hash.Hash for computing Keccak-256 digests
// incrementally, e.g. when concatenating several fields into one preimage.
func NewKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}
