package crypto

// Fixed byte sizes for the AEAD, ECDH, KDF, and key-wrap primitives this
// package implements. Collected here so aead.go, x25519.go, concatkdf.go,
// and keywrap.go agree on one set of constants instead of repeating magic
// numbers, the same role `nonce.go` played for Matter's AEAD nonce layout.
const (
	// GCMKeySize is the AES-128-GCM key length in bytes.
	GCMKeySize = 16

	// GCMNonceSize is the AES-GCM nonce (IV) length in bytes.
	GCMNonceSize = 12

	// GCMTagSize is the AES-GCM authentication tag length in bytes.
	GCMTagSize = 16

	// ContentKeySize is the content-encryption key length in bytes, equal to
	// GCMKeySize since the content key is consumed directly as the AEAD key.
	ContentKeySize = 16

	// KEKSize is the key-encryption key (Concat-KDF output) length in bytes.
	KEKSize = 16

	// WrappedKeySize is the RFC 3394 key-wrap output length in bytes for a
	// 16-byte (two 64-bit block) input: one extra 8-byte block for the
	// integrity check value.
	WrappedKeySize = 24

	// X25519KeySize is the length in bytes of an X25519 scalar or point.
	X25519KeySize = 32
)
