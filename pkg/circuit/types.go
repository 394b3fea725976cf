// Package circuit implements the Safe Transaction Encryption verifier
// predicate: given a public commitment and a private witness, it
// recomputes every derived value and asserts bit-for-bit equality against
// the commitment. Successful return (nil error) from Verify is the
// statement being proved; there is no partial success.
package circuit

// PublicRecipient is one entry of the public recipient commitment list.
type PublicRecipient struct {
	// EncryptedKey is the RFC 3394 wrapping of the content key under this
	// recipient's derived key-encryption key.
	EncryptedKey [24]byte
	// EphemeralPublicKey is the X25519 public key derived from the
	// corresponding PrivateRecipient's ephemeral private key.
	EphemeralPublicKey [32]byte
}

// PublicInput is the commitment half of the circuit's input: everything an
// honest verifier already knows and the witness must agree with.
type PublicInput struct {
	// StructHash is the Safe transaction's EIP-712 struct hash.
	StructHash [32]byte
	// Nonce is the Safe account's replay counter bound into StructHash.
	Nonce [32]byte
	// Ciphertext is the AES-128-GCM ciphertext of the RLP-encoded
	// transaction.
	Ciphertext []byte
	// IV is the AES-GCM nonce used to produce Ciphertext and Tag.
	IV [12]byte
	// Tag is the AES-GCM authentication tag.
	Tag [16]byte
	// Recipients is the ordered, position-aligned commitment for each
	// recipient of the encrypted transaction.
	Recipients []PublicRecipient
}

// PrivateRecipient is one entry of the private per-recipient witness.
type PrivateRecipient struct {
	// PublicKey is the recipient's long-term X25519 public key.
	PublicKey [32]byte
	// EphemeralPrivateKey is the fresh per-recipient ephemeral X25519
	// scalar used for this encryption.
	EphemeralPrivateKey [32]byte
}

// PrivateInput is the witness half of the circuit's input, omitted when
// only verifying a statement someone else proved.
type PrivateInput struct {
	// Transaction is the RLP-encoded Safe transaction.
	Transaction []byte
	// ContentEncryptionKey is the AES-128 key used to encrypt Transaction.
	ContentEncryptionKey [16]byte
	// Recipients is ordered the same as PublicInput.Recipients.
	Recipients []PrivateRecipient
}

// Input bundles the public commitment and private witness for one run of
// the predicate.
type Input struct {
	Public  PublicInput
	Private PrivateInput
}
