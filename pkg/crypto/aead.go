package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// Fixed additional authenticated data for the content AEAD. Every recipient
// shares the same AAD regardless of key count; it identifies the AEAD
// algorithm, not the recipient set. Value is the base64url (no padding)
// encoding of the JSON object {"enc":"A128GCM"}.
const AEADAdditionalData = "eyJlbmMiOiJBMTI4R0NNIn0"

// Sentinel errors returned by AEAD operations.
var (
	ErrInvalidAEADKeySize   = errors.New("crypto: AEAD key must be 16 bytes")
	ErrInvalidAEADNonceSize = errors.New("crypto: AEAD nonce must be 12 bytes")
	ErrInvalidAEADTagSize   = errors.New("crypto: AEAD tag must be 16 bytes")
	ErrAEADTagMismatch      = errors.New("crypto: AEAD authentication tag mismatch")
)

// AES128GCM wraps a 16-byte key for AES-128-GCM sealing and opening with the
// fixed additional authenticated data above.
type AES128GCM struct {
	key [GCMKeySize]byte
}

// NewAES128GCM constructs an AES128GCM from a 16-byte key.
func NewAES128GCM(key []byte) (*AES128GCM, error) {
	if len(key) != GCMKeySize {
		return nil, ErrInvalidAEADKeySize
	}
	var a AES128GCM
	copy(a.key[:], key)
	return &a, nil
}

// Seal encrypts plaintext under nonce, returning ciphertext and the detached
// authentication tag. nonce must be 12 bytes.
func (a *AES128GCM) Seal(nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != GCMNonceSize {
		return nil, nil, ErrInvalidAEADNonceSize
	}
	block, err := aes.NewCipher(a.key[:])
	if err != nil {
		return nil, nil, fmt.Errorf("crypto: creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("crypto: creating GCM mode: %w", err)
	}
	sealed := gcm.Seal(nil, nonce, plaintext, []byte(AEADAdditionalData))
	split := len(sealed) - GCMTagSize
	ciphertext = sealed[:split]
	tag = sealed[split:]
	return ciphertext, tag, nil
}

// Open verifies tag against ciphertext and, on success, returns the
// recovered plaintext. A tag mismatch (or any other authentication failure)
// returns ErrAEADTagMismatch, never a partially-recovered plaintext.
func (a *AES128GCM) Open(nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(nonce) != GCMNonceSize {
		return nil, ErrInvalidAEADNonceSize
	}
	if len(tag) != GCMTagSize {
		return nil, ErrInvalidAEADTagSize
	}
	block, err := aes.NewCipher(a.key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: creating GCM mode: %w", err)
	}
	sealed := append(append([]byte{}, ciphertext...), tag...)
	plaintext, err := gcm.Open(nil, nonce, sealed, []byte(AEADAdditionalData))
	if err != nil {
		return nil, ErrAEADTagMismatch
	}
	return plaintext, nil
}

// AES128GCMSeal is a convenience wrapper encrypting plaintext with key under
// nonce, returning ciphertext and the detached tag in one call.
func AES128GCMSeal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	a, err := NewAES128GCM(key)
	if err != nil {
		return nil, nil, err
	}
	return a.Seal(nonce, plaintext)
}

// AES128GCMOpen is a convenience wrapper verifying and decrypting ciphertext
// with key, nonce, and the detached tag in one call.
func AES128GCMOpen(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	a, err := NewAES128GCM(key)
	if err != nil {
		return nil, err
	}
	return a.Open(nonce, ciphertext, tag)
}
