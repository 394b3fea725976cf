package circuit

import (
	"bytes"
	"errors"

	"github.com/safe-research/safe-txe-verifier/pkg/crypto"
	"github.com/safe-research/safe-txe-verifier/pkg/safetx"
)

// Sentinel errors for each equality check the predicate performs. Debug
// builds may report which of these fired; the release path (cmd/txe-verify
// without -debug) only surfaces whether Verify returned nil or non-nil.
var (
	ErrStructHashMismatch         = errors.New("circuit: struct hash mismatch")
	ErrCiphertextMismatch         = errors.New("circuit: ciphertext mismatch")
	ErrTagMismatch                = errors.New("circuit: tag mismatch")
	ErrRecipientCountMismatch     = errors.New("circuit: recipient count mismatch")
	ErrEphemeralPublicKeyMismatch = errors.New("circuit: ephemeral public key mismatch")
	ErrEncryptedKeyMismatch       = errors.New("circuit: encrypted key mismatch")
)

// Verify recomputes every derived value from input.Private and asserts it
// matches the corresponding commitment in input.Public, in the fixed
// sequential order the statement requires. A nil return is acceptance; any
// non-nil return is rejection, and callers MUST NOT distinguish between
// error values outside of debug diagnostics.
func Verify(input Input) error {
	transaction, err := safetx.Decode(input.Private.Transaction)
	if err != nil {
		return err
	}

	structHash := transaction.StructHash(input.Public.Nonce)
	if structHash != input.Public.StructHash {
		return ErrStructHashMismatch
	}

	ciphertext, tag, err := crypto.AES128GCMSeal(
		input.Private.ContentEncryptionKey[:],
		input.Public.IV[:],
		input.Private.Transaction,
	)
	if err != nil {
		return err
	}
	if !bytes.Equal(ciphertext, input.Public.Ciphertext) {
		return ErrCiphertextMismatch
	}
	if !bytes.Equal(tag, input.Public.Tag[:]) {
		return ErrTagMismatch
	}

	if len(input.Public.Recipients) != len(input.Private.Recipients) {
		return ErrRecipientCountMismatch
	}

	for i, pub := range input.Public.Recipients {
		prv := input.Private.Recipients[i]

		epk, err := crypto.X25519PublicKey(prv.EphemeralPrivateKey[:])
		if err != nil {
			return err
		}
		if epk != pub.EphemeralPublicKey {
			return ErrEphemeralPublicKeyMismatch
		}

		ss, err := crypto.X25519SharedSecret(prv.EphemeralPrivateKey[:], prv.PublicKey[:])
		if err != nil {
			return err
		}

		kek, err := crypto.ConcatKDFKEK(ss[:])
		if err != nil {
			return err
		}

		ek, err := crypto.AESKeyWrap128(kek[:], input.Private.ContentEncryptionKey[:])
		if err != nil {
			return err
		}
		if !bytes.Equal(ek, pub.EncryptedKey[:]) {
			return ErrEncryptedKeyMismatch
		}
	}

	return nil
}
