package circuit

import "github.com/safe-research/safe-txe-verifier/pkg/rlp"

// DecodePublicInput RLP-decodes a PublicInput from its six-element wire
// list: [struct_hash, nonce, ciphertext, iv, tag, recipients_list].
func DecodePublicInput(encoded []byte) (PublicInput, error) {
	d := rlp.NewDecoder(encoded)
	return rlp.DecodeStruct(d, decodePublicInputFields)
}

func decodePublicInputFields(d *rlp.Decoder) (PublicInput, error) {
	var in PublicInput
	var err error

	structHash, err := d.FixedBytes(32)
	if err != nil {
		return in, err
	}
	copy(in.StructHash[:], structHash)
	if in.Nonce, err = d.Uint(); err != nil {
		return in, err
	}
	if in.Ciphertext, err = d.Bytes(); err != nil {
		return in, err
	}
	iv, err := d.FixedBytes(12)
	if err != nil {
		return in, err
	}
	copy(in.IV[:], iv)
	tag, err := d.FixedBytes(16)
	if err != nil {
		return in, err
	}
	copy(in.Tag[:], tag)

	in.Recipients, err = rlp.Vec(d, decodePublicRecipient)
	if err != nil {
		return in, err
	}
	return in, nil
}

func decodePublicRecipient(d *rlp.Decoder) (PublicRecipient, error) {
	var r PublicRecipient

	encryptedKey, err := d.FixedBytes(24)
	if err != nil {
		return r, err
	}
	copy(r.EncryptedKey[:], encryptedKey)

	ephemeralPublicKey, err := d.FixedBytes(32)
	if err != nil {
		return r, err
	}
	copy(r.EphemeralPublicKey[:], ephemeralPublicKey)

	if err := d.Done(); err != nil {
		return r, err
	}
	return r, nil
}

// DecodePrivateInput RLP-decodes a PrivateInput from its three-element wire
// list: [transaction, content_encryption_key, recipients_list].
func DecodePrivateInput(encoded []byte) (PrivateInput, error) {
	d := rlp.NewDecoder(encoded)
	return rlp.DecodeStruct(d, decodePrivateInputFields)
}

func decodePrivateInputFields(d *rlp.Decoder) (PrivateInput, error) {
	var in PrivateInput
	var err error

	if in.Transaction, err = d.Bytes(); err != nil {
		return in, err
	}
	contentKey, err := d.FixedBytes(16)
	if err != nil {
		return in, err
	}
	copy(in.ContentEncryptionKey[:], contentKey)

	in.Recipients, err = rlp.Vec(d, decodePrivateRecipient)
	if err != nil {
		return in, err
	}
	return in, nil
}

func decodePrivateRecipient(d *rlp.Decoder) (PrivateRecipient, error) {
	var r PrivateRecipient

	publicKey, err := d.FixedBytes(32)
	if err != nil {
		return r, err
	}
	copy(r.PublicKey[:], publicKey)

	ephemeralPrivateKey, err := d.FixedBytes(32)
	if err != nil {
		return r, err
	}
	copy(r.EphemeralPrivateKey[:], ephemeralPrivateKey)

	if err := d.Done(); err != nil {
		return r, err
	}
	return r, nil
}
