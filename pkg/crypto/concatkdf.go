package crypto

import (
	"encoding/binary"
	"errors"
)

// otherInfo is the fixed OtherInfo input to the Concat-KDF: AlgorithmID
// (4-byte big-endian length prefix + "ECDH-ES+A128KW"), PartyUInfo and
// PartyVInfo (each a 4-byte zero length prefix, no value), and SuppPubInfo
// (4-byte big-endian key length in bits, 128 for AES-128). Exactly 30 bytes:
// 4 + 14 + 4 + 4 + 4.
var otherInfo = buildOtherInfo()

const (
	concatKDFAlgorithmID = "ECDH-ES+A128KW"
	concatKDFKeyLenBits  = 128
)

func buildOtherInfo() []byte {
	algIDLen := make([]byte, 4)
	binary.BigEndian.PutUint32(algIDLen, uint32(len(concatKDFAlgorithmID)))

	partyUInfoLen := make([]byte, 4) // empty PartyUInfo
	partyVInfoLen := make([]byte, 4) // empty PartyVInfo

	suppPubInfo := make([]byte, 4)
	binary.BigEndian.PutUint32(suppPubInfo, concatKDFKeyLenBits)

	out := make([]byte, 0, len(algIDLen)+len(concatKDFAlgorithmID)+len(partyUInfoLen)+len(partyVInfoLen)+len(suppPubInfo))
	out = append(out, algIDLen...)
	out = append(out, []byte(concatKDFAlgorithmID)...)
	out = append(out, partyUInfoLen...)
	out = append(out, partyVInfoLen...)
	out = append(out, suppPubInfo...)
	return out
}

// ErrInvalidConcatKDFKeySize is returned when ConcatKDF's output length
// argument cannot be satisfied by a single SHA-256 round.
var ErrInvalidConcatKDFKeySize = errors.New("crypto: concat-kdf output length must not exceed the hash length")

// ConcatKDF derives a key-encryption key from an X25519 shared secret using
// the NIST SP 800-56A Concat-KDF over SHA-256, with a single round
// (REPS = ceil(keyLen / hashLen) = 1 for a 16-byte output) and the fixed
// OtherInfo above. The output is the leading keyLen bytes of
// SHA256(counter || Z || OtherInfo), counter = 0x00000001.
func ConcatKDF(sharedSecret []byte, keyLen int) ([]byte, error) {
	if keyLen > SHA256LenBytes {
		return nil, ErrInvalidConcatKDFKeySize
	}

	var counter [4]byte
	binary.BigEndian.PutUint32(counter[:], 1)

	h := NewSHA256()
	h.Write(counter[:])
	h.Write(sharedSecret)
	h.Write(otherInfo)
	digest := h.Sum(nil)

	return digest[:keyLen], nil
}

// ConcatKDFKEK is a convenience wrapper deriving the fixed-size (KEKSize)
// key-encryption key used by this protocol.
func ConcatKDFKEK(sharedSecret []byte) ([KEKSize]byte, error) {
	var out [KEKSize]byte
	derived, err := ConcatKDF(sharedSecret, KEKSize)
	if err != nil {
		return out, err
	}
	copy(out[:], derived)
	return out, nil
}
