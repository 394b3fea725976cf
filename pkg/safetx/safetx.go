// Package safetx decodes a Safe smart-account transaction from its RLP
// encoding and reconstructs its EIP-712 struct hash.
package safetx

import (
	"github.com/safe-research/safe-txe-verifier/pkg/crypto"
	"github.com/safe-research/safe-txe-verifier/pkg/rlp"
)

// typeHash is the fixed EIP-712 TypeHash for the Safe transaction struct.
var typeHash = [32]byte{
	0xbb, 0x83, 0x10, 0xd4, 0x86, 0x36, 0x8d, 0xb6, 0xbd, 0x6f, 0x84, 0x94, 0x02, 0xfd, 0xd7, 0x3a,
	0xd5, 0x3d, 0x31, 0x6b, 0x5a, 0x4b, 0x26, 0x44, 0xad, 0x6e, 0xfe, 0x0f, 0x94, 0x12, 0x86, 0xd8,
}

// Operation is the Safe transaction's call type.
type Operation bool

const (
	// Call is a regular CALL (the all-zero EVM word).
	Call Operation = false
	// Delegatecall is a DELEGATECALL (the EVM word with value 1).
	Delegatecall Operation = true
)

// asWord returns the operation encoded as a 32-byte EVM word.
func (op Operation) asWord() [32]byte {
	var word [32]byte
	if op == Delegatecall {
		word[31] = 1
	}
	return word
}

// Transaction is a decoded Safe smart-account transaction.
type Transaction struct {
	To             [20]byte
	Value          [32]byte
	Data           []byte
	Operation      Operation
	SafeTxGas      [32]byte
	BaseGas        [32]byte
	GasPrice       [32]byte
	GasToken       [20]byte
	RefundReceiver [20]byte
}

// Decode RLP-decodes a Safe transaction from its nine-element list encoding.
func Decode(encoded []byte) (Transaction, error) {
	d := rlp.NewDecoder(encoded)
	return rlp.DecodeStruct(d, decodeFields)
}

func decodeFields(d *rlp.Decoder) (Transaction, error) {
	var tx Transaction
	var err error

	if tx.To, err = d.Address(); err != nil {
		return tx, err
	}
	if tx.Value, err = d.Uint(); err != nil {
		return tx, err
	}
	if tx.Data, err = d.Bytes(); err != nil {
		return tx, err
	}
	delegatecall, err := d.Bool()
	if err != nil {
		return tx, err
	}
	tx.Operation = Operation(delegatecall)
	if tx.SafeTxGas, err = d.Uint(); err != nil {
		return tx, err
	}
	if tx.BaseGas, err = d.Uint(); err != nil {
		return tx, err
	}
	if tx.GasPrice, err = d.Uint(); err != nil {
		return tx, err
	}
	if tx.GasToken, err = d.Address(); err != nil {
		return tx, err
	}
	if tx.RefundReceiver, err = d.Address(); err != nil {
		return tx, err
	}
	return tx, nil
}

// StructHash computes the EIP-712 struct hash of the transaction for the
// given Safe account nonce. The preimage is eleven 32-byte words (352
// bytes): the TypeHash, the address fields left-padded into words, the
// value, the Keccak-256 digest of the call data, the operation word, the
// three gas parameters, and the nonce, all hashed with Keccak-256.
func (tx Transaction) StructHash(nonce [32]byte) [32]byte {
	dataHash := crypto.Keccak256(tx.Data)

	h := crypto.NewKeccak256()
	h.Write(typeHash[:])
	h.Write(addressToWord(tx.To))
	h.Write(tx.Value[:])
	h.Write(dataHash[:])
	opWord := tx.Operation.asWord()
	h.Write(opWord[:])
	h.Write(tx.SafeTxGas[:])
	h.Write(tx.BaseGas[:])
	h.Write(tx.GasPrice[:])
	h.Write(addressToWord(tx.GasToken))
	h.Write(addressToWord(tx.RefundReceiver))
	h.Write(nonce[:])

	var out [32]byte
	h.Sum(out[:0])
	return out
}

func addressToWord(address [20]byte) []byte {
	var word [32]byte
	copy(word[12:], address[:])
	return word[:]
}
