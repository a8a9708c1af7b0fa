// Package crypto provides the hashing and address-derivation primitives
// the interpreter needs: Keccak256 (code hashing, SHA3 opcode, CREATE/
// CREATE2 address derivation) and the RLP encoding CREATE needs for its
// address formula. Elliptic-curve and pairing primitives are deliberately
// absent — those back precompiled-contract algorithms, which are out of
// scope for this module (see vm/precompiles.go).
package crypto

import (
	"golang.org/x/crypto/sha3"

	"github.com/coreweave-evm/evmcore/core/types"
)

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Keccak256Hash is Keccak256 with the result packaged as a types.Hash.
func Keccak256Hash(data ...[]byte) types.Hash {
	return types.BytesToHash(Keccak256(data...))
}

// CreateAddress computes the address of a contract created with CREATE:
// the low 20 bytes of keccak256(rlp([sender, nonce])).
func CreateAddress(sender types.Address, nonce uint64) types.Address {
	payload := append(rlpBytes(sender[:]), rlpUint(nonce)...)
	return types.BytesToAddress(Keccak256(rlpList(payload))[12:])
}

// CreateAddress2 computes the address of a contract created with CREATE2:
// the low 20 bytes of keccak256(0xff ++ sender ++ salt ++ keccak256(initCode)).
func CreateAddress2(sender types.Address, salt types.Hash, initCodeHash []byte) types.Address {
	data := make([]byte, 0, 1+20+32+32)
	data = append(data, 0xff)
	data = append(data, sender[:]...)
	data = append(data, salt[:]...)
	data = append(data, initCodeHash...)
	return types.BytesToAddress(Keccak256(data)[12:])
}

// rlpBytes RLP-encodes a byte string (used only for the CREATE address
// formula; this is not a general-purpose RLP encoder and intentionally
// stays out of the vm package's dependency surface per §1's scope note
// that RLP encoding belongs to the transaction/networking layer).
func rlpBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	if len(b) < 56 {
		return append([]byte{byte(0x80 + len(b))}, b...)
	}
	lb := minBigEndian(uint64(len(b)))
	return append(append([]byte{byte(0xb7 + len(lb))}, lb...), b...)
}

func rlpUint(v uint64) []byte {
	if v == 0 {
		return []byte{0x80}
	}
	if v < 128 {
		return []byte{byte(v)}
	}
	b := minBigEndian(v)
	return append([]byte{byte(0x80 + len(b))}, b...)
}

func rlpList(payload []byte) []byte {
	if len(payload) < 56 {
		return append([]byte{byte(0xc0 + len(payload))}, payload...)
	}
	lb := minBigEndian(uint64(len(payload)))
	return append(append([]byte{byte(0xf7 + len(lb))}, lb...), payload...)
}

func minBigEndian(v uint64) []byte {
	var buf [8]byte
	n := 0
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
		if buf[i] != 0 {
			n = 8 - i
		}
	}
	return buf[8-n:]
}
