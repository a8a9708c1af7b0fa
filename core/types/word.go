package types

import (
	"github.com/holiman/uint256"
)

// Word is the EVM's native 256-bit unsigned integer. All arithmetic wraps
// modulo 2^256; signed interpretations (SDIV, SMOD, SLT, SGT, SAR,
// SIGNEXTEND) are two's-complement views over the same 256 bits.
//
// uint256.Int is a direct dependency already carried by the wider module
// stack; it stores a word as [4]uint64 rather than allocating through
// math/big, which matches the fixed-representation the hot opcode-dispatch
// path wants.
type Word = uint256.Int

// NewWord returns a Word initialized to v.
func NewWord(v uint64) *Word {
	return new(Word).SetUint64(v)
}

// WordFromBytes interprets b as a big-endian integer, left-padding or
// truncating from the left exactly like SetBytes.
func WordFromBytes(b []byte) *Word {
	return new(Word).SetBytes(b)
}

// WordFromAddress zero-extends an Address into a 256-bit Word (used by
// ADDRESS/CALLER/ORIGIN/COINBASE and friends).
func WordFromAddress(a Address) *Word {
	return new(Word).SetBytes(a[:])
}

// WordToAddress returns the low 20 bytes of w as an Address, per the
// Yellow Paper's address-from-word truncation (used by CALL/CREATE target
// resolution and anywhere a stack Word is read back as a destination).
func WordToAddress(w *Word) Address {
	b := w.Bytes32()
	return BytesToAddress(b[12:])
}

// WordFromHash zero/sign-agnostically reinterprets a Hash's 32 bytes as a
// Word (used by the EXTCODEHASH result).
func WordFromHash(h Hash) *Word {
	return new(Word).SetBytes(h[:])
}

// WordToHash renders w as a 32-byte big-endian Hash (the wire shape of a
// storage slot value).
func WordToHash(w *Word) Hash {
	return Hash(w.Bytes32())
}
