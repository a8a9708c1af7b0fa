// Package types defines the core data model shared by the EVM interpreter:
// addresses, hashes, accounts, and log entries.
package types

import (
	"encoding/hex"
	"fmt"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte Keccak256 digest.
type Hash [HashLength]byte

// Address is a 20-byte account identifier, the low 20 bytes of a Word.
type Address [AddressLength]byte

// BytesToHash left-pads b to 32 bytes and returns the resulting Hash.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash decodes a (optionally 0x-prefixed) hex string into a Hash.
func HexToHash(s string) Hash { return BytesToHash(fromHex(s)) }

func (h Hash) Bytes() []byte { return h[:] }
func (h Hash) Hex() string   { return fmt.Sprintf("0x%x", h[:]) }
func (h Hash) String() string { return h.Hex() }
func (h Hash) IsZero() bool  { return h == Hash{} }

// SetBytes sets h from b, left-padding with zeros or truncating from the
// left if b is longer than HashLength (keeping the low-order bytes).
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// BytesToAddress left-pads b to 20 bytes and returns the resulting Address.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress decodes a (optionally 0x-prefixed) hex string into an Address.
func HexToAddress(s string) Address { return BytesToAddress(fromHex(s)) }

func (a Address) Bytes() []byte  { return a[:] }
func (a Address) Hex() string    { return fmt.Sprintf("0x%x", a[:]) }
func (a Address) String() string { return a.Hex() }
func (a Address) IsZero() bool   { return a == Address{} }

// SetBytes sets a from b, left-padding with zeros or truncating from the
// left if b is longer than AddressLength (keeping the low-order bytes).
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Account is the consensus-visible record backing a world-state entry.
// An account is empty iff Nonce == 0 && Balance is zero && code is empty;
// WorldState implementations decide how to represent the zero balance and
// empty code since that storage is outside this package's concern.
type Account struct {
	Nonce    uint64
	Balance  *Word
	CodeHash Hash
}

// IsEmpty reports whether the account meets the EIP-161 emptiness test.
func (a Account) IsEmpty(codeLen int) bool {
	return a.Nonce == 0 && (a.Balance == nil || a.Balance.IsZero()) && codeLen == 0
}

// Log is a single LOGn event emitted by a frame. Logs are append-only:
// never mutated or removed once recorded against a frame's ProgramState.
type Log struct {
	Address Address
	Topics  []Hash
	Data    []byte
}

var (
	// EmptyCodeHash is Keccak256("") = keccak256 of zero-length code,
	// the CodeHash every externally-owned (or freshly created) account
	// carries before any code is deployed to it.
	EmptyCodeHash = HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
)

func fromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}
