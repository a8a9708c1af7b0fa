package vm

import "github.com/coreweave-evm/evmcore/core/types"

// WorldState is the external collaborator the interpreter consumes (§6).
// Transaction orchestration, the Merkle-Patricia trie, networking, and
// RLP are all out of scope (§1) — WorldState is the narrow key/value and
// account-mutation surface this package actually needs from whatever
// backs it.
//
// Recursion into CALL/CREATE needs cheap snapshot + rollback. §9
// recommends a journal of mutations with checkpoint/commit/discard
// primitives rather than a deep copy per frame; Snapshot/RevertToSnapshot
// below is that seam. memstate.go ships an in-memory implementation built
// exactly that way, for tests and for cmd/evmrun.
type WorldState interface {
	GetAccount(addr types.Address) (types.Account, bool)
	GetBalance(addr types.Address) *Word
	GetCode(addr types.Address) []byte
	GetCodeHash(addr types.Address) types.Hash
	GetStorage(addr types.Address, key types.Hash) types.Hash

	SetStorage(addr types.Address, key, value types.Hash)
	SetCode(addr types.Address, code []byte)
	SetAccount(addr types.Address, acc types.Account)

	// Transfer moves value from 'from' to 'to', creating 'to' if absent.
	// Implementations must not allow a negative resulting balance; the
	// interpreter always pre-checks the sender's balance itself, but a
	// conforming WorldState should treat an impossible transfer as a
	// programming error, not a silent no-op.
	Transfer(from, to types.Address, value *Word)

	// InitialiseAccount creates an empty account at addr if one does not
	// already exist (used when CALL/CREATE target a fresh address).
	InitialiseAccount(addr types.Address)

	// Exist reports whether any account record exists at addr (even an
	// empty one), distinct from Empty below (EIP-161).
	Exist(addr types.Address) bool
	// Empty reports the EIP-161 emptiness test: nonce 0, zero balance,
	// no code.
	Empty(addr types.Address) bool

	IncreaseNonce(addr types.Address)
	GetNonce(addr types.Address) uint64

	AddLog(log types.Log)

	AddRefund(gas uint64)
	SubRefund(gas uint64)
	GetRefund() uint64

	// AddressInAccessList/SlotInAccessList/AddAddressToAccessList/
	// AddSlotToAccessList implement EIP-2929 warm/cold tracking
	// (SPEC_FULL.md §3.1); a WorldState that never marks anything warm
	// makes every access cold, which is conformant but not gas-optimal.
	AddressInAccessList(addr types.Address) bool
	SlotInAccessList(addr types.Address, slot types.Hash) (addrWarm, slotWarm bool)
	AddAddressToAccessList(addr types.Address)
	AddSlotToAccessList(addr types.Address, slot types.Hash)

	// MarkForDeletion schedules addr for end-of-transaction deletion
	// (SELFDESTRUCT); returns true the first time addr is marked in this
	// transaction (used to gate the one-time R_selfdestruct refund).
	MarkForDeletion(addr types.Address) (firstTime bool)

	// Snapshot/RevertToSnapshot bound a frame's mutations so a failed or
	// reverted CALL/CREATE can be undone without affecting the caller's
	// view of the world.
	Snapshot() int
	RevertToSnapshot(id int)
}
