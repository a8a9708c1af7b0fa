package vm

import (
	"github.com/coreweave-evm/evmcore/core/types"
	"github.com/coreweave-evm/evmcore/crypto"
)

// memAccount is one account's mutable record inside MemWorldState.
type memAccount struct {
	nonce    uint64
	balance  *Word
	code     []byte
	codeHash types.Hash
	storage  map[types.Hash]types.Hash
}

func newMemAccount() *memAccount {
	return &memAccount{balance: newWord(0), codeHash: types.EmptyCodeHash, storage: make(map[types.Hash]types.Hash)}
}

// MemWorldState is a minimal in-memory WorldState for tests and
// cmd/evmrun: no trie, no persistence, just maps plus an undo journal for
// Snapshot/RevertToSnapshot (§9's recommended approach, mirroring the
// teacher's mockStateDB test double).
type MemWorldState struct {
	accounts map[types.Address]*memAccount
	refund   uint64

	warmAddrs map[types.Address]bool
	warmSlots map[types.Address]map[types.Hash]bool
	destruct  map[types.Address]bool

	journal []func()
}

// NewMemWorldState returns an empty MemWorldState.
func NewMemWorldState() *MemWorldState {
	return &MemWorldState{
		accounts:  make(map[types.Address]*memAccount),
		warmAddrs: make(map[types.Address]bool),
		warmSlots: make(map[types.Address]map[types.Hash]bool),
		destruct:  make(map[types.Address]bool),
	}
}

func (m *MemWorldState) account(addr types.Address) *memAccount {
	a, ok := m.accounts[addr]
	if !ok {
		return nil
	}
	return a
}

func (m *MemWorldState) GetAccount(addr types.Address) (types.Account, bool) {
	a := m.account(addr)
	if a == nil {
		return types.Account{}, false
	}
	return types.Account{Nonce: a.nonce, Balance: new(Word).Set(a.balance), CodeHash: a.codeHash}, true
}

func (m *MemWorldState) GetBalance(addr types.Address) *Word {
	a := m.account(addr)
	if a == nil {
		return newWord(0)
	}
	return new(Word).Set(a.balance)
}

func (m *MemWorldState) GetCode(addr types.Address) []byte {
	a := m.account(addr)
	if a == nil {
		return nil
	}
	return a.code
}

func (m *MemWorldState) GetCodeHash(addr types.Address) types.Hash {
	a := m.account(addr)
	if a == nil {
		return types.Hash{}
	}
	return a.codeHash
}

func (m *MemWorldState) GetStorage(addr types.Address, key types.Hash) types.Hash {
	a := m.account(addr)
	if a == nil {
		return types.Hash{}
	}
	return a.storage[key]
}

func (m *MemWorldState) SetStorage(addr types.Address, key, value types.Hash) {
	a := m.ensure(addr)
	old := a.storage[key]
	m.journal = append(m.journal, func() { a.storage[key] = old })
	a.storage[key] = value
}

func (m *MemWorldState) SetCode(addr types.Address, code []byte) {
	a := m.ensure(addr)
	oldCode, oldHash := a.code, a.codeHash
	m.journal = append(m.journal, func() { a.code, a.codeHash = oldCode, oldHash })
	a.code = code
	if len(code) == 0 {
		a.codeHash = types.EmptyCodeHash
		return
	}
	a.codeHash = crypto.Keccak256Hash(code)
}

func (m *MemWorldState) SetAccount(addr types.Address, acc types.Account) {
	a := m.ensure(addr)
	oldNonce, oldBalance, oldHash := a.nonce, a.balance, a.codeHash
	m.journal = append(m.journal, func() { a.nonce, a.balance, a.codeHash = oldNonce, oldBalance, oldHash })
	a.nonce = acc.Nonce
	if acc.Balance != nil {
		a.balance = new(Word).Set(acc.Balance)
	}
	a.codeHash = acc.CodeHash
}

func (m *MemWorldState) Transfer(from, to types.Address, value *Word) {
	if value == nil || value.IsZero() {
		m.ensure(to)
		return
	}
	fromAcc := m.ensure(from)
	if fromAcc.balance.Lt(value) {
		panic("vm: MemWorldState.Transfer: insufficient balance")
	}
	toAcc := m.ensure(to)
	oldFrom, oldTo := new(Word).Set(fromAcc.balance), new(Word).Set(toAcc.balance)
	m.journal = append(m.journal, func() { fromAcc.balance, toAcc.balance = oldFrom, oldTo })
	fromAcc.balance = new(Word).Sub(fromAcc.balance, value)
	toAcc.balance = new(Word).Add(toAcc.balance, value)
}

func (m *MemWorldState) InitialiseAccount(addr types.Address) {
	if _, ok := m.accounts[addr]; ok {
		return
	}
	m.ensure(addr)
	m.journal = append(m.journal, func() { delete(m.accounts, addr) })
}

func (m *MemWorldState) ensure(addr types.Address) *memAccount {
	a, ok := m.accounts[addr]
	if !ok {
		a = newMemAccount()
		m.accounts[addr] = a
		m.journal = append(m.journal, func() { delete(m.accounts, addr) })
	}
	return a
}

func (m *MemWorldState) Exist(addr types.Address) bool {
	_, ok := m.accounts[addr]
	return ok
}

func (m *MemWorldState) Empty(addr types.Address) bool {
	a := m.account(addr)
	if a == nil {
		return true
	}
	return a.nonce == 0 && a.balance.IsZero() && len(a.code) == 0
}

func (m *MemWorldState) IncreaseNonce(addr types.Address) {
	a := m.ensure(addr)
	old := a.nonce
	m.journal = append(m.journal, func() { a.nonce = old })
	a.nonce++
}

func (m *MemWorldState) GetNonce(addr types.Address) uint64 {
	a := m.account(addr)
	if a == nil {
		return 0
	}
	return a.nonce
}

func (m *MemWorldState) AddLog(log types.Log) {
	// No transaction-scoped log buffer in this minimal world state;
	// callers that need the emitted logs read ProgramResult.Logs instead.
}

func (m *MemWorldState) AddRefund(gas uint64) {
	old := m.refund
	m.journal = append(m.journal, func() { m.refund = old })
	m.refund += gas
}

func (m *MemWorldState) SubRefund(gas uint64) {
	old := m.refund
	m.journal = append(m.journal, func() { m.refund = old })
	if gas > m.refund {
		m.refund = 0
		return
	}
	m.refund -= gas
}

func (m *MemWorldState) GetRefund() uint64 { return m.refund }

func (m *MemWorldState) AddressInAccessList(addr types.Address) bool {
	return m.warmAddrs[addr]
}

func (m *MemWorldState) SlotInAccessList(addr types.Address, slot types.Hash) (bool, bool) {
	addrWarm := m.warmAddrs[addr]
	slots := m.warmSlots[addr]
	return addrWarm, slots != nil && slots[slot]
}

func (m *MemWorldState) AddAddressToAccessList(addr types.Address) {
	if m.warmAddrs[addr] {
		return
	}
	m.journal = append(m.journal, func() { delete(m.warmAddrs, addr) })
	m.warmAddrs[addr] = true
}

func (m *MemWorldState) AddSlotToAccessList(addr types.Address, slot types.Hash) {
	m.AddAddressToAccessList(addr)
	slots, ok := m.warmSlots[addr]
	if !ok {
		slots = make(map[types.Hash]bool)
		m.warmSlots[addr] = slots
		m.journal = append(m.journal, func() { delete(m.warmSlots, addr) })
	}
	if slots[slot] {
		return
	}
	m.journal = append(m.journal, func() { delete(slots, slot) })
	slots[slot] = true
}

func (m *MemWorldState) MarkForDeletion(addr types.Address) bool {
	if m.destruct[addr] {
		return false
	}
	m.journal = append(m.journal, func() { delete(m.destruct, addr) })
	m.destruct[addr] = true
	return true
}

// Snapshot returns the current journal length as an opaque checkpoint id.
func (m *MemWorldState) Snapshot() int {
	return len(m.journal)
}

// RevertToSnapshot replays every undo closure recorded since id, in
// reverse order, then discards them.
func (m *MemWorldState) RevertToSnapshot(id int) {
	for i := len(m.journal) - 1; i >= id; i-- {
		m.journal[i]()
	}
	m.journal = m.journal[:id]
}
