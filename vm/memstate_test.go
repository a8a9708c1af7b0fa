package vm

import (
	"testing"

	"github.com/coreweave-evm/evmcore/core/types"
)

func TestMemWorldStateSnapshotRevertStorage(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")
	key := types.Hash{1}
	val := types.Hash{2}

	snap := w.Snapshot()
	w.SetStorage(addr, key, val)
	if got := w.GetStorage(addr, key); got != val {
		t.Fatalf("GetStorage after set = %x, want %x", got, val)
	}
	w.RevertToSnapshot(snap)
	if got := w.GetStorage(addr, key); got != (types.Hash{}) {
		t.Fatalf("GetStorage after revert = %x, want zero", got)
	}
}

func TestMemWorldStateSnapshotRevertBalanceAndNonce(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")

	snap := w.Snapshot()
	w.SetAccount(addr, types.Account{Nonce: 1, Balance: newWord(100)})
	w.IncreaseNonce(addr)
	if w.GetNonce(addr) != 2 {
		t.Fatalf("nonce = %d, want 2", w.GetNonce(addr))
	}
	w.RevertToSnapshot(snap)
	if w.Exist(addr) {
		t.Fatalf("account should not exist after revert to pre-creation snapshot")
	}
}

func TestMemWorldStateNestedSnapshots(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")
	key := types.Hash{1}

	outer := w.Snapshot()
	w.SetStorage(addr, key, types.Hash{0xa})
	inner := w.Snapshot()
	w.SetStorage(addr, key, types.Hash{0xb})

	w.RevertToSnapshot(inner)
	if got := w.GetStorage(addr, key); got != (types.Hash{0xa}) {
		t.Fatalf("after inner revert, storage = %x, want 0xa..", got)
	}

	w.RevertToSnapshot(outer)
	if got := w.GetStorage(addr, key); got != (types.Hash{}) {
		t.Fatalf("after outer revert, storage = %x, want zero", got)
	}
}

func TestMemWorldStateTransferRevert(t *testing.T) {
	w := NewMemWorldState()
	from := types.HexToAddress("0x01")
	to := types.HexToAddress("0x02")
	w.SetAccount(from, types.Account{Balance: newWord(100)})

	snap := w.Snapshot()
	w.Transfer(from, to, newWord(40))
	if w.GetBalance(from).Uint64() != 60 || w.GetBalance(to).Uint64() != 40 {
		t.Fatalf("balances after transfer: from=%d to=%d", w.GetBalance(from).Uint64(), w.GetBalance(to).Uint64())
	}
	w.RevertToSnapshot(snap)
	if w.GetBalance(from).Uint64() != 100 {
		t.Fatalf("from balance after revert = %d, want 100", w.GetBalance(from).Uint64())
	}
	if w.GetBalance(to).Uint64() != 0 {
		t.Fatalf("to balance after revert = %d, want 0", w.GetBalance(to).Uint64())
	}
}

func TestMemWorldStateAccessListRevert(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")
	slot := types.Hash{1}

	snap := w.Snapshot()
	w.AddSlotToAccessList(addr, slot)
	if !w.AddressInAccessList(addr) {
		t.Fatalf("address should be warm after AddSlotToAccessList")
	}
	addrWarm, slotWarm := w.SlotInAccessList(addr, slot)
	if !addrWarm || !slotWarm {
		t.Fatalf("address/slot should both be warm")
	}
	w.RevertToSnapshot(snap)
	if w.AddressInAccessList(addr) {
		t.Fatalf("address should be cold again after revert")
	}
}

func TestMemWorldStateRefundRevert(t *testing.T) {
	w := NewMemWorldState()
	snap := w.Snapshot()
	w.AddRefund(100)
	w.SubRefund(30)
	if w.GetRefund() != 70 {
		t.Fatalf("refund = %d, want 70", w.GetRefund())
	}
	w.RevertToSnapshot(snap)
	if w.GetRefund() != 0 {
		t.Fatalf("refund after revert = %d, want 0", w.GetRefund())
	}
}

func TestMemWorldStateSubRefundFloorsAtZero(t *testing.T) {
	w := NewMemWorldState()
	w.AddRefund(10)
	w.SubRefund(50)
	if w.GetRefund() != 0 {
		t.Fatalf("refund = %d, want 0 (must not go negative)", w.GetRefund())
	}
}

func TestMemWorldStateEmpty(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")
	if !w.Empty(addr) {
		t.Fatalf("nonexistent account should be Empty")
	}
	w.SetAccount(addr, types.Account{Nonce: 1})
	if w.Empty(addr) {
		t.Fatalf("account with nonce 1 should not be Empty")
	}
}

func TestMemWorldStateMarkForDeletion(t *testing.T) {
	w := NewMemWorldState()
	addr := types.HexToAddress("0x01")
	if !w.MarkForDeletion(addr) {
		t.Fatalf("first MarkForDeletion should return true")
	}
	if w.MarkForDeletion(addr) {
		t.Fatalf("second MarkForDeletion should return false (already marked)")
	}
}
