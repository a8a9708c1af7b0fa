package vm

import (
	"testing"

	"github.com/coreweave-evm/evmcore/core/types"
)

func newBlockTestState(block BlockHeader) *ProgramState {
	return &ProgramState{
		Stack: NewStack(),
		Env:   ExecEnv{Block: block},
	}
}

func TestBlockHashWithinWindow(t *testing.T) {
	want := types.Hash{0x42}
	ps := newBlockTestState(BlockHeader{
		Number: 300,
		GetHash: func(n uint64) types.Hash {
			if n == 250 {
				return want
			}
			return types.Hash{}
		},
	})
	ps.Stack.Push(newWord(250))
	if _, err := opBlockHash(ps); err != nil {
		t.Fatalf("opBlockHash error: %v", err)
	}
	top, _ := ps.Stack.Peek()
	if wordToHash(top) != want {
		t.Fatalf("BLOCKHASH(250) = %x, want %x", wordToHash(top), want)
	}
}

func TestBlockHashOutsideWindowIsZero(t *testing.T) {
	called := false
	ps := newBlockTestState(BlockHeader{
		Number:  300,
		GetHash: func(n uint64) types.Hash { called = true; return types.Hash{0x1} },
	})
	// current block itself: not in the past-256-blocks window.
	ps.Stack.Push(newWord(300))
	if _, err := opBlockHash(ps); err != nil {
		t.Fatalf("opBlockHash error: %v", err)
	}
	top, _ := ps.Stack.Peek()
	if !top.IsZero() {
		t.Fatalf("BLOCKHASH(current block) = %x, want 0", top.Bytes32())
	}
	if called {
		t.Fatalf("GetHash should not be called for an out-of-window block number")
	}
}

func TestBlockHashTooFarInPastIsZero(t *testing.T) {
	ps := newBlockTestState(BlockHeader{
		Number:  300,
		GetHash: func(n uint64) types.Hash { return types.Hash{0x1} },
	})
	ps.Stack.Push(newWord(40)) // 300-40 = 260 > 256, out of window
	if _, err := opBlockHash(ps); err != nil {
		t.Fatalf("opBlockHash error: %v", err)
	}
	top, _ := ps.Stack.Peek()
	if !top.IsZero() {
		t.Fatalf("BLOCKHASH(too far back) = %x, want 0", top.Bytes32())
	}
}

func TestBlockHashLowerBoundIsInclusive(t *testing.T) {
	want := types.Hash{0x7}
	ps := newBlockTestState(BlockHeader{
		Number: 300,
		GetHash: func(n uint64) types.Hash {
			if n == 44 { // Number-256: the oldest block still in range
				return want
			}
			return types.Hash{}
		},
	})
	ps.Stack.Push(newWord(44))
	if _, err := opBlockHash(ps); err != nil {
		t.Fatalf("opBlockHash error: %v", err)
	}
	top, _ := ps.Stack.Peek()
	if wordToHash(top) != want {
		t.Fatalf("BLOCKHASH(Number-256) = %x, want %x (lower bound is inclusive)", wordToHash(top), want)
	}
}

func TestBlockContextGetters(t *testing.T) {
	coinbase := types.HexToAddress("0xc0ffee")
	ps := newBlockTestState(BlockHeader{
		Number:     7,
		Time:       123456,
		Coinbase:   coinbase,
		GasLimit:   30_000_000,
		Difficulty: newWord(99),
		ChainID:    newWord(1),
	})

	opCoinbase(ps)
	top, _ := ps.Stack.Pop()
	if wordToAddress(top) != coinbase {
		t.Fatalf("COINBASE = %x, want %x", wordToAddress(top), coinbase)
	}

	opTimestamp(ps)
	top, _ = ps.Stack.Pop()
	if top.Uint64() != 123456 {
		t.Fatalf("TIMESTAMP = %d, want 123456", top.Uint64())
	}

	opNumber(ps)
	top, _ = ps.Stack.Pop()
	if top.Uint64() != 7 {
		t.Fatalf("NUMBER = %d, want 7", top.Uint64())
	}

	opDifficulty(ps)
	top, _ = ps.Stack.Pop()
	if top.Uint64() != 99 {
		t.Fatalf("DIFFICULTY = %d, want 99", top.Uint64())
	}

	opGasLimit(ps)
	top, _ = ps.Stack.Pop()
	if top.Uint64() != 30_000_000 {
		t.Fatalf("GASLIMIT = %d, want 30000000", top.Uint64())
	}

	opChainID(ps)
	top, _ = ps.Stack.Pop()
	if top.Uint64() != 1 {
		t.Fatalf("CHAINID = %d, want 1", top.Uint64())
	}
}

func TestDifficultyNilDefaultsToZero(t *testing.T) {
	ps := newBlockTestState(BlockHeader{})
	opDifficulty(ps)
	top, _ := ps.Stack.Pop()
	if !top.IsZero() {
		t.Fatalf("DIFFICULTY with nil field = %d, want 0", top.Uint64())
	}
}
