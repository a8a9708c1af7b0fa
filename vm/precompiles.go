package vm

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //lint:ignore SA1019 still the only widely used Go RIPEMD-160 implementation

	"github.com/coreweave-evm/evmcore/core/types"
)

// precompile is a precompiled contract: a fixed address whose "code" is a
// native function instead of EVM bytecode (§6). gasCost must be computed
// before run executes, matching the interpreter's own check-then-debit
// discipline.
type precompile struct {
	gasCost func(input []byte) uint64
	run     func(input []byte) ([]byte, error)
}

var precompiles = map[types.Address]*precompile{
	types.HexToAddress("0x0000000000000000000000000000000000000001"): {
		gasCost: func([]byte) uint64 { return 3000 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000002"): {
		gasCost: func(input []byte) uint64 { return 60 + 12*wordCount(uint64(len(input))) },
		run: func(input []byte) ([]byte, error) {
			h := sha256.Sum256(input)
			return h[:], nil
		},
	},
	types.HexToAddress("0x0000000000000000000000000000000000000003"): {
		gasCost: func(input []byte) uint64 { return 600 + 120*wordCount(uint64(len(input))) },
		run: func(input []byte) ([]byte, error) {
			h := ripemd160.New()
			h.Write(input)
			sum := h.Sum(nil)
			out := make([]byte, 32)
			copy(out[32-len(sum):], sum)
			return out, nil
		},
	},
	types.HexToAddress("0x0000000000000000000000000000000000000004"): {
		gasCost: func(input []byte) uint64 { return 15 + 3*wordCount(uint64(len(input))) },
		run:     func(input []byte) ([]byte, error) { return append([]byte(nil), input...), nil },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000005"): {
		gasCost: func([]byte) uint64 { return 200 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000006"): {
		gasCost: func([]byte) uint64 { return 150 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000007"): {
		gasCost: func([]byte) uint64 { return 6000 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000008"): {
		gasCost: func([]byte) uint64 { return 45000 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
	types.HexToAddress("0x0000000000000000000000000000000000000009"): {
		gasCost: func([]byte) uint64 { return 0 },
		run:     func([]byte) ([]byte, error) { return nil, ErrPrecompileNotImplemented },
	},
}

// precompileAt returns addr's precompile, or nil if addr is an ordinary
// account address.
func precompileAt(addr types.Address) *precompile {
	return precompiles[addr]
}

// runPrecompile executes pc against input with gas available, returning
// the output and gas consumed, or ErrOutOfGas if gas doesn't cover the
// precompile's fixed cost.
func runPrecompile(pc *precompile, input []byte, gas uint64) ([]byte, uint64, error) {
	cost := pc.gasCost(input)
	if gas < cost {
		return nil, gas, ErrOutOfGas
	}
	out, err := pc.run(input)
	return out, cost, err
}
