package vm

import "github.com/coreweave-evm/evmcore/core/types"

// ExecEnv is the immutable set of per-frame constants a running program
// can observe (§3): the address whose storage this frame mutates, the
// caller, the original transaction sender, the code being run, calldata,
// value, block context, call depth, gas price, and the active config.
type ExecEnv struct {
	Owner    types.Address // ADDRESS; storage reads/writes target this account
	Caller   types.Address // CALLER
	Origin   types.Address // ORIGIN: the EOA that initiated the top-level call
	Program  *Program      // CODESIZE/CODECOPY source
	Input    []byte        // CALLDATA*
	Value    *Word         // CALLVALUE
	GasPrice *Word         // GASPRICE
	StartGas uint64

	Block     BlockHeader
	CallDepth int
	Config    EvmConfig

	// ReadOnly is true inside a STATICCALL sub-frame (or any of its
	// descendants): state-modifying opcodes must raise ErrWriteProtection.
	ReadOnly bool
}
