package vm

import "github.com/coreweave-evm/evmcore/core/types"

// InternalTx is a tracing-only record of a CALL/CALLCODE/DELEGATECALL/
// STATICCALL/CREATE/CREATE2/SELFDESTRUCT; it has no consensus effect and
// is only populated when EvmConfig.TraceInternalTransactions is set
// (SPEC_FULL.md §3.5).
type InternalTx struct {
	Kind     OpCode
	From, To types.Address
	Value    *Word
	Gas      uint64
	GasUsed  uint64
	Input    []byte
	Output   []byte
	Err      error
	Depth    int
}

// ProgramState is the mutable record threaded through a single frame's
// opcode execution (§3). It is created at the start of a call/create
// frame and consumed when the frame halts, producing a ProgramResult that
// merges into the caller (or becomes the top-level result at depth 0).
type ProgramState struct {
	Env   ExecEnv
	World WorldState

	// EVM is the owning interpreter, needed by CALL/CALLCODE/DELEGATECALL/
	// STATICCALL/CREATE/CREATE2/SELFDESTRUCT to recurse into a child frame.
	EVM *EVM

	Gas uint64

	Stack  *Stack
	Memory *Memory
	PC     uint64

	ReturnData []byte

	AddressesToDelete []types.Address
	GasRefund         uint64 // not written by any opcode: SSTORE and SELFDESTRUCT refunds go to World's refund counter (WorldState.GetRefund), so this and ProgramResult.GasRefund stay 0
	Logs              []types.Log
	InternalTxs       []InternalTx

	Halted   bool
	Reverted bool // REVERT was executed: halt, but keep ReturnData and refund unused gas
	Err      error

	// callGasTemp stashes the CALL-family gas-forwarding amount computed
	// by the opcode's dynamicGas step (once that step has already debited
	// it from Gas, it can no longer be recovered from Gas itself) so the
	// opcode's execute step can retrieve it without recomputing against a
	// pool that no longer holds it.
	callGasTemp uint64
}

// NewProgramState creates the initial state for a frame about to execute
// env.Program starting with startGas gas.
func NewProgramState(evm *EVM, env ExecEnv, world WorldState, startGas uint64) *ProgramState {
	return &ProgramState{
		Env:    env,
		World:  world,
		EVM:    evm,
		Gas:    startGas,
		Stack:  NewStack(),
		Memory: NewMemory(),
	}
}

// ProgramResult is what a frame produces at exit (§6): the data a caller
// needs to decide success/failure and to merge this frame's effects.
type ProgramResult struct {
	ReturnData        []byte
	GasRemaining      uint64
	GasRefund         uint64
	AddressesToDelete []types.Address
	Logs              []types.Log
	InternalTxs       []InternalTx
	Err               error
}

// Result packages the terminal ProgramState into a ProgramResult.
func (ps *ProgramState) Result() ProgramResult {
	return ProgramResult{
		ReturnData:        ps.ReturnData,
		GasRemaining:      ps.Gas,
		GasRefund:         ps.GasRefund,
		AddressesToDelete: ps.AddressesToDelete,
		Logs:              ps.Logs,
		InternalTxs:       ps.InternalTxs,
		Err:               ps.Err,
	}
}
