package vm

import (
	"github.com/coreweave-evm/evmcore/core/types"
	"github.com/coreweave-evm/evmcore/internal/log"
)

var logger = log.Default().Module("vm")

// EVM is the top-level interpreter: one instance is built per top-level
// transaction (or per standalone evmrun invocation) and is then reused for
// every CALL/CREATE frame that transaction recurses into (§4.10). It owns
// the JumpTable so every frame executes under the same fork rules.
type EVM struct {
	World  WorldState
	Block  BlockHeader
	Config EvmConfig
	jt     JumpTable
}

// NewEVM builds an interpreter bound to world under cfg, for blocks with
// header block.
func NewEVM(world WorldState, block BlockHeader, cfg EvmConfig) *EVM {
	return &EVM{World: world, Block: block, Config: cfg, jt: BuildJumpTable(cfg)}
}

// Run is the fetch-decode-execute loop (§4.10): for each step it looks up
// the opcode's operation, validates stack depth and write-protection,
// charges constant then dynamic gas (computing required memory size first,
// since dynamic gas for several opcodes depends on it), grows memory, runs
// the opcode, and advances pc unless the opcode already repositioned it.
func (evm *EVM) Run(ps *ProgramState) ([]byte, error) {
	for {
		op := ps.Env.Program.At(ps.PC)
		op_ := evm.jt[op]
		if op_ == nil {
			logger.Debug("invalid opcode", "op", op.String(), "pc", ps.PC, "depth", ps.Env.CallDepth)
			ps.Halted, ps.Err = true, ErrInvalidOpCode
			return nil, ErrInvalidOpCode
		}
		if ps.Stack.Len() < op_.minStack {
			ps.Halted, ps.Err = true, ErrStackUnderflow
			return nil, ErrStackUnderflow
		}
		if ps.Stack.Len() > op_.maxStack {
			ps.Halted, ps.Err = true, ErrStackOverflow
			return nil, ErrStackOverflow
		}
		if op_.writes && ps.Env.ReadOnly {
			ps.Halted, ps.Err = true, ErrWriteProtection
			return nil, ErrWriteProtection
		}

		var memorySize uint64
		if op_.memorySize != nil {
			sz, ok := op_.memorySize(ps.Stack)
			if !ok {
				ps.Halted, ps.Err = true, ErrOutOfGas
				return nil, ErrOutOfGas
			}
			// round up to the next whole word, matching C_mem's word-based cost
			memorySize = wordCount(sz) * 32
		}

		if op_.constantGas > 0 {
			if ps.Gas < op_.constantGas {
				ps.Halted, ps.Err = true, ErrOutOfGas
				return nil, ErrOutOfGas
			}
			ps.Gas -= op_.constantGas
		}
		if op_.dynamicGas != nil {
			dgas, err := op_.dynamicGas(ps, memorySize)
			if err != nil {
				ps.Halted, ps.Err = true, err
				return nil, err
			}
			if ps.Gas < dgas {
				ps.Halted, ps.Err = true, ErrOutOfGas
				return nil, ErrOutOfGas
			}
			ps.Gas -= dgas
		}
		if memorySize > uint64(ps.Memory.Len()) {
			ps.Memory.Resize(memorySize)
		}

		ret, err := op_.execute(ps)
		if err != nil {
			ps.Halted, ps.Err = true, err
			if err == ErrExecutionReverted {
				ps.Reverted = true
				ps.ReturnData = ret
			}
			return ret, err
		}
		if op_.halts {
			ps.Halted = true
			ps.ReturnData = ret
			return ret, nil
		}
		if !op_.jumps {
			ps.PC++
		}
	}
}

// callGas applies EIP-150's 63/64 retention rule: at most floor(available -
// available/64) may be forwarded to a sub-call, and never more than the
// caller actually requested.
func callGas(cfg EvmConfig, available, requested uint64) uint64 {
	if cfg.EIP150 {
		capped := available - available/cfg.GasSchedule.CallGasRetentionDivisor
		if requested > capped {
			return capped
		}
	}
	return requested
}

// canTransfer reports whether addr's balance covers value.
func canTransfer(world WorldState, addr types.Address, value *Word) bool {
	return !world.GetBalance(addr).Lt(value)
}
