package vm

import "errors"

// Error taxonomy (§7). Every member halts the frame that raised it; none
// unwind across frames — the calling frame inspects ProgramResult.Err and
// pushes 0/1 accordingly (§7's propagation policy).
var (
	ErrOutOfGas              = errors.New("out of gas")
	ErrStackOverflow         = errors.New("stack overflow")
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrInvalidJump           = errors.New("invalid jump destination")
	ErrInvalidOpCode         = errors.New("invalid opcode")
	ErrWriteProtection       = errors.New("write protection")
	ErrExecutionReverted     = errors.New("execution reverted")
	ErrMaxCallDepth          = errors.New("max call depth exceeded")
	ErrInsufficientBalance   = errors.New("insufficient balance for transfer")
	ErrReturnDataOutOfBounds = errors.New("return data out of bounds")
	ErrMaxCodeSizeExceeded   = errors.New("max code size exceeded")
	ErrMaxInitCodeSizeExceeded = errors.New("max init code size exceeded")
	ErrContractAddressCollision = errors.New("contract address collision")
	ErrPrecompileNotImplemented = errors.New("precompile algorithm not implemented")
	ErrNoWorldState          = errors.New("no world state bound to this EVM")
)
