package vm

import "github.com/coreweave-evm/evmcore/core/types"

// MaxCallDepth is the Yellow Paper's hard cap on nested CALL/CREATE frames.
const MaxCallDepth = 1024

// EvmConfig is the recognized-options record (§6) that drives which
// opcodes are enabled, which gas schedule applies, and which EIP toggles
// are active for a given fork. One EvmConfig fully determines a
// JumpTable via BuildJumpTable, replacing the teacher's per-fork
// NewXJumpTable family with a single builder parameterized on flags —
// §1's Non-goals only require one fork's semantics to be authoritative at
// a time.
type EvmConfig struct {
	GasSchedule GasSchedule

	// MaxCodeSize caps deployed contract code length (EIP-170). Nil means
	// unlimited (pre-Spurious-Dragon).
	MaxCodeSize *int
	// MaxInitCodeSize caps CREATE/CREATE2 init code length (EIP-3860).
	// Nil means unlimited.
	MaxInitCodeSize *int

	MaxCallDepth int

	// ExceptionalFailedCodeDeposit: when true (post-Homestead), a CREATE
	// whose init code returns more bytes than the deposit gas can pay for
	// fails as OutOfGas (consuming all init gas) rather than succeeding
	// with empty code.
	ExceptionalFailedCodeDeposit bool

	// EIP150 enables the 63/64 gas-retention rule for CALL-family and
	// CREATE gas forwarding.
	EIP150 bool
	// EIP158 enables empty-account pruning semantics (no account created
	// for a zero-value call to a nonexistent address).
	EIP158 bool
	// EIP160 is the EXP gas-per-exponent-byte repricing. The interpreter
	// does not read this flag: EXP always charges GasSchedule.ExpByte, so
	// pre-EIP-160 pricing is selected by changing ExpByte.
	EIP160 bool
	// EIP2929 enables warm/cold access-list gas metering for SLOAD,
	// BALANCE, EXTCODESIZE/HASH/COPY, and the CALL family.
	EIP2929 bool
	// ChargeSelfDestructForNewAccount enables the EIP-161 surcharge when
	// SELFDESTRUCT forwards balance to a previously nonexistent account.
	ChargeSelfDestructForNewAccount bool

	// OpCodes, when non-nil, restricts the enabled opcode set to exactly
	// this table (older forks lack SHL/SHR/SAR, RETURNDATA*, STATICCALL,
	// CREATE2, etc.). Nil means "every opcode this module defines".
	OpCodes map[OpCode]bool

	// TraceInternalTransactions accumulates an InternalTx record per
	// CALL/CALLCODE/DELEGATECALL/STATICCALL/CREATE/CREATE2/SELFDESTRUCT.
	TraceInternalTransactions bool
}

// DefaultEvmConfig returns the Berlin/London-era configuration this
// module exercises by default: EIP-150/155/158/160/161 and EIP-2929 all
// active, EIP-170 max code size (24576), EIP-3860 max init code size
// (49152), post-Homestead exceptional failed deposit.
func DefaultEvmConfig() EvmConfig {
	maxCode := 24576
	maxInit := 49152
	return EvmConfig{
		GasSchedule:                     DefaultGasSchedule(),
		MaxCodeSize:                     &maxCode,
		MaxInitCodeSize:                 &maxInit,
		MaxCallDepth:                    MaxCallDepth,
		ExceptionalFailedCodeDeposit:    true,
		EIP150:                          true,
		EIP158:                          true,
		EIP160:                          true,
		EIP2929:                         true,
		ChargeSelfDestructForNewAccount: true,
	}
}

// enabled reports whether op is permitted under this config's opcode mask.
func (c EvmConfig) enabled(op OpCode) bool {
	if c.OpCodes == nil {
		return true
	}
	return c.OpCodes[op]
}

// BlockHeader supplies the scalar block-context fields BLOCKHASH/
// COINBASE/TIMESTAMP/NUMBER/DIFFICULTY/GASLIMIT/CHAINID read (§6).
type BlockHeader struct {
	Number     uint64
	Time       uint64
	Coinbase   types.Address
	GasLimit   uint64
	Difficulty *Word
	ChainID    *Word

	// GetHash resolves BLOCKHASH(n) to the hash of block n, or the zero
	// hash if n is out of the last-256-blocks window the opcode may query.
	GetHash func(n uint64) types.Hash
}
