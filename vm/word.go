package vm

import (
	"github.com/coreweave-evm/evmcore/core/types"
)

// Word is the EVM's 256-bit machine word. See core/types.Word for the
// rationale behind backing it with uint256.Int instead of math/big.
type Word = types.Word

// Address and Hash are re-exported here so the instruction files don't
// need a separate types. qualifier for the two identifiers they touch
// constantly.
type Address = types.Address
type Hash = types.Hash
type Log = types.Log
type Account = types.Account

var (
	newWord           = types.NewWord
	wordFromBytes     = types.WordFromBytes
	wordFromAddress   = types.WordFromAddress
	wordToAddress     = types.WordToAddress
	wordFromHash      = types.WordFromHash
	wordToHash        = types.WordToHash
)

// word256 is the bit width every arithmetic opcode reduces modulo.
const word256 = 256
