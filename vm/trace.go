package vm

import "github.com/coreweave-evm/evmcore/core/types"

// recordInternalTx appends an InternalTx to ps when tracing is enabled
// (SPEC_FULL.md §3.5). It is a no-op otherwise, so untraced execution pays
// nothing beyond the branch.
func recordInternalTx(ps *ProgramState, kind OpCode, from, to types.Address, value *Word, gas, gasUsed uint64, input, output []byte, err error) {
	if !ps.Env.Config.TraceInternalTransactions {
		return
	}
	tx := InternalTx{
		Kind: kind, From: from, To: to, Value: value,
		Gas: gas, GasUsed: gasUsed, Input: input, Output: output,
		Err: err, Depth: ps.Env.CallDepth,
	}
	ps.InternalTxs = append(ps.InternalTxs, tx)
	logger.Debug("internal tx", "kind", kind.String(), "from", from.Hex(), "to", to.Hex(), "gasUsed", gasUsed, "err", err)
}
