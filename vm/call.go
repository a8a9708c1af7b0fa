package vm

import "github.com/coreweave-evm/evmcore/core/types"

// Call executes the code at to as a fresh context: Owner becomes to,
// Caller becomes parent.Owner, and (if value is non-zero) value moves from
// parent.Owner to to before execution starts (§4.7).
func (evm *EVM) Call(parent ExecEnv, to types.Address, input []byte, gas uint64, value *Word) ([]byte, uint64, error) {
	if parent.CallDepth+1 > parent.Config.MaxCallDepth {
		return nil, gas, ErrMaxCallDepth
	}
	if value != nil && !value.IsZero() && parent.ReadOnly {
		return nil, gas, ErrWriteProtection
	}
	caller := parent.Owner
	if value != nil && !value.IsZero() && !canTransfer(evm.World, caller, value) {
		return nil, gas, ErrInsufficientBalance
	}

	snapshot := evm.World.Snapshot()
	if !evm.World.Exist(to) && precompileAt(to) == nil {
		if evm.Config.EIP158 && (value == nil || value.IsZero()) {
			// EIP-161: a zero-value call to a nonexistent address leaves no trace.
		} else {
			evm.World.InitialiseAccount(to)
		}
	}
	if value != nil && !value.IsZero() {
		evm.World.Transfer(caller, to, value)
	}

	ret, gasUsed, err := evm.execAt(parent, to, to, caller, parent.Origin, input, gas, value, false)
	return evm.finishCall(snapshot, gas, gasUsed, ret, err)
}

// CallCode runs to's code but keeps Owner as the caller's own address
// (storage reads/writes stay local); no value actually moves, matching
// the teacher's note that CALLCODE never touches balances.
func (evm *EVM) CallCode(parent ExecEnv, to types.Address, input []byte, gas uint64, value *Word) ([]byte, uint64, error) {
	if parent.CallDepth+1 > parent.Config.MaxCallDepth {
		return nil, gas, ErrMaxCallDepth
	}
	caller := parent.Owner
	if value != nil && !value.IsZero() && !canTransfer(evm.World, caller, value) {
		return nil, gas, ErrInsufficientBalance
	}
	snapshot := evm.World.Snapshot()
	ret, gasUsed, err := evm.execAt(parent, caller, to, caller, parent.Origin, input, gas, value, false)
	return evm.finishCall(snapshot, gas, gasUsed, ret, err)
}

// DelegateCall runs to's code with Owner, Caller, and Value all inherited
// unchanged from parent — the callee only borrows code, nothing about the
// calling context shifts.
func (evm *EVM) DelegateCall(parent ExecEnv, to types.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	if parent.CallDepth+1 > parent.Config.MaxCallDepth {
		return nil, gas, ErrMaxCallDepth
	}
	snapshot := evm.World.Snapshot()
	ret, gasUsed, err := evm.execAt(parent, parent.Owner, to, parent.Caller, parent.Origin, input, gas, parent.Value, false)
	return evm.finishCall(snapshot, gas, gasUsed, ret, err)
}

// StaticCall runs to's code with Owner becoming to and ReadOnly forced on
// for this frame and every frame it recurses into.
func (evm *EVM) StaticCall(parent ExecEnv, to types.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	if parent.CallDepth+1 > parent.Config.MaxCallDepth {
		return nil, gas, ErrMaxCallDepth
	}
	snapshot := evm.World.Snapshot()
	ret, gasUsed, err := evm.execAt(parent, to, to, parent.Owner, parent.Origin, input, gas, newWord(0), true)
	return evm.finishCall(snapshot, gas, gasUsed, ret, err)
}

// execAt builds a child frame and runs it, or dispatches to a precompile
// when to names one.
func (evm *EVM) execAt(parent ExecEnv, owner, codeAddr, caller, origin types.Address, input []byte, gas uint64, value *Word, readOnly bool) ([]byte, uint64, error) {
	if pc := precompileAt(codeAddr); pc != nil {
		out, cost, err := runPrecompile(pc, input, gas)
		return out, cost, err
	}
	code := evm.World.GetCode(codeAddr)
	childEnv := ExecEnv{
		Owner:     owner,
		Caller:    caller,
		Origin:    origin,
		Program:   NewProgram(code),
		Input:     input,
		Value:     value,
		GasPrice:  parent.GasPrice,
		StartGas:  gas,
		Block:     parent.Block,
		CallDepth: parent.CallDepth + 1,
		Config:    parent.Config,
		ReadOnly:  parent.ReadOnly || readOnly,
	}
	childPS := NewProgramState(evm, childEnv, evm.World, gas)
	ret, err := evm.Run(childPS)
	return ret, gas - childPS.Gas, err
}

// finishCall applies the shared post-call bookkeeping: on any failure
// other than REVERT, the sub-call's snapshot is rolled back and all of its
// gas is forfeit; on REVERT, the snapshot is rolled back but unused gas is
// still returned to the caller; on success, nothing is rolled back.
func (evm *EVM) finishCall(snapshot int, gasGiven, gasUsed uint64, ret []byte, err error) ([]byte, uint64, error) {
	gasLeft := gasGiven - gasUsed
	if err != nil {
		evm.World.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			gasLeft = 0
		}
	}
	return ret, gasLeft, err
}
