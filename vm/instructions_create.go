package vm

import "github.com/coreweave-evm/evmcore/core/types"

// CREATE and CREATE2 (§4.8). Both push the new contract's address
// (zero-extended to a Word) on success, or 0 on failure — a failed create
// never halts the creator's own frame, matching the CALL family's
// failure-reporting convention.

func opCreate(ps *ProgramState) ([]byte, error) {
	value, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	size, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	initCode := ps.Memory.Get(offset.Uint64(), size.Uint64())
	gas := callGas(ps.Env.Config, ps.Gas, ps.Gas) // CREATE forwards all-but-1/64th; there is no explicit gas operand
	ps.Gas -= gas

	addr, ret, gasLeft, createErr := ps.EVM.Create(ps.Env, initCode, gas, value, createLegacy, types.Hash{})
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, CREATE, ps.Env.Owner, addr, value, gas, gas-gasLeft, initCode, ret, createErr)
	return nil, pushCreateResult(ps, addr, createErr)
}

func gasCreate(g GasSchedule) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		return gasMemExpansionFor(g, ps, memorySize)
	}
}

func opCreate2(ps *ProgramState) ([]byte, error) {
	value, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	size, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	saltW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	initCode := ps.Memory.Get(offset.Uint64(), size.Uint64())
	salt := wordToHash(saltW)
	gas := callGas(ps.Env.Config, ps.Gas, ps.Gas)
	ps.Gas -= gas

	addr, ret, gasLeft, createErr := ps.EVM.Create(ps.Env, initCode, gas, value, create2, salt)
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, CREATE2, ps.Env.Owner, addr, value, gas, gas-gasLeft, initCode, ret, createErr)
	return nil, pushCreateResult(ps, addr, createErr)
}

// gasCreate2 additionally charges Sha3Word per word of init code, since
// CREATE2 must hash it to derive the target address before any bytecode
// of the new contract ever runs.
func gasCreate2(g GasSchedule) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		size, err := ps.Stack.Back(2)
		if err != nil {
			return 0, err
		}
		if !size.IsUint64() {
			return 0, ErrOutOfGas
		}
		return mem + wordCount(size.Uint64())*g.Sha3Word, nil
	}
}

func pushCreateResult(ps *ProgramState, addr types.Address, err error) error {
	if err != nil {
		return ps.Stack.Push(newWord(0))
	}
	return ps.Stack.Push(wordFromAddress(addr))
}
