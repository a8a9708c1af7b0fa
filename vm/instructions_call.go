package vm

// The CALL family (§4.7). All four push exactly one success/failure Word
// (1 success, 0 failure — including a REVERT, which is not a VM fault)
// and copy whatever output came back into memory at the caller-supplied
// return offset, truncated to the caller-supplied return size.
//
// The gas actually forwarded to the sub-call is computed once, during the
// opcode's dynamicGas step, and stashed in ps.callGasTemp: by the time
// execute runs, that amount has already been debited from ps.Gas as part
// of the opcode's total dynamic cost, so execute cannot recover it by
// looking at ps.Gas again.

func opCall(ps *ProgramState) ([]byte, error) {
	_, err := ps.Stack.Pop() // gas argument; the forwarded amount is ps.callGasTemp
	if err != nil {
		return nil, err
	}
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	value, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}

	addr := wordToAddress(addrW)
	input := ps.Memory.Get(argsOffset.Uint64(), argsSize.Uint64())
	gas := ps.callGasTemp
	if !value.IsZero() {
		gas += ps.Env.Config.GasSchedule.CallStipend
	}

	ret, gasLeft, callErr := ps.EVM.Call(ps.Env, addr, input, gas, value)
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, CALL, ps.Env.Owner, addr, value, gas, gas-gasLeft, input, ret, callErr)
	writeCallResult(ps, retOffset.Uint64(), retSize.Uint64(), ret)
	return nil, pushCallStatus(ps, callErr)
}

func gasCall(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		gasArg, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		addrW, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		value, err := ps.Stack.Back(2)
		if err != nil {
			return 0, err
		}
		addr := wordToAddress(addrW)
		surcharge := accountAccessGas(ps, addr, g.CallCold, g.CallWarm, cfg)
		if !value.IsZero() {
			surcharge += g.CallValue
			if cfg.EIP158 {
				if !ps.World.Exist(addr) || ps.World.Empty(addr) {
					surcharge += g.CallNewAccount
				}
			} else if !ps.World.Exist(addr) {
				surcharge += g.CallNewAccount
			}
		}
		available := ps.Gas - mem - surcharge
		requested := requestedGas(gasArg)
		ps.callGasTemp = callGas(cfg, available, requested)
		return mem + surcharge + ps.callGasTemp, nil
	}
}

func opCallCode(ps *ProgramState) ([]byte, error) {
	_, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	value, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}

	addr := wordToAddress(addrW)
	input := ps.Memory.Get(argsOffset.Uint64(), argsSize.Uint64())
	gas := ps.callGasTemp
	if !value.IsZero() {
		gas += ps.Env.Config.GasSchedule.CallStipend
	}

	ret, gasLeft, callErr := ps.EVM.CallCode(ps.Env, addr, input, gas, value)
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, CALLCODE, ps.Env.Owner, addr, value, gas, gas-gasLeft, input, ret, callErr)
	writeCallResult(ps, retOffset.Uint64(), retSize.Uint64(), ret)
	return nil, pushCallStatus(ps, callErr)
}

func gasCallCode(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		gasArg, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		addrW, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		value, err := ps.Stack.Back(2)
		if err != nil {
			return 0, err
		}
		surcharge := accountAccessGas(ps, wordToAddress(addrW), g.CallCold, g.CallWarm, cfg)
		if !value.IsZero() {
			surcharge += g.CallValue
		}
		available := ps.Gas - mem - surcharge
		ps.callGasTemp = callGas(cfg, available, requestedGas(gasArg))
		return mem + surcharge + ps.callGasTemp, nil
	}
}

func opDelegateCall(ps *ProgramState) ([]byte, error) {
	_, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}

	addr := wordToAddress(addrW)
	input := ps.Memory.Get(argsOffset.Uint64(), argsSize.Uint64())
	gas := ps.callGasTemp

	ret, gasLeft, callErr := ps.EVM.DelegateCall(ps.Env, addr, input, gas)
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, DELEGATECALL, ps.Env.Owner, addr, ps.Env.Value, gas, gas-gasLeft, input, ret, callErr)
	writeCallResult(ps, retOffset.Uint64(), retSize.Uint64(), ret)
	return nil, pushCallStatus(ps, callErr)
}

func gasDelegateCall(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		gasArg, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		addrW, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		surcharge := accountAccessGas(ps, wordToAddress(addrW), g.CallCold, g.CallWarm, cfg)
		available := ps.Gas - mem - surcharge
		ps.callGasTemp = callGas(cfg, available, requestedGas(gasArg))
		return mem + surcharge + ps.callGasTemp, nil
	}
}

func opStaticCall(ps *ProgramState) ([]byte, error) {
	_, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	argsSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retOffset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	retSize, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}

	addr := wordToAddress(addrW)
	input := ps.Memory.Get(argsOffset.Uint64(), argsSize.Uint64())
	gas := ps.callGasTemp

	ret, gasLeft, callErr := ps.EVM.StaticCall(ps.Env, addr, input, gas)
	ps.Gas += gasLeft
	ps.ReturnData = ret
	recordInternalTx(ps, STATICCALL, ps.Env.Owner, addr, nil, gas, gas-gasLeft, input, ret, callErr)
	writeCallResult(ps, retOffset.Uint64(), retSize.Uint64(), ret)
	return nil, pushCallStatus(ps, callErr)
}

func gasStaticCall(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return gasDelegateCall(g, cfg)
}

// requestedGas clamps an oversized gas argument (more than any real block
// gas limit could ever supply) to MaxUint64 rather than truncating the
// Word's low 64 bits, so callGas's 63/64 cap still behaves sanely.
func requestedGas(gasArg *Word) uint64 {
	if !gasArg.IsUint64() {
		return ^uint64(0)
	}
	return gasArg.Uint64()
}

// writeCallResult copies ret into memory at [offset, offset+size), as much
// as fits; a shorter ret zero-pads nothing (bytes past len(ret) are simply
// not written, leaving whatever memory already held there).
func writeCallResult(ps *ProgramState, offset, size uint64, ret []byte) {
	if size == 0 {
		return
	}
	if uint64(len(ret)) < size {
		size = uint64(len(ret))
	}
	if size == 0 {
		return
	}
	ps.Memory.Set(offset, ret[:size])
}

// pushCallStatus pushes 1 only when the sub-call succeeded outright, and 0
// for both a callee REVERT and any other failure. After a REVERT the
// unused gas is still refunded (after any other failure finishCall returns
// none), but the status word itself reports failure.
// The CALL opcode itself never halts the caller frame on a sub-call error.
func pushCallStatus(ps *ProgramState, err error) error {
	if err != nil {
		return ps.Stack.Push(newWord(0))
	}
	return ps.Stack.Push(newWord(1))
}
