package vm

// Environment and calldata/code opcodes (§4.5's "Environment" group).

func opAddress(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(wordFromAddress(ps.Env.Owner))
}

func opBalance(ps *ProgramState) ([]byte, error) {
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addr := wordToAddress(addrW)
	return nil, ps.Stack.Push(ps.World.GetBalance(addr))
}

// gasBalance implements EIP-2929 cold/warm account-access pricing: the
// first touch of an address in a transaction costs BalanceCold, every
// later touch costs BalanceWarm.
func gasBalance(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		addrW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		return accountAccessGas(ps, wordToAddress(addrW), g.BalanceCold, g.BalanceWarm, cfg), nil
	}
}

func opOrigin(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(wordFromAddress(ps.Env.Origin))
}

func opCaller(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(wordFromAddress(ps.Env.Caller))
}

func opCallValue(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(new(Word).Set(ps.Env.Value))
}

func opCallDataLoad(ps *ProgramState) ([]byte, error) {
	offW, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	var off uint64
	if offW.IsUint64() {
		off = offW.Uint64()
	} else {
		off = uint64(len(ps.Env.Input)) // past the end either way
	}
	offW.SetBytes(getDataPadded(ps.Env.Input, off, 32))
	return nil, nil
}

func opCallDataSize(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(uint64(len(ps.Env.Input))))
}

func opCallDataCopy(ps *ProgramState) ([]byte, error) {
	destOffset, err := ps.Stack.Pop()
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
	off := wordOrLen(offset, len(ps.Env.Input))
	data := getDataPadded(ps.Env.Input, off, size.Uint64())
	ps.Memory.Set(destOffset.Uint64(), data)
	return nil, nil
}

func opCodeSize(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(uint64(ps.Env.Program.Len())))
}

func opCodeCopy(ps *ProgramState) ([]byte, error) {
	destOffset, err := ps.Stack.Pop()
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
	off := wordOrLen(offset, ps.Env.Program.Len())
	data := getDataPadded(ps.Env.Program.Code, off, size.Uint64())
	ps.Memory.Set(destOffset.Uint64(), data)
	return nil, nil
}

func opGasPrice(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(new(Word).Set(ps.Env.GasPrice))
}

func opExtCodeSize(ps *ProgramState) ([]byte, error) {
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addr := wordToAddress(addrW)
	return nil, ps.Stack.Push(newWord(uint64(len(ps.World.GetCode(addr)))))
}

func gasExtcodesize(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		addrW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		return accountAccessGas(ps, wordToAddress(addrW), g.ExtcodesizeCold, g.ExtcodesizeWarm, cfg), nil
	}
}

func opExtCodeCopy(ps *ProgramState) ([]byte, error) {
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	destOffset, err := ps.Stack.Pop()
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
	code := ps.World.GetCode(wordToAddress(addrW))
	off := wordOrLen(offset, len(code))
	data := getDataPadded(code, off, size.Uint64())
	ps.Memory.Set(destOffset.Uint64(), data)
	return nil, nil
}

func gasExtcodecopy(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		size, err := ps.Stack.Back(3)
		if err != nil {
			return 0, err
		}
		if !size.IsUint64() {
			return 0, ErrOutOfGas
		}
		addrW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		access := accountAccessGas(ps, wordToAddress(addrW), g.ExtcodecopyCold, g.ExtcodecopyWarm, cfg)
		return mem + access + wordCount(size.Uint64())*g.Copy, nil
	}
}

func opReturnDataSize(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(uint64(len(ps.ReturnData))))
}

func opReturnDataCopy(ps *ProgramState) ([]byte, error) {
	destOffset, err := ps.Stack.Pop()
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
	if !offset.IsUint64() || !size.IsUint64() {
		return nil, ErrReturnDataOutOfBounds
	}
	off, sz := offset.Uint64(), size.Uint64()
	end := off + sz
	if end < off || end > uint64(len(ps.ReturnData)) {
		return nil, ErrReturnDataOutOfBounds
	}
	ps.Memory.Set(destOffset.Uint64(), ps.ReturnData[off:end])
	return nil, nil
}

func opExtCodeHash(ps *ProgramState) ([]byte, error) {
	addrW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	addr := wordToAddress(addrW)
	if !ps.World.Exist(addr) || ps.World.Empty(addr) {
		return nil, ps.Stack.Push(newWord(0))
	}
	hash := ps.World.GetCodeHash(addr)
	return nil, ps.Stack.Push(wordFromHash(hash))
}

func gasExtcodehash(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		addrW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		return accountAccessGas(ps, wordToAddress(addrW), g.ExtcodehashCold, g.ExtcodehashWarm, cfg), nil
	}
}

// accountAccessGas charges Cold the first time addr is touched in this
// transaction (EIP-2929) and Warm thereafter, marking addr warm as a side
// effect. With EIP2929 disabled, every access costs the warm rate (the
// module's single supported configuration predates no fork without 2929).
func accountAccessGas(ps *ProgramState, addr Address, cold, warm uint64, cfg EvmConfig) uint64 {
	if !cfg.EIP2929 {
		return warm
	}
	if ps.World.AddressInAccessList(addr) {
		return warm
	}
	ps.World.AddAddressToAccessList(addr)
	return cold
}

// wordOrLen clamps an offset Word too large to represent as a valid index
// to past-the-end (so getDataPadded returns an all-zero slice).
func wordOrLen(w *Word, length int) uint64 {
	if !w.IsUint64() {
		return uint64(length)
	}
	return w.Uint64()
}

// getDataPadded returns data[start:start+size], zero-padded on the right
// if the requested range runs past the end of data (CALLDATACOPY/CODECOPY/
// EXTCODECOPY's "infinite zero tail" semantics).
func getDataPadded(data []byte, start, size uint64) []byte {
	out := make([]byte, size)
	if start >= uint64(len(data)) {
		return out
	}
	end := start + size
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	copy(out, data[start:end])
	return out
}
