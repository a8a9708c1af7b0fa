package vm

import "github.com/coreweave-evm/evmcore/crypto"

func opSha3(ps *ProgramState) ([]byte, error) {
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	size, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	data := ps.Memory.GetPtr(offset.Uint64(), size.Uint64())
	hash := crypto.Keccak256(data)
	size.SetBytes(hash)
	return nil, nil
}

// gasSha3 charges Sha3Word per 32-byte word of the hashed input, on top of
// the flat Sha3 base already in constantGas.
func gasSha3(g GasSchedule) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		size, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		if !size.IsUint64() {
			return 0, ErrOutOfGas
		}
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		return mem + wordCount(size.Uint64())*g.Sha3Word, nil
	}
}

func memKeccak256(stack *Stack) (uint64, bool) {
	return memRange(stack, 0, 1)
}
