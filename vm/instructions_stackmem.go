package vm

// Stack, memory, storage-adjacent scalar, and PC/GAS opcodes that don't
// belong to a larger thematic group.

func opPop(ps *ProgramState) ([]byte, error) {
	_, err := ps.Stack.Pop()
	return nil, err
}

func opMload(ps *ProgramState) ([]byte, error) {
	offW, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	off := offW.Uint64()
	offW.SetBytes(ps.Memory.GetPtr(off, 32))
	return nil, nil
}

func opMstore(ps *ProgramState) ([]byte, error) {
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	val, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	ps.Memory.Set32(offset.Uint64(), val)
	return nil, nil
}

func opMstore8(ps *ProgramState) ([]byte, error) {
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	val, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	ps.Memory.Set(offset.Uint64(), []byte{byte(val.Uint64())})
	return nil, nil
}

func opPc(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(ps.PC))
}

func opMsize(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(uint64(ps.Memory.Len())))
}

func opGas(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(ps.Gas))
}

func opJumpdest(ps *ProgramState) ([]byte, error) {
	return nil, nil
}

// makePush returns the executionFunc for PUSHn: read n immediate bytes
// following the opcode (zero-padded if they run past the code's end),
// push them as a single Word, and advance PC past the immediate data
// (the jump table marks PUSHn as jumps:true so the main loop doesn't
// also add its usual +1).
func makePush(n int) executionFunc {
	return func(ps *ProgramState) ([]byte, error) {
		start := ps.PC + 1
		data := getDataPadded(ps.Env.Program.Code, start, uint64(n))
		if err := ps.Stack.Push(wordFromBytes(data)); err != nil {
			return nil, err
		}
		ps.PC = start + uint64(n)
		return nil, nil
	}
}

func makeDup(n int) executionFunc {
	return func(ps *ProgramState) ([]byte, error) {
		return nil, ps.Stack.Dup(n)
	}
}

func makeSwap(n int) executionFunc {
	return func(ps *ProgramState) ([]byte, error) {
		return nil, ps.Stack.Swap(n)
	}
}
