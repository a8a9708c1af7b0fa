package vm

// Control-flow and halting opcodes (§4.10's halt/jump machinery).

func opStop(ps *ProgramState) ([]byte, error) {
	return nil, nil
}

func opJump(ps *ProgramState) ([]byte, error) {
	dest, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if !dest.IsUint64() || !ps.Env.Program.ValidJumpDest(dest.Uint64()) {
		return nil, ErrInvalidJump
	}
	ps.PC = dest.Uint64()
	return nil, nil
}

func opJumpi(ps *ProgramState) ([]byte, error) {
	dest, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	cond, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if cond.IsZero() {
		ps.PC++
		return nil, nil
	}
	if !dest.IsUint64() || !ps.Env.Program.ValidJumpDest(dest.Uint64()) {
		return nil, ErrInvalidJump
	}
	ps.PC = dest.Uint64()
	return nil, nil
}

func opReturn(ps *ProgramState) ([]byte, error) {
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	size, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	return ps.Memory.Get(offset.Uint64(), size.Uint64()), nil
}

func opRevert(ps *ProgramState) ([]byte, error) {
	offset, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	size, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	return ps.Memory.Get(offset.Uint64(), size.Uint64()), ErrExecutionReverted
}

func opInvalid(ps *ProgramState) ([]byte, error) {
	return nil, ErrInvalidOpCode
}
