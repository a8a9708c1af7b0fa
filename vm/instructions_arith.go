package vm

// Arithmetic opcodes (§4.5's "Arithmetic" group). Every operand arrives as
// a *Word already owned by the Stack; the convention throughout this
// package (and the teacher's instructions.go) is to pop the left operand,
// peek the right (which is already sitting where the result belongs), and
// mutate the peeked Word in place — this avoids an extra allocation and
// an extra Stack write per opcode.

func opAdd(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Add(x, y)
	return nil, nil
}

func opMul(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Mul(x, y)
	return nil, nil
}

func opSub(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Sub(x, y)
	return nil, nil
}

func opDiv(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Div(x, y)
	return nil, nil
}

func opSdiv(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.SDiv(x, y)
	return nil, nil
}

func opMod(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Mod(x, y)
	return nil, nil
}

func opSmod(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.SMod(x, y)
	return nil, nil
}

func opAddmod(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	z, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	z.AddMod(x, y, z)
	return nil, nil
}

func opMulmod(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	z, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	z.MulMod(x, y, z)
	return nil, nil
}

func opExp(ps *ProgramState) ([]byte, error) {
	base, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	exponent, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	exponent.Exp(base, exponent)
	return nil, nil
}

// gasExp charges ExpByte per byte of the exponent's big-endian length
// (leading zero bytes excluded). The exponent is read at Back(1), since
// execute has not popped anything yet when dynamicGas runs.
func gasExp(g GasSchedule) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		exponent, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		byteLen := (exponent.BitLen() + 7) / 8
		return uint64(byteLen) * g.ExpByte, nil
	}
}

func opSignExtend(ps *ProgramState) ([]byte, error) {
	back, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	num, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	num.ExtendSign(num, back)
	return nil, nil
}
