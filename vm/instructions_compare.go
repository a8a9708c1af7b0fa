package vm

// Comparison and bitwise opcodes (§4.5). Boolean results are rendered as
// the Word 0 or 1, never as a native bool, matching the Yellow Paper.

func opLt(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIszero(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.And(x, y)
	return nil, nil
}

func opOr(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Or(x, y)
	return nil, nil
}

func opXor(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	y, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	y.Xor(x, y)
	return nil, nil
}

func opNot(ps *ProgramState) ([]byte, error) {
	x, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	x.Not(x)
	return nil, nil
}

func opByte(ps *ProgramState) ([]byte, error) {
	th, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	val, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	val.Byte(th)
	return nil, nil
}

func opShl(ps *ProgramState) ([]byte, error) {
	shift, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	value, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if shift.LtUint64(word256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opShr(ps *ProgramState) ([]byte, error) {
	shift, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	value, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if shift.LtUint64(word256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opSar(ps *ProgramState) ([]byte, error) {
	shift, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	value, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if !shift.LtUint64(word256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil, nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return nil, nil
}
