package vm

// Block-context opcodes (§4.5's "Block Information" group). All read
// ExecEnv.Block, which the host sets up once per top-level call and which
// every frame in the call tree shares unmodified.

func opBlockHash(ps *ProgramState) ([]byte, error) {
	numW, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	if !numW.IsUint64() || ps.Env.Block.GetHash == nil {
		numW.Clear()
		return nil, nil
	}
	n := numW.Uint64()
	if n+256 < ps.Env.Block.Number || n >= ps.Env.Block.Number {
		numW.Clear()
		return nil, nil
	}
	h := ps.Env.Block.GetHash(n)
	numW.SetBytes(h[:])
	return nil, nil
}

func opCoinbase(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(wordFromAddress(ps.Env.Block.Coinbase))
}

func opTimestamp(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(ps.Env.Block.Time))
}

func opNumber(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(ps.Env.Block.Number))
}

func opDifficulty(ps *ProgramState) ([]byte, error) {
	d := ps.Env.Block.Difficulty
	if d == nil {
		return nil, ps.Stack.Push(newWord(0))
	}
	return nil, ps.Stack.Push(new(Word).Set(d))
}

func opGasLimit(ps *ProgramState) ([]byte, error) {
	return nil, ps.Stack.Push(newWord(ps.Env.Block.GasLimit))
}

func opChainID(ps *ProgramState) ([]byte, error) {
	id := ps.Env.Block.ChainID
	if id == nil {
		return nil, ps.Stack.Push(newWord(0))
	}
	return nil, ps.Stack.Push(new(Word).Set(id))
}
