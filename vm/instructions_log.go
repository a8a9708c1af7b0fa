package vm

// LOGn opcodes (§4.5's "Logging" group). n is baked into the closure at
// jump-table build time (0..4 topics).

func makeLog(n int) executionFunc {
	return func(ps *ProgramState) ([]byte, error) {
		if ps.Env.ReadOnly {
			return nil, ErrWriteProtection
		}
		offset, err := ps.Stack.Pop()
		if err != nil {
			return nil, err
		}
		size, err := ps.Stack.Pop()
		if err != nil {
			return nil, err
		}
		topics := make([]Hash, n)
		for i := 0; i < n; i++ {
			t, err := ps.Stack.Pop()
			if err != nil {
				return nil, err
			}
			topics[i] = wordToHash(t)
		}
		data := ps.Memory.Get(offset.Uint64(), size.Uint64())
		log := Log{Address: ps.Env.Owner, Topics: topics, Data: data}
		ps.World.AddLog(log)
		ps.Logs = append(ps.Logs, log)
		return nil, nil
	}
}

func gasLog(g GasSchedule, n int) dynamicGasFunc {
	return func(ps *ProgramState, memorySize uint64) (uint64, error) {
		if ps.Env.ReadOnly {
			return 0, ErrWriteProtection
		}
		mem, err := gasMemExpansionFor(g, ps, memorySize)
		if err != nil {
			return 0, err
		}
		size, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		if !size.IsUint64() {
			return 0, ErrOutOfGas
		}
		return mem + g.Log + uint64(n)*g.LogTopic + size.Uint64()*g.LogData, nil
	}
}
