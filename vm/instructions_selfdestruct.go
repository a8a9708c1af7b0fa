package vm

// SELFDESTRUCT (§4.9): transfers the executing account's entire balance to
// a beneficiary and schedules the account for end-of-transaction deletion.
// Post-EIP-3529 there is no longer a gas refund for the first destruction
// in a transaction (GasSchedule.SelfdestructRefund is 0 in the default
// schedule), but the one-time bookkeeping is still exercised in case a
// caller configures an older schedule.

func opSelfdestruct(ps *ProgramState) ([]byte, error) {
	if ps.Env.ReadOnly {
		return nil, ErrWriteProtection
	}
	beneficiaryW, err := ps.Stack.Pop()
	if err != nil {
		return nil, err
	}
	beneficiary := wordToAddress(beneficiaryW)

	balance := ps.World.GetBalance(ps.Env.Owner)
	if !balance.IsZero() {
		ps.World.Transfer(ps.Env.Owner, beneficiary, balance)
	}
	if firstTime := ps.World.MarkForDeletion(ps.Env.Owner); firstTime {
		ps.AddressesToDelete = append(ps.AddressesToDelete, ps.Env.Owner)
		if ps.Env.Config.GasSchedule.SelfdestructRefund > 0 {
			ps.World.AddRefund(ps.Env.Config.GasSchedule.SelfdestructRefund)
		}
	}
	recordInternalTx(ps, SELFDESTRUCT, ps.Env.Owner, beneficiary, balance, ps.Gas, 0, nil, nil, nil)
	return nil, nil
}

func gasSelfdestruct(g GasSchedule, cfg EvmConfig) dynamicGasFunc {
	return func(ps *ProgramState, _ uint64) (uint64, error) {
		if ps.Env.ReadOnly {
			return 0, ErrWriteProtection
		}
		beneficiaryW, err := ps.Stack.Back(0)
		if err != nil {
			return 0, err
		}
		beneficiary := wordToAddress(beneficiaryW)
		var cost uint64
		if cfg.EIP2929 && !ps.World.AddressInAccessList(beneficiary) {
			ps.World.AddAddressToAccessList(beneficiary)
			cost += g.CallCold // EIP-2929's cold-account-access constant; shared across BALANCE/EXTCODE*/CALL/SELFDESTRUCT
		}
		if cfg.ChargeSelfDestructForNewAccount {
			balance := ps.World.GetBalance(ps.Env.Owner)
			if !balance.IsZero() && !ps.World.Exist(beneficiary) {
				cost += g.SelfdestructNewAccount
			}
		}
		return cost, nil
	}
}
