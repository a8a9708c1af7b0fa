package vm

import (
	"github.com/coreweave-evm/evmcore/core/types"
	"github.com/coreweave-evm/evmcore/crypto"
)

// createKind distinguishes CREATE's sender+nonce address formula from
// CREATE2's sender+salt+init-code-hash formula (§4.8); everything else
// about the two opcodes is identical.
type createKind int

const (
	createLegacy createKind = iota
	create2
)

// Create executes init code as a contract-creation frame: it derives the
// new address, checks for an EIP-684 collision, rejects init code longer
// than MaxInitCodeSize (no per-word init-code charge is made), deducts the
// code-deposit cost, and on success installs the returned bytes as the
// new account's code (§4.8).
func (evm *EVM) Create(parent ExecEnv, initCode []byte, gas uint64, value *Word, kind createKind, salt types.Hash) (types.Address, []byte, uint64, error) {
	if parent.CallDepth+1 > parent.Config.MaxCallDepth {
		return types.Address{}, nil, gas, ErrMaxCallDepth
	}
	if parent.ReadOnly {
		return types.Address{}, nil, gas, ErrWriteProtection
	}
	if value != nil && !value.IsZero() && !canTransfer(evm.World, parent.Owner, value) {
		return types.Address{}, nil, gas, ErrInsufficientBalance
	}
	if cfg := parent.Config; cfg.MaxInitCodeSize != nil && len(initCode) > *cfg.MaxInitCodeSize {
		return types.Address{}, nil, gas, ErrMaxInitCodeSizeExceeded
	}

	senderNonce := evm.World.GetNonce(parent.Owner)
	evm.World.IncreaseNonce(parent.Owner)

	var newAddr types.Address
	if kind == create2 {
		newAddr = crypto.CreateAddress2(parent.Owner, salt, crypto.Keccak256(initCode))
	} else {
		newAddr = crypto.CreateAddress(parent.Owner, senderNonce)
	}

	// EIP-684: refuse to overwrite an address that already holds code or
	// has a non-zero nonce (an earlier CREATE2 landed here, or a prior
	// transaction already deployed here deterministically).
	if evm.World.Exist(newAddr) {
		existing, _ := evm.World.GetAccount(newAddr)
		if existing.Nonce != 0 || len(evm.World.GetCode(newAddr)) != 0 {
			return newAddr, nil, gas, ErrContractAddressCollision
		}
	}

	snapshot := evm.World.Snapshot()
	evm.World.InitialiseAccount(newAddr)
	if parent.Config.EIP158 {
		evm.World.IncreaseNonce(newAddr) // the new contract's own nonce starts at 1 post-Spurious-Dragon
	}
	if value != nil && !value.IsZero() {
		evm.World.Transfer(parent.Owner, newAddr, value)
	}

	childEnv := ExecEnv{
		Owner:     newAddr,
		Caller:    parent.Owner,
		Origin:    parent.Origin,
		Program:   NewProgram(initCode),
		Input:     nil,
		Value:     value,
		GasPrice:  parent.GasPrice,
		StartGas:  gas,
		Block:     parent.Block,
		CallDepth: parent.CallDepth + 1,
		Config:    parent.Config,
		ReadOnly:  false,
	}
	childPS := NewProgramState(evm, childEnv, evm.World, gas)
	code, err := evm.Run(childPS)

	if err == nil {
		if cfg := parent.Config; cfg.MaxCodeSize != nil && len(code) > *cfg.MaxCodeSize {
			err = ErrMaxCodeSizeExceeded
		}
	}
	if err == nil {
		depositCost := uint64(len(code)) * parent.Config.GasSchedule.CodeDeposit
		if childPS.Gas >= depositCost {
			childPS.Gas -= depositCost
			evm.World.SetCode(newAddr, code)
		} else if parent.Config.ExceptionalFailedCodeDeposit {
			err = ErrOutOfGas
		} else {
			code = nil
		}
	}
	gasLeft := childPS.Gas

	if err != nil {
		evm.World.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			gasLeft = 0
		}
		return newAddr, code, gasLeft, err
	}
	return newAddr, nil, gasLeft, nil
}
