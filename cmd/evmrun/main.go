// Command evmrun loads hex-encoded bytecode, an optional calldata blob, and
// a gas limit, executes it as a single top-level call against an empty
// in-memory world state, and prints the resulting ProgramResult as JSON.
//
// Usage:
//
//	evmrun -code 6001600101 -gas 100000
//	evmrun -code 60003560201c -input 00000000000000000000000000000000000000000000000000000000deadbeef -gas 100000
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/coreweave-evm/evmcore/core/types"
	"github.com/coreweave-evm/evmcore/internal/log"
	"github.com/coreweave-evm/evmcore/vm"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("evmrun", flag.ContinueOnError)

	codeHex := fs.String("code", "", "hex-encoded contract bytecode to run (required)")
	inputHex := fs.String("input", "", "hex-encoded calldata")
	gasLimit := fs.Uint64("gas", 1_000_000, "gas made available to the call")
	valueDec := fs.Uint64("value", 0, "wei value sent with the call")
	caller := fs.String("caller", "0x0000000000000000000000000000000000000a", "hex-encoded sender address")
	to := fs.String("to", "0x00000000000000000000000000000000000bee", "hex-encoded contract address")
	loglevel := fs.String("loglevel", "info", "log verbosity: debug, info, warn, error")
	trace := fs.Bool("trace", false, "record internal CALL/CREATE/SELFDESTRUCT traces")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Printf("evmrun %s (commit %s)\n", version, commit)
		return 0
	}
	if *codeHex == "" {
		fmt.Fprintln(os.Stderr, "evmrun: -code is required")
		return 2
	}

	log.SetDefault(log.New(parseLevel(*loglevel)))

	code, err := hex.DecodeString(trim0x(*codeHex))
	if err != nil {
		fmt.Fprintf(os.Stderr, "evmrun: bad -code: %v\n", err)
		return 2
	}
	input, err := hex.DecodeString(trim0x(*inputHex))
	if err != nil {
		fmt.Fprintf(os.Stderr, "evmrun: bad -input: %v\n", err)
		return 2
	}

	world := vm.NewMemWorldState()
	toAddr := types.HexToAddress(*to)
	callerAddr := types.HexToAddress(*caller)
	world.SetCode(toAddr, code)
	world.InitialiseAccount(callerAddr)

	cfg := vm.DefaultEvmConfig()
	cfg.TraceInternalTransactions = *trace
	block := vm.BlockHeader{
		GasLimit:   *gasLimit,
		Difficulty: types.NewWord(0),
		ChainID:    types.NewWord(1),
		GetHash:    func(uint64) types.Hash { return types.Hash{} },
	}

	evm := vm.NewEVM(world, block, cfg)
	env := vm.ExecEnv{
		Owner:     toAddr,
		Caller:    callerAddr,
		Origin:    callerAddr,
		Program:   vm.NewProgram(code),
		Input:     input,
		Value:     types.NewWord(*valueDec),
		GasPrice:  types.NewWord(0),
		StartGas:  *gasLimit,
		Block:     block,
		CallDepth: 0,
		Config:    cfg,
	}
	ps := vm.NewProgramState(evm, env, world, *gasLimit)
	ret, runErr := evm.Run(ps)
	result := ps.Result()
	result.ReturnData = ret

	enc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "evmrun: %v\n", err)
		return 1
	}
	fmt.Println(string(enc))
	if runErr != nil && runErr != vm.ErrExecutionReverted {
		return 1
	}
	return 0
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
