package vm

import (
	"bytes"
	"testing"

	"github.com/coreweave-evm/evmcore/core/types"
)

func newLogTestState(readOnly bool) *ProgramState {
	m := NewMemory()
	m.Resize(32)
	m.Set(0, []byte("hello"))
	return &ProgramState{
		Stack:  NewStack(),
		Memory: m,
		World:  NewMemWorldState(),
		Env:    ExecEnv{Owner: types.HexToAddress("0xaa"), ReadOnly: readOnly},
	}
}

func TestLog0(t *testing.T) {
	ps := newLogTestState(false)
	ps.Stack.Push(newWord(5))  // size
	ps.Stack.Push(newWord(0))  // offset
	if _, err := makeLog(0)(ps); err != nil {
		t.Fatalf("LOG0 error: %v", err)
	}
	if len(ps.Logs) != 1 {
		t.Fatalf("Logs len = %d, want 1", len(ps.Logs))
	}
	log := ps.Logs[0]
	if log.Address != ps.Env.Owner {
		t.Fatalf("log address = %x, want owner %x", log.Address, ps.Env.Owner)
	}
	if len(log.Topics) != 0 {
		t.Fatalf("LOG0 should have 0 topics, got %d", len(log.Topics))
	}
	if !bytes.Equal(log.Data, []byte("hello")) {
		t.Fatalf("log data = %q, want %q", log.Data, "hello")
	}
}

func TestLog2TopicOrder(t *testing.T) {
	ps := newLogTestState(false)
	topicB := types.Hash{0xb}
	topicA := types.Hash{0xa}
	ps.Stack.Push(wordFromHash(topicB)) // second topic pushed first (deepest)
	ps.Stack.Push(wordFromHash(topicA)) // first topic, popped right after offset and size
	ps.Stack.Push(newWord(5))           // size
	ps.Stack.Push(newWord(0))           // offset, on top
	if _, err := makeLog(2)(ps); err != nil {
		t.Fatalf("LOG2 error: %v", err)
	}
	log := ps.Logs[0]
	if len(log.Topics) != 2 {
		t.Fatalf("topics len = %d, want 2", len(log.Topics))
	}
	if log.Topics[0] != topicA || log.Topics[1] != topicB {
		t.Fatalf("topics = %v, want [%x %x]", log.Topics, topicA, topicB)
	}
}

func TestLogRejectedInStaticCall(t *testing.T) {
	ps := newLogTestState(true)
	ps.Stack.Push(newWord(5))
	ps.Stack.Push(newWord(0))
	_, err := makeLog(0)(ps)
	if err != ErrWriteProtection {
		t.Fatalf("LOG in static context: err = %v, want ErrWriteProtection", err)
	}
}

func TestGasLogChargesPerTopicAndByte(t *testing.T) {
	g := DefaultGasSchedule()
	ps := newLogTestState(false)
	ps.Stack.Push(newWord(10)) // size
	ps.Stack.Push(newWord(0))  // offset
	fn := gasLog(g, 1)
	gas, err := fn(ps, 32)
	if err != nil {
		t.Fatalf("gasLog error: %v", err)
	}
	want := g.Log + 1*g.LogTopic + 10*g.LogData
	if gas != want {
		t.Fatalf("gasLog = %d, want %d", gas, want)
	}
}

func TestGasLogRejectedInStaticCall(t *testing.T) {
	g := DefaultGasSchedule()
	ps := newLogTestState(true)
	ps.Stack.Push(newWord(10))
	ps.Stack.Push(newWord(0))
	_, err := gasLog(g, 0)(ps, 32)
	if err != ErrWriteProtection {
		t.Fatalf("gasLog in static context: err = %v, want ErrWriteProtection", err)
	}
}
