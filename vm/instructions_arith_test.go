package vm

import "testing"

// pushStack builds a Stack with vals pushed bottom-to-top (vals[len-1] ends
// up on top), matching how operands are laid out before an opcode runs.
func pushStack(vals ...uint64) *Stack {
	st := NewStack()
	for _, v := range vals {
		st.Push(newWord(v))
	}
	return st
}

// execBinaryOp runs a binary opcode given the two operands in Yellow-Paper
// pop order: a is popped first (so it must sit on top of the stack, pushed
// last), b is popped second. Every binary op here computes "a OP b" (e.g.
// SUB computes a-b, DIV computes a/b), matching opSub/opDiv/etc.'s
// x=Pop() (a), y=Peek() (b) convention.
func execBinaryOp(t *testing.T, fn executionFunc, a, b uint64) *Word {
	t.Helper()
	ps := &ProgramState{Stack: pushStack(b, a)} // push b first (bottom), a last (top)
	if _, err := fn(ps); err != nil {
		t.Fatalf("op error: %v", err)
	}
	top, err := ps.Stack.Peek()
	if err != nil {
		t.Fatalf("peek after op: %v", err)
	}
	return top
}

func TestArithOps(t *testing.T) {
	cases := []struct {
		name string
		fn   executionFunc
		a, b uint64
		want uint64
	}{
		{"ADD", opAdd, 2, 3, 5},
		{"MUL", opMul, 4, 5, 20},
		{"SUB", opSub, 10, 3, 7},
		{"DIV", opDiv, 10, 3, 3},
		{"MOD", opMod, 10, 3, 1},
		{"LT true", opLt, 2, 5, 1},
		{"LT false", opLt, 5, 2, 0},
		{"GT true", opGt, 5, 2, 1},
		{"EQ true", opEq, 7, 7, 1},
		{"EQ false", opEq, 7, 8, 0},
		{"AND", opAnd, 0b1100, 0b1010, 0b1000},
		{"OR", opOr, 0b1100, 0b1010, 0b1110},
		{"XOR", opXor, 0b1100, 0b1010, 0b0110},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := execBinaryOp(t, c.fn, c.a, c.b)
			if got.Uint64() != c.want {
				t.Fatalf("%s(%d,%d) = %d, want %d", c.name, c.a, c.b, got.Uint64(), c.want)
			}
		})
	}
}

func TestDivByZeroIsZero(t *testing.T) {
	got := execBinaryOp(t, opDiv, 10, 0)
	if !got.IsZero() {
		t.Fatalf("10 / 0 = %d, want 0 (Yellow Paper convention)", got.Uint64())
	}
}

func TestModByZeroIsZero(t *testing.T) {
	got := execBinaryOp(t, opMod, 10, 0)
	if !got.IsZero() {
		t.Fatalf("10 %% 0 = %d, want 0", got.Uint64())
	}
}

func TestIszero(t *testing.T) {
	ps := &ProgramState{Stack: pushStack(0)}
	opIszero(ps)
	top, _ := ps.Stack.Peek()
	if top.Uint64() != 1 {
		t.Fatalf("ISZERO(0) = %d, want 1", top.Uint64())
	}

	ps2 := &ProgramState{Stack: pushStack(5)}
	opIszero(ps2)
	top2, _ := ps2.Stack.Peek()
	if top2.Uint64() != 0 {
		t.Fatalf("ISZERO(5) = %d, want 0", top2.Uint64())
	}
}

func TestNot(t *testing.T) {
	ps := &ProgramState{Stack: pushStack(0)}
	opNot(ps)
	top, _ := ps.Stack.Peek()
	want := new(Word).Not(newWord(0))
	if !top.Eq(want) {
		t.Fatalf("NOT(0) = %x, want %x", top.Bytes32(), want.Bytes32())
	}
}

func TestShlShr(t *testing.T) {
	// opShl/opShr pop the shift amount first (a), then the value (b);
	// the result is "value shifted by shift", i.e. b shifted by a.
	got := execBinaryOp(t, opShl, 4, 1) // 1 << 4 = 16
	if got.Uint64() != 16 {
		t.Fatalf("SHL: 1<<4 = %d, want 16", got.Uint64())
	}
	got = execBinaryOp(t, opShr, 4, 16) // 16 >> 4 = 1
	if got.Uint64() != 1 {
		t.Fatalf("SHR: 16>>4 = %d, want 1", got.Uint64())
	}
}
