package vm

import "testing"

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	if st.Len() != 0 {
		t.Fatalf("new stack len = %d, want 0", st.Len())
	}
	if err := st.Push(newWord(1)); err != nil {
		t.Fatal(err)
	}
	if err := st.Push(newWord(2)); err != nil {
		t.Fatal(err)
	}
	if st.Len() != 2 {
		t.Fatalf("len = %d, want 2", st.Len())
	}
	top, err := st.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if top.Uint64() != 2 {
		t.Fatalf("popped %d, want 2", top.Uint64())
	}
	if st.Len() != 1 {
		t.Fatalf("len after pop = %d, want 1", st.Len())
	}
}

func TestStackPopUnderflow(t *testing.T) {
	st := NewStack()
	if _, err := st.Pop(); err != ErrStackUnderflow {
		t.Fatalf("err = %v, want ErrStackUnderflow", err)
	}
}

func TestStackPushOverflow(t *testing.T) {
	st := NewStack()
	for i := 0; i < stackLimit; i++ {
		if err := st.Push(newWord(uint64(i))); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := st.Push(newWord(0)); err != ErrStackOverflow {
		t.Fatalf("err = %v, want ErrStackOverflow", err)
	}
}

func TestStackBack(t *testing.T) {
	st := NewStack()
	st.Push(newWord(10))
	st.Push(newWord(20))
	st.Push(newWord(30))
	v, err := st.Back(0)
	if err != nil || v.Uint64() != 30 {
		t.Fatalf("Back(0) = %v, %v; want 30", v, err)
	}
	v, err = st.Back(2)
	if err != nil || v.Uint64() != 10 {
		t.Fatalf("Back(2) = %v, %v; want 10", v, err)
	}
	if _, err := st.Back(3); err != ErrStackUnderflow {
		t.Fatalf("Back(3) err = %v, want ErrStackUnderflow", err)
	}
}

func TestStackDupSwap(t *testing.T) {
	st := NewStack()
	st.Push(newWord(1))
	st.Push(newWord(2))
	if err := st.Dup(2); err != nil {
		t.Fatal(err)
	}
	top, _ := st.Peek()
	if top.Uint64() != 1 {
		t.Fatalf("DUP2 top = %d, want 1", top.Uint64())
	}
	if st.Len() != 3 {
		t.Fatalf("len after dup = %d, want 3", st.Len())
	}

	st2 := NewStack()
	st2.Push(newWord(1))
	st2.Push(newWord(2))
	if err := st2.Swap(1); err != nil {
		t.Fatal(err)
	}
	top, _ = st2.Peek()
	if top.Uint64() != 1 {
		t.Fatalf("after SWAP1 top = %d, want 1", top.Uint64())
	}
}
