package vm

import "testing"

func TestProgramValidJumpDest(t *testing.T) {
	// PUSH1 0x03, JUMP, JUMPDEST, STOP
	code := []byte{byte(PUSH1), 0x03, byte(JUMP), byte(JUMPDEST), byte(STOP)}
	p := NewProgram(code)
	if !p.ValidJumpDest(3) {
		t.Fatalf("offset 3 should be a valid JUMPDEST")
	}
	if p.ValidJumpDest(0) {
		t.Fatalf("offset 0 (PUSH1) should not be a valid jump dest")
	}
	if p.ValidJumpDest(4) {
		t.Fatalf("offset 4 (STOP) should not be a valid jump dest")
	}
}

func TestProgramJumpDestInsidePushDataRejected(t *testing.T) {
	// PUSH2 0x5b 0x5b (the immediate bytes happen to equal the JUMPDEST
	// opcode value) followed by a real JUMPDEST at offset 3.
	code := []byte{byte(PUSH2), 0x5b, 0x5b, byte(JUMPDEST)}
	p := NewProgram(code)
	if p.ValidJumpDest(1) || p.ValidJumpDest(2) {
		t.Fatalf("PUSH2 immediate-data bytes must not validate as JUMPDEST")
	}
	if !p.ValidJumpDest(3) {
		t.Fatalf("offset 3 is a real JUMPDEST and should validate")
	}
}

func TestProgramAtPastEndIsStop(t *testing.T) {
	p := NewProgram([]byte{byte(PUSH1), 0x01})
	if p.At(10) != STOP {
		t.Fatalf("At() past code end should return STOP")
	}
}
