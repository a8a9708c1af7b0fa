package vm

// Program is an immutable bytecode buffer plus its precomputed set of
// valid JUMP/JUMPI destinations. Analysis runs once, lazily, the first
// time a jump is validated, and is cached for the lifetime of the Program
// (mirroring the teacher's Contract.analyzeJumpdests memoization). The
// cache is not shared between frames: every CALL-family or CREATE frame
// builds a new Program, so re-entering the same code scans it again.
type Program struct {
	Code []byte

	jumpdests map[uint64]bool
}

// NewProgram wraps code as an immutable Program. The returned value does
// not copy code; callers must not mutate it afterwards.
func NewProgram(code []byte) *Program {
	return &Program{Code: code}
}

// Len returns the number of code bytes.
func (p *Program) Len() int { return len(p.Code) }

// At returns the opcode at position pc, or STOP if pc is at or past the
// end of the code (the interpreter loop's "ran off the end" halt).
func (p *Program) At(pc uint64) OpCode {
	if pc < uint64(len(p.Code)) {
		return OpCode(p.Code[pc])
	}
	return STOP
}

// ValidJumpDest reports whether dest is both in range and a JUMPDEST byte
// that isn't inside some PUSHn's immediate-data window (§4.4).
func (p *Program) ValidJumpDest(dest uint64) bool {
	if dest >= uint64(len(p.Code)) {
		return false
	}
	if OpCode(p.Code[dest]) != JUMPDEST {
		return false
	}
	if p.jumpdests == nil {
		p.analyze()
	}
	return p.jumpdests[dest]
}

// analyze scans the code once, recording every offset whose byte is
// JUMPDEST and that is not itself PUSHn immediate data. Per §4.4: when
// byte b is in [0x60, 0x7F] (PUSH1..PUSH32), skip the next b-0x5F bytes.
func (p *Program) analyze() {
	p.jumpdests = make(map[uint64]bool)
	code := p.Code
	for i := uint64(0); i < uint64(len(code)); i++ {
		op := OpCode(code[i])
		if op == JUMPDEST {
			p.jumpdests[i] = true
			continue
		}
		if op.IsPush() {
			i += uint64(op.PushSize())
		}
	}
}
