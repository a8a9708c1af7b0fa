package vm

// Memory models the EVM's conceptually infinite, zero-initialized,
// byte-addressable scratch space. Its physical backing store only grows
// (in 32-byte words) when an access touches an offset beyond its current
// length; growth is always preceded by a gas charge computed by
// MemoryExpansionGas (see gas.go), never performed implicitly by Memory
// itself.
type Memory struct {
	store []byte
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current size of the backing store in bytes. Always a
// multiple of 32 once any access has occurred.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows the backing store to size bytes, zero-filling the new
// region. A no-op if size is not larger than the current length.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

// Set writes value into [offset, offset+len(value)). The caller must have
// already resized memory to cover this range.
func (m *Memory) Set(offset uint64, value []byte) {
	if len(value) == 0 {
		return
	}
	copy(m.store[offset:offset+uint64(len(value))], value)
}

// Set32 writes a 32-byte big-endian Word at offset, zero-padded on the
// left. Used by MSTORE.
func (m *Memory) Set32(offset uint64, val *Word) {
	b := wordToHash(val)
	copy(m.store[offset:offset+32], b[:])
}

// Get returns a freshly allocated copy of [offset, offset+size). Bytes of
// the range that lie past the current length read as zero, matching the
// "infinite zero-initialized array" model, as long as offset itself does
// not exceed the current length; a larger offset panics. The interpreter
// resizes memory before every access, so it never hits that case.
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, m.store[offset:])
	return out
}

// GetPtr returns a direct slice into the backing store, avoiding a copy.
// Callers must not retain it past the next mutating Memory call.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns the full backing slice, bottom to top, for tracing/tests.
func (m *Memory) Data() []byte { return m.store }
