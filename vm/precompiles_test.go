package vm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/coreweave-evm/evmcore/core/types"
)

func TestPrecompileAt(t *testing.T) {
	if precompileAt(types.HexToAddress("0x02")) == nil {
		t.Fatalf("0x02 (sha256) should be a known precompile")
	}
	if precompileAt(types.HexToAddress("0xff")) != nil {
		t.Fatalf("0xff should not be a precompile")
	}
}

func TestPrecompileSha256(t *testing.T) {
	pc := precompileAt(types.HexToAddress("0x02"))
	out, gas, err := runPrecompile(pc, []byte("abc"), 100000)
	if err != nil {
		t.Fatalf("sha256 precompile error: %v", err)
	}
	want := []byte{
		0xba, 0x78, 0x16, 0xbf, 0x8f, 0x01, 0xcf, 0xea,
		0x41, 0x41, 0x40, 0xde, 0x5d, 0xae, 0x22, 0x23,
		0xb0, 0x03, 0x61, 0xa3, 0x96, 0x17, 0x7a, 0x9c,
		0xb4, 0x10, 0xff, 0x61, 0xf2, 0x00, 0x15, 0xad,
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("sha256(\"abc\") = %x, want %x", out, want)
	}
	if gas != 60+12 {
		t.Fatalf("gas = %d, want %d", gas, 60+12)
	}
}

func TestPrecompileRipemd160PadsTo32Bytes(t *testing.T) {
	pc := precompileAt(types.HexToAddress("0x03"))
	out, _, err := runPrecompile(pc, []byte("abc"), 100000)
	if err != nil {
		t.Fatalf("ripemd160 precompile error: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("output len = %d, want 32", len(out))
	}
	for _, b := range out[:12] {
		if b != 0 {
			t.Fatalf("expected left-zero-padding, got %x", out)
		}
	}
}

func TestPrecompileIdentity(t *testing.T) {
	pc := precompileAt(types.HexToAddress("0x04"))
	input := []byte{1, 2, 3, 4, 5}
	out, gas, err := runPrecompile(pc, input, 100000)
	if err != nil {
		t.Fatalf("identity precompile error: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("identity(%x) = %x, want same bytes", input, out)
	}
	if gas != 15+3 {
		t.Fatalf("gas = %d, want %d", gas, 15+3)
	}
}

func TestPrecompileOutOfGas(t *testing.T) {
	pc := precompileAt(types.HexToAddress("0x02"))
	_, _, err := runPrecompile(pc, []byte("abc"), 10)
	if !errors.Is(err, ErrOutOfGas) {
		t.Fatalf("expected ErrOutOfGas, got %v", err)
	}
}

func TestPrecompileUnimplementedAddresses(t *testing.T) {
	for _, hexAddr := range []string{"0x01", "0x05", "0x06", "0x07", "0x08", "0x09"} {
		pc := precompileAt(types.HexToAddress(hexAddr))
		if pc == nil {
			t.Fatalf("%s should be registered (even if unimplemented)", hexAddr)
		}
		_, _, err := runPrecompile(pc, nil, 1_000_000)
		if !errors.Is(err, ErrPrecompileNotImplemented) {
			t.Fatalf("%s: expected ErrPrecompileNotImplemented, got %v", hexAddr, err)
		}
	}
}
