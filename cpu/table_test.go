package cpu

import "testing"

func TestDecodeOpcodeMatchesIndex(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		if got := Decode(op).Opcode; got != op {
			t.Errorf("Decode(0x%02X).Opcode = 0x%02X, want 0x%02X", op, got, op)
		}
	}
}

func TestDecodeNoDuplicateOpcodes(t *testing.T) {
	seen := map[uint8]bool{}
	for i := 0; i < 256; i++ {
		op := Decode(uint8(i)).Opcode
		if seen[op] {
			t.Fatalf("opcode 0x%02X decoded more than once", op)
		}
		seen[op] = true
	}
}

func TestDecodeUndocumentedOpcodeIsXXXSentinel(t *testing.T) {
	desc := Decode(0x02) // never assigned in the table
	want := Descriptor{Opcode: 0x02, Mnemonic: XXX, Mode: Implied, Length: 1, Cycles: 1}
	if desc != want {
		t.Errorf("Decode(0x02) = %+v, want %+v", desc, want)
	}
}

func TestDecodeDocumentedOpcodeCount(t *testing.T) {
	count := 0
	for i := 0; i < 256; i++ {
		if Decode(uint8(i)).Mnemonic != XXX {
			count++
		}
	}
	if count != 151 {
		t.Errorf("documented opcode count = %d, want 151", count)
	}
}

func TestMnemonicStringAccumulatorFormsMatchMemoryForm(t *testing.T) {
	pairs := map[Mnemonic]Mnemonic{ASLA: ASL, LSRA: LSR, ROLA: ROL, RORA: ROR}
	for acc, mem := range pairs {
		if acc.String() != mem.String() {
			t.Errorf("%v.String() = %q, want %q to match memory form", acc, acc.String(), mem.String())
		}
	}
}
