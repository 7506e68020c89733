package cpu

import "testing"

func TestADCDecimalMode(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0x69, 0x01}, 0x8000) // ADC #$01
	c.A = 0x09
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, false)
	runInstruction(c)
	if c.A != 0x10 {
		t.Errorf("A = 0x%02X, want 0x10 (09 + 01 BCD)", c.A)
	}
}

func TestADCDecimalZeroFlagFromBinarySum(t *testing.T) {
	// 0x99 + 0x01 = 0x00 BCD (with carry out), but the binary sum 0x9A is
	// nonzero -- Zero must reflect the binary sum, a documented quirk.
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0x69, 0x01}, 0x8000)
	c.A = 0x99
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, false)
	runInstruction(c)
	if c.GetFlag(FlagZero) {
		t.Error("Zero set, want clear (derived from nonzero binary sum 0x9A)")
	}
}

func TestADCDecimalUnavailableOnNES(t *testing.T) {
	c, _ := newTestChip(t, NES, 0x8000, []byte{0x69, 0x01}, 0x8000)
	c.A = 0x09
	c.SetFlag(FlagDecimal, true) // setting it has no arithmetic effect on NES
	c.SetFlag(FlagCarry, false)
	runInstruction(c)
	if c.A != 0x0A {
		t.Errorf("A = 0x%02X, want 0x0A (binary add, NES ignores Decimal)", c.A)
	}
}

func TestSBCBinaryMode(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0xE9, 0x01}, 0x8000) // SBC #$01
	c.A = 0x05
	c.SetFlag(FlagCarry, true) // no borrow
	runInstruction(c)
	if c.A != 0x04 {
		t.Errorf("A = 0x%02X, want 0x04", c.A)
	}
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry clear, want set (no borrow occurred)")
	}
}

func TestSBCDecimalMode(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0xE9, 0x01}, 0x8000)
	c.A = 0x10
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, true)
	runInstruction(c)
	if c.A != 0x09 {
		t.Errorf("A = 0x%02X, want 0x09 (10 - 01 BCD)", c.A)
	}
}

func TestCompareDoesNotModifyRegister(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0xC9, 0x10}, 0x8000) // CMP #$10
	c.A = 0x10
	runInstruction(c)
	if c.A != 0x10 {
		t.Errorf("A = 0x%02X, want unchanged 0x10", c.A)
	}
	if !c.GetFlag(FlagZero) || !c.GetFlag(FlagCarry) {
		t.Error("CMP of equal values should set Zero and Carry")
	}
}
