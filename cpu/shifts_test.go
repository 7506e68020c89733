package cpu

import "testing"

func TestRORNMOSClearsBitAndLeavesCarry(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0x6A}, 0x8000) // RORA
	c.A = 0x81
	c.SetFlag(FlagCarry, true)
	runInstruction(c)
	// NMOS quirk: clear bit 7, shift left, carry untouched.
	if c.A != 0x02 {
		t.Errorf("A = 0x%02X, want 0x02 (NMOS ROR quirk)", c.A)
	}
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry changed by NMOS ROR, want untouched (stayed set)")
	}
}

func TestRORCMOSRealRotate(t *testing.T) {
	c, _ := newTestChip(t, CMOS, 0x8000, []byte{0x6A}, 0x8000) // RORA
	c.A = 0x01
	c.SetFlag(FlagCarry, true)
	runInstruction(c)
	// Real 9-bit rotate: carry (1) shifts into bit 7, bit 0 shifts into carry.
	if c.A != 0x80 {
		t.Errorf("A = 0x%02X, want 0x80", c.A)
	}
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry = false, want true (old bit 0 was 1)")
	}
}

func TestASLSetsCarryFromBit7(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0x0A}, 0x8000) // ASLA
	c.A = 0x81
	runInstruction(c)
	if c.A != 0x02 {
		t.Errorf("A = 0x%02X, want 0x02", c.A)
	}
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry not set from shifted-out bit 7")
	}
}

func TestLSRAlwaysClearsNegative(t *testing.T) {
	c, _ := newTestChip(t, NMOS, 0x8000, []byte{0x4A}, 0x8000) // LSRA
	c.A = 0x01
	runInstruction(c)
	if c.GetFlag(FlagNegative) {
		t.Error("Negative set after LSR, want always clear")
	}
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry not set from shifted-out bit 0")
	}
}
