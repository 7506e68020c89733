package cpu

import (
	"testing"

	"github.com/drewwalton19216801/sharp6502/memory"
)

func newBareChip() *Chip {
	return New(NMOS, memory.NewBus(), nil, nil, Config{})
}

func TestSetFlagAlwaysKeepsUnusedSet(t *testing.T) {
	c := newBareChip()
	c.P = 0
	c.SetFlag(FlagCarry, true)
	if c.P&FlagUnused == 0 {
		t.Error("SetFlag cleared Unused, want it always 1")
	}
	c.SetFlag(FlagCarry, false)
	if !c.GetFlag(FlagUnused) {
		t.Error("Unused not set after clearing Carry")
	}
	if c.GetFlag(FlagCarry) {
		t.Error("Carry still set after SetFlag(FlagCarry, false)")
	}
}

func TestZeroCheck(t *testing.T) {
	c := newBareChip()
	c.zeroCheck(0)
	if !c.GetFlag(FlagZero) {
		t.Error("Zero not set for 0")
	}
	c.zeroCheck(1)
	if c.GetFlag(FlagZero) {
		t.Error("Zero set for nonzero value")
	}
}

func TestNegativeCheck(t *testing.T) {
	c := newBareChip()
	c.negativeCheck(0x80)
	if !c.GetFlag(FlagNegative) {
		t.Error("Negative not set for 0x80")
	}
	c.negativeCheck(0x7F)
	if c.GetFlag(FlagNegative) {
		t.Error("Negative set for 0x7F")
	}
}

func TestCarryCheck(t *testing.T) {
	c := newBareChip()
	c.carryCheck(0x100)
	if !c.GetFlag(FlagCarry) {
		t.Error("Carry not set for result >= 0x100")
	}
	c.carryCheck(0xFF)
	if c.GetFlag(FlagCarry) {
		t.Error("Carry set for result < 0x100")
	}
}

func TestOverflowCheck(t *testing.T) {
	c := newBareChip()
	// 0x50 + 0x50 = 0xA0: positive + positive = negative, overflow.
	c.overflowCheck(0x50, 0x50, 0xA0)
	if !c.GetFlag(FlagOverflow) {
		t.Error("Overflow not set for 0x50+0x50=0xA0")
	}
	// 0x50 + 0x10 = 0x60: no sign change, no overflow.
	c.overflowCheck(0x50, 0x10, 0x60)
	if c.GetFlag(FlagOverflow) {
		t.Error("Overflow set for 0x50+0x10=0x60")
	}
}

func TestLoadRegisterSetsZN(t *testing.T) {
	c := newBareChip()
	var reg uint8
	c.loadRegister(&reg, 0x00)
	if reg != 0 || !c.GetFlag(FlagZero) || c.GetFlag(FlagNegative) {
		t.Errorf("reg=%d Z=%v N=%v, want 0/true/false", reg, c.GetFlag(FlagZero), c.GetFlag(FlagNegative))
	}
	c.loadRegister(&reg, 0xFF)
	if reg != 0xFF || c.GetFlag(FlagZero) || !c.GetFlag(FlagNegative) {
		t.Errorf("reg=%d Z=%v N=%v, want 255/false/true", reg, c.GetFlag(FlagZero), c.GetFlag(FlagNegative))
	}
}
