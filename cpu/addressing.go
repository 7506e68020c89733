package cpu

import "github.com/drewwalton19216801/sharp6502/memory"

// resolveAddress computes the effective address for mode into addrAbs (or
// addrRel for Relative), advancing PC past the operand bytes the mode
// consumes. It returns 1 if the mode incurs a page-crossing penalty, else
// 0; the clock driver combines this with the instruction's own extra-cycle
// flag per spec.md §4.7.
func (c *Chip) resolveAddress(mode AddressMode) int {
	switch mode {
	case Implied:
		// Accumulator-form instructions need no memory read.
		c.fetched = c.A
		return 0

	case Immediate:
		c.addrAbs = c.PC
		c.PC++
		return 0

	case ZeroPage:
		c.addrAbs = uint16(c.bus.Read(c.PC))
		c.PC++
		return 0

	case ZeroPageX:
		c.addrAbs = uint16(c.bus.Read(c.PC) + c.X)
		c.PC++
		return 0

	case ZeroPageY:
		c.addrAbs = uint16(c.bus.Read(c.PC) + c.Y)
		c.PC++
		return 0

	case Relative:
		off := c.bus.Read(c.PC)
		c.PC++
		c.addrRel = uint16(int16(int8(off)))
		return 0

	case Absolute:
		c.addrAbs = memory.ReadWord(c.bus, c.PC)
		c.PC += 2
		return 0

	case AbsoluteX:
		base := memory.ReadWord(c.bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		c.addrAbs = addr
		if addr&0xFF00 != base&0xFF00 {
			return 1
		}
		return 0

	case AbsoluteY:
		base := memory.ReadWord(c.bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		c.addrAbs = addr
		if addr&0xFF00 != base&0xFF00 {
			return 1
		}
		return 0

	case Indirect:
		ptr := memory.ReadWord(c.bus, c.PC)
		c.PC += 2
		lo := c.bus.Read(ptr)
		var hi uint8
		// NMOS indirect-JMP page-wrap bug: when the pointer's low byte is
		// 0xFF the high byte is fetched from ptr&0xFF00, not ptr+1. This
		// core always applies it for Indirect mode regardless of variant,
		// matching the documented silicon behavior spec.md §4.4 describes.
		if ptr&0x00FF == 0x00FF {
			hi = c.bus.Read(ptr & 0xFF00)
		} else {
			hi = c.bus.Read(ptr + 1)
		}
		c.addrAbs = uint16(lo) | uint16(hi)<<8
		return 0

	case IndirectX:
		zp := c.bus.Read(c.PC) + c.X
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		c.addrAbs = uint16(lo) | uint16(hi)<<8
		return 0

	case IndirectY:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		c.addrAbs = addr
		if addr&0xFF00 != base&0xFF00 {
			return 1
		}
		return 0
	}
	return 0
}

// operand returns the byte an instruction operates on: for every mode
// except Implied this is a read of addrAbs; Implied already latched the
// accumulator into fetched during resolveAddress.
func (c *Chip) operand(mode AddressMode) uint8 {
	if mode == Implied {
		return c.fetched
	}
	c.fetched = c.bus.Read(c.addrAbs)
	return c.fetched
}
