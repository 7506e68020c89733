package cpu

// asl shifts a memory operand left by 1: C gets the bit shifted out, N/Z
// from the result.
func (c *Chip) asl() int {
	v := c.operand(c.lastDescriptor.Mode)
	c.carryCheck(uint16(v) << 1)
	res := v << 1
	c.bus.Write(c.addrAbs, res)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

// asla is the accumulator form of ASL.
func (c *Chip) asla() int {
	c.carryCheck(uint16(c.A) << 1)
	c.loadRegister(&c.A, c.A<<1)
	return 0
}

// lsr shifts a memory operand right by 1: C gets the bit shifted out, N is
// always cleared, Z from the result.
func (c *Chip) lsr() int {
	v := c.operand(c.lastDescriptor.Mode)
	c.SetFlag(FlagCarry, v&0x01 != 0)
	res := v >> 1
	c.bus.Write(c.addrAbs, res)
	c.SetFlag(FlagNegative, false)
	c.zeroCheck(res)
	return 0
}

// lsra is the accumulator form of LSR.
func (c *Chip) lsra() int {
	c.SetFlag(FlagCarry, c.A&0x01 != 0)
	c.A = c.A >> 1
	c.SetFlag(FlagNegative, false)
	c.zeroCheck(c.A)
	return 0
}

// rol rotates a memory operand left by 1 through carry.
func (c *Chip) rol() int {
	v := c.operand(c.lastDescriptor.Mode)
	carryIn := uint16(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	res16 := (uint16(v) << 1) | carryIn
	c.carryCheck(res16)
	res := uint8(res16)
	c.bus.Write(c.addrAbs, res)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

// rola is the accumulator form of ROL.
func (c *Chip) rola() int {
	carryIn := uint16(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	res16 := (uint16(c.A) << 1) | carryIn
	c.carryCheck(res16)
	c.loadRegister(&c.A, uint8(res16))
	return 0
}

// rorShift computes the ROR result and whether carry is updated, dispatched
// on variant per spec.md §4.5: CMOS rotates the real 9 bit value through
// carry; NMOS (and NES, which is NMOS-compatible here) reproduces the
// documented silicon bug where ROR instead clears bit 7 and shifts left,
// leaving carry untouched.
func (c *Chip) rorShift(val uint8) (res uint8, newCarry bool, updatesCarry bool) {
	if c.variant == CMOS {
		nine := uint16(val)
		if c.GetFlag(FlagCarry) {
			nine |= 0x100
		}
		return uint8(nine >> 1), nine&0x01 != 0, true
	}
	return (val &^ 0x80) << 1, false, false
}

// ror rotates a memory operand right by 1 (or applies the NMOS quirk).
func (c *Chip) ror() int {
	v := c.operand(c.lastDescriptor.Mode)
	res, newCarry, updates := c.rorShift(v)
	if updates {
		c.SetFlag(FlagCarry, newCarry)
	}
	c.bus.Write(c.addrAbs, res)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

// rora is the accumulator form of ROR.
func (c *Chip) rora() int {
	res, newCarry, updates := c.rorShift(c.A)
	if updates {
		c.SetFlag(FlagCarry, newCarry)
	}
	c.loadRegister(&c.A, res)
	return 0
}
