package cpu

// pushByte writes val to the stack page at the current SP and
// post-decrements SP. The stack wraps within page 1 (0x0100-0x01FF)
// since SP is a plain uint8.
func (c *Chip) pushByte(val uint8) {
	c.bus.Write(0x0100+uint16(c.SP), val)
	c.SP--
}

// popByte pre-increments SP and reads the byte now at the top of the
// stack.
func (c *Chip) popByte() uint8 {
	c.SP++
	return c.bus.Read(0x0100 + uint16(c.SP))
}

// pushWord pushes val high byte first, then low byte, so popWord returns
// it in the same order it was pushed.
func (c *Chip) pushWord(val uint16) {
	c.pushByte(uint8(val >> 8))
	c.pushByte(uint8(val))
}

// popWord pops a little-endian word: low byte first (pushed last), then
// high byte.
func (c *Chip) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(lo) | uint16(hi)<<8
}

// pha pushes A onto the stack.
func (c *Chip) pha() int {
	c.pushByte(c.A)
	return 0
}

// plp pulls P off the stack, normalizing Unused to 1 and Break to 0 on
// pull to match hardware behavior, per spec.md §4.5.
func (c *Chip) plp() int {
	p := c.popByte()
	p |= FlagUnused
	p &^= FlagBreak
	c.P = p
	return 0
}

// php pushes P with Break and Unused both set, the value BRK/PHP always
// writes to the stack regardless of their live state in P.
func (c *Chip) php() int {
	c.pushByte(c.P | FlagBreak | FlagUnused)
	return 0
}

// pla pulls a byte into A and sets Z/N from it.
func (c *Chip) pla() int {
	c.loadRegister(&c.A, c.popByte())
	return 0
}
