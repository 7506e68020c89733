package cpu

// adc implements ADC: A <- A + M + C, with full BCD support on variants
// other than NES (the Ricoh 2A03 never implements decimal mode). Returns
// 1: ADC always wants the addressing mode's page-cross bonus applied.
func (c *Chip) adc() int {
	m := c.operand(c.lastDescriptor.Mode)
	carry := uint8(0)
	if c.GetFlag(FlagCarry) {
		carry = 1
	}

	if c.variant != NES && c.GetFlag(FlagDecimal) {
		// BCD details: http://6502.org/tutorials/decimal_mode.html
		aL := (c.A & 0x0F) + (m & 0x0F) + carry
		if aL >= 0x0A {
			aL = ((aL + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(c.A&0xF0) + uint16(m&0xF0) + uint16(aL)
		if sum >= 0xA0 {
			sum += 0x60
		}
		res := uint8(sum & 0xFF)

		bin := c.A + m + carry // NMOS hardware derives Z from the plain binary sum
		seq := (c.A & 0xF0) + (m & 0xF0) + aL
		c.overflowCheck(c.A, m, seq)
		c.carryCheck(sum)
		c.negativeCheck(seq)
		c.zeroCheck(bin)
		c.A = res
		return 1
	}

	sum := c.A + m + carry
	c.overflowCheck(c.A, m, sum)
	c.carryCheck(uint16(c.A) + uint16(m) + uint16(carry))
	c.loadRegister(&c.A, sum)
	return 1
}

// sbc implements SBC: A <- A - M - (1-C). Decimal mode correction mirrors
// adc's nibble-fixup structure; flags are always computed from the
// equivalent binary subtraction (A + ^M + C) so N/Z/C/V match real
// hardware regardless of decimal mode, per spec.md §4.5.
func (c *Chip) sbc() int {
	m := c.operand(c.lastDescriptor.Mode)
	carry := uint8(0)
	if c.GetFlag(FlagCarry) {
		carry = 1
	}

	// N/Z/C/V always come from the binary two's-complement subtraction.
	notM := ^m
	bin := c.A + notM + carry
	c.overflowCheck(c.A, notM, bin)
	c.carryCheck(uint16(c.A) + uint16(notM) + uint16(carry))
	c.negativeCheck(bin)
	c.zeroCheck(bin)

	if c.variant != NES && c.GetFlag(FlagDecimal) {
		aL := int16(c.A&0x0F) - int16(m&0x0F) + int16(carry) - 1
		if aL < 0 {
			aL = ((aL - 0x06) & 0x0F) - 0x10
		}
		sum := int16(c.A&0xF0) - int16(m&0xF0) + aL
		if sum < 0 {
			sum -= 0x60
		}
		c.A = uint8(sum & 0xFF)
		return 1
	}

	c.A = bin
	return 1
}

// compare implements the shared logic for CMP/CPX/CPY: Z/N/C are set from
// reg - val as an unsigned subtraction, without touching reg itself.
func (c *Chip) compare(reg, val uint8) {
	res := reg - val
	c.zeroCheck(res)
	c.negativeCheck(res)
	c.carryCheck(uint16(reg) + uint16(^val) + 1)
}

func (c *Chip) cmp() int {
	c.compare(c.A, c.operand(c.lastDescriptor.Mode))
	return 1
}

func (c *Chip) cpx() int {
	c.compare(c.X, c.operand(c.lastDescriptor.Mode))
	return 0
}

func (c *Chip) cpy() int {
	c.compare(c.Y, c.operand(c.lastDescriptor.Mode))
	return 0
}
