package cpu

// and implements AND: A <- A & M.
func (c *Chip) and() int {
	c.loadRegister(&c.A, c.A&c.operand(c.lastDescriptor.Mode))
	return 1
}

// ora implements ORA: A <- A | M.
func (c *Chip) ora() int {
	c.loadRegister(&c.A, c.A|c.operand(c.lastDescriptor.Mode))
	return 1
}

// eor implements EOR: A <- A ^ M.
func (c *Chip) eor() int {
	c.loadRegister(&c.A, c.A^c.operand(c.lastDescriptor.Mode))
	return 1
}

// bit implements BIT: Z from A&M, N from bit 7 of M, V from bit 6 of M. A
// is left unmodified.
func (c *Chip) bit() int {
	m := c.operand(c.lastDescriptor.Mode)
	c.zeroCheck(c.A & m)
	c.negativeCheck(m)
	c.SetFlag(FlagOverflow, m&FlagOverflow != 0)
	return 0
}
