package cpu

// lda, ldx, ldy load from the resolved operand and set Z/N. They report
// wanting the page-cross bonus; the clock driver only charges it if the
// addressing mode actually crossed a page.
func (c *Chip) lda() int {
	c.loadRegister(&c.A, c.operand(c.lastDescriptor.Mode))
	return 1
}

func (c *Chip) ldx() int {
	c.loadRegister(&c.X, c.operand(c.lastDescriptor.Mode))
	return 1
}

func (c *Chip) ldy() int {
	c.loadRegister(&c.Y, c.operand(c.lastDescriptor.Mode))
	return 1
}

// sta, stx, sty store a register to the resolved address. Stores never
// earn a page-cross bonus on real hardware, so these report 0.
func (c *Chip) sta() int {
	c.bus.Write(c.addrAbs, c.A)
	return 0
}

func (c *Chip) stx() int {
	c.bus.Write(c.addrAbs, c.X)
	return 0
}

func (c *Chip) sty() int {
	c.bus.Write(c.addrAbs, c.Y)
	return 0
}
