package cpu

// Register transfers. TXS is the only one that does not touch Z/N, since
// the stack pointer isn't a value register.
func (c *Chip) tax() int { c.loadRegister(&c.X, c.A); return 0 }
func (c *Chip) tay() int { c.loadRegister(&c.Y, c.A); return 0 }
func (c *Chip) tsx() int { c.loadRegister(&c.X, c.SP); return 0 }
func (c *Chip) txa() int { c.loadRegister(&c.A, c.X); return 0 }
func (c *Chip) txs() int { c.SP = c.X; return 0 }
func (c *Chip) tya() int { c.loadRegister(&c.A, c.Y); return 0 }

// inc, dec perform a memory read-modify-write of ±1 with Z/N set from the
// result.
func (c *Chip) inc() int {
	v := c.operand(c.lastDescriptor.Mode) + 1
	c.bus.Write(c.addrAbs, v)
	c.zeroCheck(v)
	c.negativeCheck(v)
	return 0
}

func (c *Chip) dec() int {
	v := c.operand(c.lastDescriptor.Mode) - 1
	c.bus.Write(c.addrAbs, v)
	c.zeroCheck(v)
	c.negativeCheck(v)
	return 0
}

func (c *Chip) inx() int { c.loadRegister(&c.X, c.X+1); return 0 }
func (c *Chip) iny() int { c.loadRegister(&c.Y, c.Y+1); return 0 }
func (c *Chip) dex() int { c.loadRegister(&c.X, c.X-1); return 0 }
func (c *Chip) dey() int { c.loadRegister(&c.Y, c.Y-1); return 0 }
