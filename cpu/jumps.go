package cpu

import "github.com/drewwalton19216801/sharp6502/memory"

// jmp sets PC to the resolved effective address (which already carries
// the NMOS indirect page-wrap bug for Indirect mode, per the resolver).
func (c *Chip) jmp() int {
	c.PC = c.addrAbs
	return 0
}

// jsr pushes the address of the last byte of the JSR instruction (PC-1,
// since the resolver already advanced PC past the 2 operand bytes) and
// jumps to the resolved address.
func (c *Chip) jsr() int {
	c.pushWord(c.PC - 1)
	c.PC = c.addrAbs
	return 0
}

// rts pops the return address and advances past the JSR that pushed it.
func (c *Chip) rts() int {
	c.PC = c.popWord()
	c.PC++
	return 0
}

// rti pops status (normalizing Break/Unused on pull) then PC.
func (c *Chip) rti() int {
	p := c.popByte()
	p |= FlagUnused
	p &^= FlagBreak
	c.P = p
	c.PC = c.popWord()
	return 0
}

// brk implements the software interrupt: skip the signature byte, set
// InterruptDisable, push PC then P (with Break set only in the pushed
// image, so the pushed P also has InterruptDisable set), and vector
// through IRQVector.
func (c *Chip) brk() int {
	c.PC++
	c.SetFlag(FlagInterrupt, true)
	c.pushWord(c.PC)
	c.SetFlag(FlagBreak, true)
	c.pushByte(c.P)
	c.SetFlag(FlagBreak, false)
	c.PC = memory.ReadWord(c.bus, IRQVector)
	return 0
}
