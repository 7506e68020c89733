package cpu

import "github.com/drewwalton19216801/sharp6502/memory"

// Reset puts the chip into its power-on-equivalent state per spec.md
// §4.6: A/X/Y cleared, SP set to 0xFF, interrupts disabled, PC loaded from
// ResetVector. No stack writes occur (real RESET doesn't push anything,
// it just walks the stack pointer down internally, which external state
// can't observe).
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.P = FlagUnused | FlagInterrupt
	c.PC = memory.ReadWord(c.bus, ResetVector)
	c.cyclesRemaining = 8
	c.state = Stopped
	c.lastDescriptor = Descriptor{}
}

// pushInterruptFrame implements the shared push sequence for IRQ and NMI:
// push PC, then P with Break cleared and Unused set, then disable further
// interrupts and load PC from vector.
func (c *Chip) pushInterruptFrame(vector uint16) {
	c.pushWord(c.PC)
	p := c.P
	p &^= FlagBreak
	p |= FlagUnused
	c.pushByte(p)
	c.SetFlag(FlagInterrupt, true)
	c.PC = memory.ReadWord(c.bus, vector)
}

// IRQ requests a maskable interrupt. It is a no-op if InterruptDisable is
// currently set; otherwise it pushes PC/P, vectors through IRQVector and
// adds 7 cycles to the current instruction's budget.
func (c *Chip) IRQ() {
	if c.GetFlag(FlagInterrupt) {
		return
	}
	c.pushInterruptFrame(IRQVector)
	c.cyclesRemaining += 7
}

// NMI requests a non-maskable interrupt. Unlike IRQ this is never
// suppressed by InterruptDisable; it vectors through NMIVector and adds
// 8 cycles.
func (c *Chip) NMI() {
	c.pushInterruptFrame(NMIVector)
	c.cyclesRemaining += 8
}
