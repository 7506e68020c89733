package cpu

import (
	"math/rand"
)

// PowerOn seeds the chip with the indeterminate register contents real
// silicon exhibits at power-up, then runs the defined Reset sequence.
// Unlike the teacher hardware this models, spec.md §4.6 pins RESET's
// effect on A/X/Y/SP/P precisely, so the randomized values here are
// overwritten by the Reset call before PowerOn returns: the register state
// a caller sees afterwards is the same as after Reset alone.
func (c *Chip) PowerOn() {
	c.A = uint8(rand.Intn(256))
	c.X = uint8(rand.Intn(256))
	c.Y = uint8(rand.Intn(256))
	c.SP = uint8(rand.Intn(256))

	flags := FlagUnused
	if c.variant == NMOS && rand.Float32() > 0.5 {
		flags |= FlagDecimal
	}
	c.P = flags

	c.Reset()
}
