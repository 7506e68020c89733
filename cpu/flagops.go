package cpu

// Direct flag manipulation instructions.
func (c *Chip) clc() int { c.SetFlag(FlagCarry, false); return 0 }
func (c *Chip) cld() int { c.SetFlag(FlagDecimal, false); return 0 }
func (c *Chip) cli() int { c.SetFlag(FlagInterrupt, false); return 0 }
func (c *Chip) clv() int { c.SetFlag(FlagOverflow, false); return 0 }
func (c *Chip) sec() int { c.SetFlag(FlagCarry, true); return 0 }
func (c *Chip) sed() int { c.SetFlag(FlagDecimal, true); return 0 }
func (c *Chip) sei() int { c.SetFlag(FlagInterrupt, true); return 0 }

// nop has no effect beyond whatever its addressing mode already consumed.
func (c *Chip) nop() int { return 0 }
