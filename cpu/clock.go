package cpu

import "fmt"

// Tick advances the clock by one emulated cycle. When cyclesRemaining is
// already zero and no pending interrupt is serviced, this fetches, decodes,
// resolves addressing and executes a whole new instruction atomically (the
// core is instruction-cycle accurate, not sub-cycle accurate, per spec.md
// §1/§4.7); otherwise it simply burns down the remaining budget from the
// instruction already in flight.
//
// At every instruction boundary Tick also samples the chip's irq/nmi
// sources (either may be nil) and, if one is asserted, services it instead
// of fetching: NMI always wins over IRQ, and IRQ is skipped entirely while
// InterruptDisable is set, matching IRQ's own no-op rule.
func (c *Chip) Tick() error {
	if c.cyclesRemaining == 0 {
		switch {
		case c.nmi != nil && c.nmi.Raised():
			c.state = Interrupt
			c.NMI()
		case c.irq != nil && c.irq.Raised() && !c.GetFlag(FlagInterrupt):
			c.state = Interrupt
			c.IRQ()
		default:
			c.state = Fetching
			c.opcode = c.bus.Read(c.PC)
			c.lastPC = c.PC
			c.PC++
			c.P |= FlagUnused

			desc := Decode(c.opcode)
			c.lastDescriptor = desc
			c.cyclesRemaining = desc.Cycles

			c.state = Executing

			addrExtra := c.resolveAddress(desc.Mode)
			instrExtra, err := c.execute(desc.Mnemonic)
			if err != nil {
				return err
			}

			var combined int
			switch c.cfg.PageCrossPenaltyMode {
			case PenaltyOR:
				combined = addrExtra | instrExtra
			default:
				combined = addrExtra & instrExtra
			}
			c.cyclesRemaining += uint8(combined)
			c.P |= FlagUnused
		}
	}
	c.cyclesRemaining--
	return nil
}

// LastPC returns the address the most recently fetched instruction
// started at, and whether any instruction has been fetched since
// construction or Reset. Provided for disassembly snapshotting (spec.md
// §4.7 step 6).
func (c *Chip) LastPC() (uint16, bool) {
	return c.lastPC, c.lastDescriptor.Length != 0
}

// CyclesRemaining exposes the current cycle budget for observability.
func (c *Chip) CyclesRemaining() uint8 { return c.cyclesRemaining }

// LastDescriptor returns the Descriptor decoded at the most recent fetch
// boundary. It errors with UnsetInstructionAtFetch if nothing has been
// fetched yet (no instruction fetch since construction or Reset; ticks
// that only burn down a cycle budget or service an interrupt do not
// count). Every table entry has a nonzero Length, so a zero Length marks
// the cleared descriptor.
func (c *Chip) LastDescriptor() (Descriptor, error) {
	if c.lastDescriptor.Length == 0 {
		return Descriptor{}, UnsetInstructionAtFetch{}
	}
	return c.lastDescriptor, nil
}

// execute dispatches on the decoded mnemonic tag -- a single switch, no
// reflection, per the redesign spec.md §9 calls for -- and returns the
// instruction's own extra-cycle flag.
func (c *Chip) execute(m Mnemonic) (int, error) {
	switch m {
	case ADC:
		return c.adc(), nil
	case AND:
		return c.and(), nil
	case ASL:
		return c.asl(), nil
	case ASLA:
		return c.asla(), nil
	case BCC:
		return c.bcc(), nil
	case BCS:
		return c.bcs(), nil
	case BEQ:
		return c.beq(), nil
	case BIT:
		return c.bit(), nil
	case BMI:
		return c.bmi(), nil
	case BNE:
		return c.bne(), nil
	case BPL:
		return c.bpl(), nil
	case BRK:
		return c.brk(), nil
	case BVC:
		return c.bvc(), nil
	case BVS:
		return c.bvs(), nil
	case CLC:
		return c.clc(), nil
	case CLD:
		return c.cld(), nil
	case CLI:
		return c.cli(), nil
	case CLV:
		return c.clv(), nil
	case CMP:
		return c.cmp(), nil
	case CPX:
		return c.cpx(), nil
	case CPY:
		return c.cpy(), nil
	case DEC:
		return c.dec(), nil
	case DEX:
		return c.dex(), nil
	case DEY:
		return c.dey(), nil
	case EOR:
		return c.eor(), nil
	case INC:
		return c.inc(), nil
	case INX:
		return c.inx(), nil
	case INY:
		return c.iny(), nil
	case JMP:
		return c.jmp(), nil
	case JSR:
		return c.jsr(), nil
	case LDA:
		return c.lda(), nil
	case LDX:
		return c.ldx(), nil
	case LDY:
		return c.ldy(), nil
	case LSR:
		return c.lsr(), nil
	case LSRA:
		return c.lsra(), nil
	case NOP:
		return c.nop(), nil
	case ORA:
		return c.ora(), nil
	case PHA:
		return c.pha(), nil
	case PHP:
		return c.php(), nil
	case PLA:
		return c.pla(), nil
	case PLP:
		return c.plp(), nil
	case ROL:
		return c.rol(), nil
	case ROLA:
		return c.rola(), nil
	case ROR:
		return c.ror(), nil
	case RORA:
		return c.rora(), nil
	case RTI:
		return c.rti(), nil
	case RTS:
		return c.rts(), nil
	case SBC:
		return c.sbc(), nil
	case SEC:
		return c.sec(), nil
	case SED:
		return c.sed(), nil
	case SEI:
		return c.sei(), nil
	case STA:
		return c.sta(), nil
	case STX:
		return c.stx(), nil
	case STY:
		return c.sty(), nil
	case TAX:
		return c.tax(), nil
	case TAY:
		return c.tay(), nil
	case TSX:
		return c.tsx(), nil
	case TXA:
		return c.txa(), nil
	case TXS:
		return c.txs(), nil
	case TYA:
		return c.tya(), nil
	case XXX:
		c.state = IllegalOpcode
		return 0, nil
	default:
		return 0, InvalidCPUState{Reason: fmt.Sprintf("unimplemented mnemonic %v", m)}
	}
}
