// Package cpu implements the MOS 6502 family instruction-cycle engine:
// opcode decoding, addressing-mode resolution, instruction semantics,
// interrupt/reset handling and cycle accounting. It is instruction-cycle
// accurate (a whole instruction completes the tick its cycle counter
// reaches zero), not sub-cycle accurate.
package cpu

import (
	"fmt"

	"github.com/drewwalton19216801/sharp6502/irq"
	"github.com/drewwalton19216801/sharp6502/memory"
)

// Variant selects which member of the 6502 family is being emulated. It
// may be changed between instruction boundaries; changing it mid
// instruction is undefined, per the external contract.
type Variant int

// The three variants this core models.
const (
	NMOS Variant = iota // Original NMOS 6502, including documented silicon quirks.
	CMOS                // 65C02.
	NES                 // Ricoh 2A03: NMOS-compatible except BCD mode is unavailable.
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "NMOS"
	case CMOS:
		return "CMOS"
	case NES:
		return "NES"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// State reflects where the clock driver is within the current tick.
type State int

// Clock driver states, §3.
const (
	Stopped State = iota
	Fetching
	Executing
	Interrupt
	IllegalOpcode
)

// AddressMode tags which effective-address computation an instruction
// uses. This is the enum-tag redesign spec.md §9 asks for in place of the
// source's string-keyed dispatch.
type AddressMode int

// The twelve addressing modes this core resolves.
const (
	Implied AddressMode = iota
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// Mnemonic tags the semantic operation an opcode performs. Accumulator
// forms of the shift/rotate group get their own tag (ASLA, LSRA, ROLA,
// RORA) so the executor never needs to inspect the opcode to know whether
// to operate on A or on addr_abs.
type Mnemonic int

// The full set of documented 6502 mnemonics plus the XXX sentinel for
// undocumented opcodes.
const (
	XXX Mnemonic = iota
	ADC
	AND
	ASL
	ASLA
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	LSRA
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROLA
	ROR
	RORA
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonicNames = map[Mnemonic]string{
	XXX: "XXX", ADC: "ADC", AND: "AND", ASL: "ASL", ASLA: "ASL", BCC: "BCC",
	BCS: "BCS", BEQ: "BEQ", BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL",
	BRK: "BRK", BVC: "BVC", BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI",
	CLV: "CLV", CMP: "CMP", CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX",
	DEY: "DEY", EOR: "EOR", INC: "INC", INX: "INX", INY: "INY", JMP: "JMP",
	JSR: "JSR", LDA: "LDA", LDX: "LDX", LDY: "LDY", LSR: "LSR", LSRA: "LSR",
	NOP: "NOP", ORA: "ORA", PHA: "PHA", PHP: "PHP", PLA: "PLA", PLP: "PLP",
	ROL: "ROL", ROLA: "ROL", ROR: "ROR", RORA: "ROR", RTI: "RTI", RTS: "RTS",
	SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA", STX: "STX",
	STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA", TXS: "TXS",
	TYA: "TYA",
}

// String returns the three-letter mnemonic text for disassembly.
func (m Mnemonic) String() string {
	if s, ok := mnemonicNames[m]; ok {
		return s
	}
	return "XXX"
}

// Descriptor is the immutable per-opcode metadata the instruction table
// holds: mnemonic, byte length, base cycle count and addressing mode.
// Any opcode absent from the documented set decodes to {XXX, Implied, 1, 1}.
type Descriptor struct {
	Opcode   uint8
	Mnemonic Mnemonic
	Mode     AddressMode
	Length   uint8
	Cycles   uint8
}

// PageCrossPenaltyMode selects how the addressing-mode extra-cycle flag
// and the instruction extra-cycle flag combine into the actual penalty
// charged. See spec.md §9 Open Question 3.
type PageCrossPenaltyMode int

const (
	// PenaltyAND charges the penalty only when both the addressing mode's
	// extra-cycle flag and the instruction's own extra-cycle flag are set.
	// This is the default: spec.md §4.7 step 9 defines the combine as a
	// literal `A & B`, and it's the only combination under which the §8
	// scenarios' cycle counts (e.g. LDA immediate at exactly 2 cycles) hold.
	PenaltyAND PageCrossPenaltyMode = iota
	// PenaltyOR instead charges the penalty whenever either flag is set.
	// Open Question 3's prose describes this as "reference hardware"
	// behavior, but the spec body and §8 scenarios contradict that framing;
	// kept as a configurable alternative for comparison testing.
	PenaltyOR
)

// Config carries the handful of knobs that affect cycle-accounting
// behavior without changing the instruction semantics themselves.
type Config struct {
	PageCrossPenaltyMode PageCrossPenaltyMode
}

// Status flag bitmasks within P. Bit5 (Unused) is always 1 whenever P is
// observable at an instruction boundary.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// Vector addresses, §6.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// Chip holds all process-wide 6502 state: registers, scratch state used by
// the resolver/executor, and the wiring to an external bus and interrupt
// sources. Multiple independent Chip values may coexist; nothing here is
// global.
type Chip struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	fetched         uint8
	addrAbs         uint16
	addrRel         uint16
	opcode          uint8
	temp            uint16
	cyclesRemaining uint8
	state           State
	variant         Variant

	bus memory.Memory
	irq irq.Sender
	nmi irq.Sender

	cfg Config

	// lastDescriptor is the decoded instruction captured at the most
	// recent fetch boundary, kept for disassembly snapshotting (§4.7 step 6).
	lastDescriptor Descriptor
	lastPC         uint16
}

// InvalidCPUState indicates an internal inconsistency in the core. Tick
// returns it when the executor is handed a mnemonic it has no case for;
// every mnemonic the instruction table produces has one.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// UnsetInstructionAtFetch is returned by LastDescriptor when no instruction
// has been decoded since construction or Reset.
type UnsetInstructionAtFetch struct{}

func (e UnsetInstructionAtFetch) Error() string {
	return "no instruction has been fetched yet"
}

// New returns a Chip wired to bus with the given variant and optional
// interrupt sources (either may be nil). The chip is not yet powered on;
// call PowerOn or Reset before ticking.
func New(variant Variant, bus memory.Memory, irqSrc, nmiSrc irq.Sender, cfg Config) *Chip {
	return &Chip{
		variant: variant,
		bus:     bus,
		irq:     irqSrc,
		nmi:     nmiSrc,
		cfg:     cfg,
		state:   Stopped,
	}
}

// Variant returns the chip's current variant.
func (c *Chip) Variant() Variant { return c.variant }

// SetVariant changes the chip's variant. Behavior across a mid-instruction
// change is undefined, per the external contract; callers should only do
// this at an instruction boundary (cyclesRemaining == 0).
func (c *Chip) SetVariant(v Variant) { c.variant = v }

// State returns the clock driver's current state.
func (c *Chip) State() State { return c.state }
