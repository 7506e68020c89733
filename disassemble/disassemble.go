// Package disassemble implements a stateless pretty-printer for decoded
// 6502 instructions. It only reads memory; it never mutates cpu state and
// has no notion of a running chip.
package disassemble

import (
	"fmt"

	"github.com/drewwalton19216801/sharp6502/cpu"
	"github.com/drewwalton19216801/sharp6502/memory"
)

// operandText formats the operand portion of a disassembled line for the
// instruction at pc, per the addressing-mode table in spec.md §6. The
// leading space (when non-empty) is part of the contract: "<MNEMONIC>
// <operand>".
func operandText(pc uint16, desc cpu.Descriptor, m memory.Memory) string {
	switch desc.Mode {
	case cpu.Implied:
		return ""
	case cpu.Immediate:
		return fmt.Sprintf(" #%02X", m.Read(pc+1))
	case cpu.ZeroPage:
		return fmt.Sprintf(" $%02X", m.Read(pc+1))
	case cpu.ZeroPageX:
		return fmt.Sprintf(" $%02X,X", m.Read(pc+1))
	case cpu.ZeroPageY:
		return fmt.Sprintf(" $%02X,Y", m.Read(pc+1))
	case cpu.Relative:
		return fmt.Sprintf(" $%02X", m.Read(pc+1))
	case cpu.Absolute:
		return fmt.Sprintf(" $%04X", memory.ReadWord(m, pc+1))
	case cpu.AbsoluteX:
		return fmt.Sprintf(" $%04X,X", memory.ReadWord(m, pc+1))
	case cpu.AbsoluteY:
		return fmt.Sprintf(" $%04X,Y", memory.ReadWord(m, pc+1))
	case cpu.Indirect:
		return fmt.Sprintf(" ($%04X)", memory.ReadWord(m, pc+1))
	case cpu.IndirectX:
		return fmt.Sprintf(" ($%02X,X)", m.Read(pc+1))
	case cpu.IndirectY:
		return fmt.Sprintf(" ($%02X),Y", m.Read(pc+1))
	default:
		return ""
	}
}

// Step decodes and formats the single instruction at pc, returning its
// text and the number of bytes it occupies (the decoded instruction's
// length -- this does not interpret control flow, so a JMP followed by
// data will disassemble as that literal byte sequence).
func Step(pc uint16, m memory.Memory) (string, int) {
	desc := cpu.Decode(m.Read(pc))
	text := fmt.Sprintf("%-4s%s", desc.Mnemonic.String(), operandText(pc, desc, m))
	return text, int(desc.Length)
}

// Range disassembles count lines starting at pc. Per spec.md §6, the byte
// immediately following an Immediate-mode instruction is emitted as a
// literal "DATA" line rather than decoded as the next opcode; decoding
// then resumes past it.
func Range(pc uint16, count int, m memory.Memory) []string {
	out := make([]string, 0, count)
	addr := pc
	for len(out) < count {
		desc := cpu.Decode(m.Read(addr))
		text, length := Step(addr, m)
		out = append(out, text)
		addr += uint16(length)
		if desc.Mode == cpu.Immediate && len(out) < count {
			out = append(out, "DATA")
			addr++
		}
	}
	return out
}
