package i8080

import "fmt"

// Disassemble renders the instruction at addr as one line of text and
// returns it along with the address of the next instruction. Undefined
// opcodes render as "???" rather than erroring — this is a read-only debug
// aid, grounded on the reference emulator's Disassemble8080Op mnemonic
// style, not the execution path.
func (c *CPU) Disassemble(addr uint16) (string, uint16) {
	op := c.Memory[addr]
	inst := opcodeTable[op]
	name := inst.Name
	size := inst.Size
	if inst.Exec == nil {
		size = 1
	}

	var operand string
	switch size {
	case 2:
		operand = fmt.Sprintf(" #$%02X", c.Memory[addr+1])
	case 3:
		lo := c.Memory[addr+1]
		hi := c.Memory[addr+2]
		operand = fmt.Sprintf(" $%04X", uint16(hi)<<8|uint16(lo))
	}

	line := fmt.Sprintf("%04X  %02X  %-8s%s", addr, op, name, operand)
	return line, addr + uint16(size)
}

// DisassembleRange renders every instruction between start and end
// (exclusive), one line per entry, walking by each instruction's own size.
func (c *CPU) DisassembleRange(start, end uint16) []string {
	lines := make([]string, 0, int(end-start))
	addr := start
	for addr < end {
		line, next := c.Disassemble(addr)
		lines = append(lines, line)
		if next <= addr {
			break // size-0 guard; never happens with a well-formed table
		}
		addr = next
	}
	return lines
}

// traceLine formats one already-executed instruction for the Trace sink:
// its mnemonic and operand, its cycle cost, the A/BC/DE/HL/SP state and the
// five flags left behind, and the running cycle total. The line does not
// include the address the instruction ran from, the raw opcode byte, an
// instruction count, or the packed PSW byte. Grounded on the per-step logging the teacher's Cpu6502.Cycle
// writes to cpu.Logger.
func (c *CPU) traceLine(op byte, inst Instruction, imm8 byte, imm16 uint16) string {
	var operand string
	switch inst.Size {
	case 2:
		operand = fmt.Sprintf(" #$%02X", imm8)
	case 3:
		operand = fmt.Sprintf(" $%04X", imm16)
	}

	return fmt.Sprintf(
		"%-8s%-6s cyc=%-3d  A=%02X BC=%04X DE=%04X HL=%04X SP=%04X  Z=%v S=%v P=%v CY=%v AC=%v  total=%d",
		inst.Name, operand, inst.Cycles,
		c.A(), c.BC(), c.DE(), c.HL(), c.Sp,
		c.flagZ, c.flagS, c.flagP, c.flagCY, c.flagAC,
		c.TotalCycles,
	)
}
