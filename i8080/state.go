// Package i8080 implements an instruction-accurate interpreter for the Intel
// 8080 microprocessor: register file, flags, the 256-opcode instruction set,
// a pluggable port I/O surface, and a single-slot interrupt mechanism.
package i8080

// Register indices, matching the bit pattern the 8080 itself uses to encode
// a register operand in an opcode's low 3 bits (except for the accumulator,
// which opcodes encode as 111 but which we keep at a fixed slot here).
const (
	B = iota
	C
	D
	E
	H
	L
	A
	numRegisters
)

const memSize = 1 << 16

// CPU is the complete architectural state of an 8080: the seven byte
// registers, SP, PC, flat 64KiB memory, flags, the interrupt-enable bit, one
// pending-interrupt slot, halt state, a running cycle count, and the 256x256
// port handler tables.
type CPU struct {
	registers [numRegisters]byte
	Sp        uint16
	Pc        uint16
	Memory    [memSize]byte

	flagZ  bool
	flagS  bool
	flagP  bool
	flagCY bool
	flagAC bool

	IntEnable bool
	pending   *byte // nil when no interrupt is pending
	Halt      bool

	TotalCycles uint64
	Exit        bool

	input  [256]InputHandler
	output [256]OutputHandler

	// Trace, when non-nil, receives one line of text per dispatched
	// instruction. Set via SetTracer; nil by default (no overhead).
	Trace func(line string)
}

// New returns a freshly reset CPU. Callers load ROM images into Memory and
// bind port handlers before the first Step.
func New() *CPU {
	cpu := &CPU{}
	cpu.Reset()
	return cpu
}

// Reset zeroes registers, memory, flags, counters, SP and PC, clears
// int_enable, halt, and any pending interrupt. It does not touch bound port
// handlers — those are host wiring, not CPU state.
func (c *CPU) Reset() {
	c.registers = [numRegisters]byte{}
	c.Sp = 0
	c.Pc = 0
	c.Memory = [memSize]byte{}

	c.flagZ = false
	c.flagS = false
	c.flagP = false
	c.flagCY = false
	c.flagAC = false

	c.IntEnable = false
	c.pending = nil
	c.Halt = false

	c.TotalCycles = 0
	c.Exit = false
}

// reg reads register index r (one of B..A above).
func (c *CPU) reg(r int) byte { return c.registers[r] }

// setReg writes register index r.
func (c *CPU) setReg(r int, v byte) { c.registers[r] = v }

// pair reads the 16-bit big-endian pair starting at register hi (hi, hi+1),
// e.g. pair(B) reads BC, pair(D) reads DE, pair(H) reads HL.
func (c *CPU) pair(hi int) uint16 {
	return uint16(c.registers[hi])<<8 | uint16(c.registers[hi+1])
}

// setPair writes the 16-bit pair starting at register hi.
func (c *CPU) setPair(hi int, v uint16) {
	c.registers[hi] = byte(v >> 8)
	c.registers[hi+1] = byte(v)
}

// BC, DE, HL are convenience accessors for the three addressable pairs.
func (c *CPU) BC() uint16 { return c.pair(B) }
func (c *CPU) DE() uint16 { return c.pair(D) }
func (c *CPU) HL() uint16 { return c.pair(H) }

func (c *CPU) setBC(v uint16) { c.setPair(B, v) }
func (c *CPU) setDE(v uint16) { c.setPair(D, v) }
func (c *CPU) setHL(v uint16) { c.setPair(H, v) }

// A returns the accumulator.
func (c *CPU) A() byte { return c.registers[A] }

// B, C, D, E, H, L return the individual byte registers, mainly for
// diagnostics/disassembly callers outside this package; instruction
// execution itself goes through reg/setReg directly.
func (c *CPU) B() byte { return c.registers[B] }
func (c *CPU) C() byte { return c.registers[C] }
func (c *CPU) D() byte { return c.registers[D] }
func (c *CPU) E() byte { return c.registers[E] }
func (c *CPU) H() byte { return c.registers[H] }
func (c *CPU) L() byte { return c.registers[L] }

func (c *CPU) setA(v byte) { c.registers[A] = v }

// ReadMem reads one byte from the 64KiB address space; addr wraps modulo
// 2^16 by virtue of being a uint16.
func (c *CPU) ReadMem(addr uint16) byte { return c.Memory[addr] }

// WriteMem writes one byte. Writes below 0x2000 (ROM in the arcade layout)
// are tolerated — they are meaningless, not rejected; the CPU has no concept
// of read-only memory.
func (c *CPU) WriteMem(addr uint16, v byte) { c.Memory[addr] = v }

// readWord/writeWord read/write a little-endian 16-bit value.
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.ReadMem(addr)
	hi := c.ReadMem(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) writeWord(addr uint16, v uint16) {
	c.WriteMem(addr, byte(v))
	c.WriteMem(addr+1, byte(v>>8))
}

// m reads the pseudo-register M: the memory byte at HL.
func (c *CPU) m() byte { return c.ReadMem(c.HL()) }

// setM writes the pseudo-register M.
func (c *CPU) setM(v byte) { c.WriteMem(c.HL(), v) }

// stackPush pushes one byte, predecrementing SP (wrapping modulo 2^16).
func (c *CPU) stackPush(v byte) {
	c.Sp--
	c.WriteMem(c.Sp, v)
}

// stackPop pops one byte, postincrementing SP (wrapping modulo 2^16).
func (c *CPU) stackPop() byte {
	v := c.ReadMem(c.Sp)
	c.Sp++
	return v
}

// pushWord pushes a 16-bit value high-byte-first, matching the 8080's
// PUSH/CALL/RST convention: after the push, memory[sp] holds the low byte
// and memory[sp+1] the high byte, with sp decremented by 2 overall.
func (c *CPU) pushWord(v uint16) {
	c.stackPush(byte(v >> 8))
	c.stackPush(byte(v))
}

// popWord pops a 16-bit value in the POP/RET convention.
func (c *CPU) popWord() uint16 {
	lo := c.stackPop()
	hi := c.stackPop()
	return uint16(hi)<<8 | uint16(lo)
}

// SetTracer installs (or clears, with nil) a per-instruction trace sink.
func (c *CPU) SetTracer(fn func(line string)) { c.Trace = fn }
