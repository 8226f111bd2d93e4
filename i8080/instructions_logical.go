package i8080

// Logical instructions: ANA/ANI, XRA/XRI, ORA/ORI, CMP/CPI. Spec §4.3.

// anaWith implements A <- A & operand: Z/S/P from result, CY cleared, and
// AC set to bit 3 of (a | operand) — the 8080 quirk the arcade ROM relies
// on (spec §4.3/§9), not a real carry.
func (c *CPU) anaWith(operand byte) {
	a := c.A()
	result := a & operand
	c.flagAC = andAuxCarry(a, operand)
	c.flagCY = false
	c.setZSP(result)
	c.setA(result)
}

// xraWith/oraWith implement XRA/ORA: CY and AC both cleared, Z/S/P from result.
func (c *CPU) xraWith(operand byte) {
	result := c.A() ^ operand
	c.flagCY = false
	c.flagAC = false
	c.setZSP(result)
	c.setA(result)
}

func (c *CPU) oraWith(operand byte) {
	result := c.A() | operand
	c.flagCY = false
	c.flagAC = false
	c.setZSP(result)
	c.setA(result)
}

func anaR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.anaWith(c.reg(src)) }
}
func execANAM(c *CPU, imm8 byte, imm16 uint16) { c.anaWith(c.m()) }
func execANI(c *CPU, imm8 byte, imm16 uint16)  { c.anaWith(imm8) }

func xraR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.xraWith(c.reg(src)) }
}
func execXRAM(c *CPU, imm8 byte, imm16 uint16) { c.xraWith(c.m()) }
func execXRI(c *CPU, imm8 byte, imm16 uint16)  { c.xraWith(imm8) }

func oraR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.oraWith(c.reg(src)) }
}
func execORAM(c *CPU, imm8 byte, imm16 uint16) { c.oraWith(c.m()) }
func execORI(c *CPU, imm8 byte, imm16 uint16)  { c.oraWith(imm8) }

// cmpR/execCMPM/execCPI compute A-operand exactly like SUB but discard the
// result, keeping all five flags (spec §4.3 "CMP").
func cmpR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.reg(src), false, true) }
}
func execCMPM(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.m(), false, true) }
func execCPI(c *CPU, imm8 byte, imm16 uint16)  { c.subFrom(imm8, false, true) }
