package i8080

// Stack instructions: PUSH/POP rp (and PSW form), XTHL, SPHL. Spec §4.3/§4.5.

// pushRP builds PUSH rp for rp in {B, D, H}.
func pushRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.pushWord(c.pair(hi)) }
}

// popRP builds POP rp for rp in {B, D, H}.
func popRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.setPair(hi, c.popWord()) }
}

// execPUSHPSW pushes A and the packed condition flags byte.
func execPUSHPSW(c *CPU, imm8 byte, imm16 uint16) {
	c.stackPush(c.A())
	c.stackPush(c.packPSW())
}

// execPOPPSW pops the flags byte (unpacked per packPSW's bit layout, spec
// glossary) then A.
func execPOPPSW(c *CPU, imm8 byte, imm16 uint16) {
	psw := c.stackPop()
	c.unpackPSW(psw)
	c.setA(c.stackPop())
}

// execXTHL exchanges HL with the word on top of the stack.
func execXTHL(c *CPU, imm8 byte, imm16 uint16) {
	lo := c.Memory[c.Sp]
	hi := c.Memory[c.Sp+1]
	old := c.HL()
	c.Memory[c.Sp] = byte(old)
	c.Memory[c.Sp+1] = byte(old >> 8)
	c.setHL(uint16(hi)<<8 | uint16(lo))
}

// execSPHL loads SP from HL.
func execSPHL(c *CPU, imm8 byte, imm16 uint16) {
	c.Sp = c.HL()
}
