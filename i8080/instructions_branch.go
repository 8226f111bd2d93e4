package i8080

// Branch/flow-control instructions: JMP/Jcond, CALL/Ccond, RET/Rcond, RST,
// PCHL. None touch flags (spec §4.3). Conditional forms are generated from a
// predicate closure over the CPU's current flags, evaluated at dispatch time
// (i.e. using the flags as they stand before this instruction runs).

// execJMP is the unconditional jump.
func execJMP(c *CPU, imm8 byte, imm16 uint16) {
	c.Pc = imm16
}

// jCond builds a conditional jump: PC <- imm16 iff cond(c) holds, else PC is
// left at the address decode.go already advanced it to (past the operand).
func jCond(cond func(c *CPU) bool) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		if cond(c) {
			c.Pc = imm16
		}
	}
}

// execCALL is the unconditional call: push return address, jump.
func execCALL(c *CPU, imm8 byte, imm16 uint16) {
	c.pushWord(c.Pc)
	c.Pc = imm16
}

// cCond builds a conditional call.
func cCond(cond func(c *CPU) bool) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		if cond(c) {
			c.pushWord(c.Pc)
			c.Pc = imm16
		}
	}
}

// execRET is the unconditional return.
func execRET(c *CPU, imm8 byte, imm16 uint16) {
	c.Pc = c.popWord()
}

// rCond builds a conditional return.
func rCond(cond func(c *CPU) bool) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		if cond(c) {
			c.Pc = c.popWord()
		}
	}
}

// rst builds RST n: call to the fixed address n*8. Used both for the
// directly-decoded RST opcodes and for interrupt acceptance, which injects
// one of these opcodes in place of the next fetch (spec §5).
func rst(n byte) execFunc {
	addr := uint16(n) * 8
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.pushWord(c.Pc)
		c.Pc = addr
	}
}

// execPCHL loads PC from HL (an indirect jump).
func execPCHL(c *CPU, imm8 byte, imm16 uint16) {
	c.Pc = c.HL()
}

// Condition predicates, named after the mnemonic suffix (NZ, Z, NC, C, PO,
// PE, P, M) per spec §4.3's condition-code table.
func condNZ(c *CPU) bool { return !c.flagZ }
func condZ(c *CPU) bool  { return c.flagZ }
func condNC(c *CPU) bool { return !c.flagCY }
func condC(c *CPU) bool  { return c.flagCY }
func condPO(c *CPU) bool { return !c.flagP }
func condPE(c *CPU) bool { return c.flagP }
func condP(c *CPU) bool  { return !c.flagS }
func condM(c *CPU) bool  { return c.flagS }
