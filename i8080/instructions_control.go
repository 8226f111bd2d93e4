package i8080

// Control instructions: CMA, CMC, STC, NOP, HLT, EI, DI. Spec §4.3/§4.4.

// execCMA complements A; no flags affected.
func execCMA(c *CPU, imm8 byte, imm16 uint16) {
	c.setA(^c.A())
}

// execCMC complements CY; no other flags affected.
func execCMC(c *CPU, imm8 byte, imm16 uint16) {
	c.flagCY = !c.flagCY
}

// execSTC sets CY; no other flags affected.
func execSTC(c *CPU, imm8 byte, imm16 uint16) {
	c.flagCY = true
}

// execNOP does nothing.
func execNOP(c *CPU, imm8 byte, imm16 uint16) {}

// execHLT halts the CPU. decode.go's Step keeps returning without advancing
// PC further until an interrupt is accepted (spec §4.4 "HLT").
func execHLT(c *CPU, imm8 byte, imm16 uint16) {
	c.Halt = true
}

// execEI enables interrupts immediately (spec §5: no one-instruction delay
// is modeled here, matching the arcade ROM's usage).
func execEI(c *CPU, imm8 byte, imm16 uint16) {
	c.IntEnable = true
}

// execDI disables interrupts immediately.
func execDI(c *CPU, imm8 byte, imm16 uint16) {
	c.IntEnable = false
}
