package i8080

// Rotate instructions: RLC, RRC, RAL, RAR. Only CY is affected (spec §4.3);
// unlike ROL/ROR in other ISAs, the old bit that falls off always becomes
// the new CY, and RAL/RAR additionally pull the old CY in at the other end.

// execRLC rotates A left; bit 7 goes to both bit 0 and CY.
func execRLC(c *CPU, imm8 byte, imm16 uint16) {
	a := c.A()
	bit7 := a >> 7
	c.flagCY = bit7 == 1
	c.setA(a<<1 | bit7)
}

// execRRC rotates A right; bit 0 goes to both bit 7 and CY.
func execRRC(c *CPU, imm8 byte, imm16 uint16) {
	a := c.A()
	bit0 := a & 0x01
	c.flagCY = bit0 == 1
	c.setA(a>>1 | bit0<<7)
}

// execRAL rotates A left through CY: old CY becomes bit 0, bit 7 becomes CY.
func execRAL(c *CPU, imm8 byte, imm16 uint16) {
	a := c.A()
	bit7 := a >> 7
	var carryIn byte
	if c.flagCY {
		carryIn = 1
	}
	c.flagCY = bit7 == 1
	c.setA(a<<1 | carryIn)
}

// execRAR rotates A right through CY: old CY becomes bit 7, bit 0 becomes CY.
func execRAR(c *CPU, imm8 byte, imm16 uint16) {
	a := c.A()
	bit0 := a & 0x01
	var carryIn byte
	if c.flagCY {
		carryIn = 1
	}
	c.flagCY = bit0 == 1
	c.setA(a>>1 | carryIn<<7)
}
