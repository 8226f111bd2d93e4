package i8080

// Arithmetic instructions: ADD/ADC/SUB/SBB (register, memory, immediate
// forms), INR/DCR, INX/DCX, DAD, DAA. Flag contracts per spec §4.3.

// addTo performs A <- A + operand + carryIn, setting Z/S/P/CY/AC, and
// writes the result to A. Shared by ADD/ADC/ADI/ACI.
func (c *CPU) addTo(operand byte, carryIn bool) {
	a := c.A()
	result := a + operand
	if carryIn {
		result++
	}
	c.flagCY = addCarry(a, operand, carryIn)
	c.flagAC = addAuxCarry(a, operand, carryIn)
	c.setZSP(result)
	c.setA(result)
}

// subFrom performs A <- A - operand - borrowIn, setting Z/S/P/CY/AC (CY per
// the 8080's carry-on-subtract convention, spec §4.1), and writes A unless
// discard is true (used by CMP, which computes but throws away the result).
func (c *CPU) subFrom(operand byte, borrowIn bool, discard bool) {
	a := c.A()
	result := a - operand
	if borrowIn {
		result--
	}
	c.flagCY = subCarry(a, operand, borrowIn)
	c.flagAC = subAuxCarry(a, operand, borrowIn)
	c.setZSP(result)
	if !discard {
		c.setA(result)
	}
}

func addR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.addTo(c.reg(src), false) }
}
func execADDM(c *CPU, imm8 byte, imm16 uint16) { c.addTo(c.m(), false) }
func execADI(c *CPU, imm8 byte, imm16 uint16)  { c.addTo(imm8, false) }

func adcR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.addTo(c.reg(src), c.flagCY) }
}
func execADCM(c *CPU, imm8 byte, imm16 uint16) { c.addTo(c.m(), c.flagCY) }
func execACI(c *CPU, imm8 byte, imm16 uint16)  { c.addTo(imm8, c.flagCY) }

func subR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.reg(src), false, false) }
}
func execSUBM(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.m(), false, false) }
func execSUI(c *CPU, imm8 byte, imm16 uint16)  { c.subFrom(imm8, false, false) }

func sbbR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.reg(src), c.flagCY, false) }
}
func execSBBM(c *CPU, imm8 byte, imm16 uint16) { c.subFrom(c.m(), c.flagCY, false) }
func execSBI(c *CPU, imm8 byte, imm16 uint16)  { c.subFrom(imm8, c.flagCY, false) }

// inrR builds INR r: +1, Z/S/P/AC updated, CY preserved (spec §4.3).
func inrR(dst int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		before := c.reg(dst)
		after := before + 1
		c.flagAC = addAuxCarry(before, 1, false)
		c.setZSP(after)
		c.setReg(dst, after)
	}
}

// execINRM is INR M.
func execINRM(c *CPU, imm8 byte, imm16 uint16) {
	before := c.m()
	after := before + 1
	c.flagAC = addAuxCarry(before, 1, false)
	c.setZSP(after)
	c.setM(after)
}

// dcrR builds DCR r: -1, Z/S/P/AC updated (AC via the subtract trick with no
// borrow-in), CY preserved.
func dcrR(dst int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		before := c.reg(dst)
		after := before - 1
		c.flagAC = subAuxCarry(before, 1, false)
		c.setZSP(after)
		c.setReg(dst, after)
	}
}

// execDCRM is DCR M.
func execDCRM(c *CPU, imm8 byte, imm16 uint16) {
	before := c.m()
	after := before - 1
	c.flagAC = subAuxCarry(before, 1, false)
	c.setZSP(after)
	c.setM(after)
}

// inxRP builds INX rp: +1 on the pair, no flags.
func inxRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.setPair(hi, c.pair(hi)+1) }
}

// dcxRP builds DCX rp: -1 on the pair, no flags.
func dcxRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) { c.setPair(hi, c.pair(hi)-1) }
}

func execINXSP(c *CPU, imm8 byte, imm16 uint16) { c.Sp++ }
func execDCXSP(c *CPU, imm8 byte, imm16 uint16) { c.Sp-- }

// dadRP builds DAD rp: HL <- HL + rp, only CY updated, from a 17-bit sum.
func dadRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		sum := uint32(c.HL()) + uint32(c.pair(hi))
		c.flagCY = sum > 0xFFFF
		c.setHL(uint16(sum))
	}
}

// execDADSP is DAD SP.
func execDADSP(c *CPU, imm8 byte, imm16 uint16) {
	sum := uint32(c.HL()) + uint32(c.Sp)
	c.flagCY = sum > 0xFFFF
	c.setHL(uint16(sum))
}

// execDAA decimal-adjusts A in the two-step sequence of spec §4.3: a low-
// nibble correction (updating AC), then a sticky high-nibble correction
// (CY is never cleared by DAA, only ever set).
func execDAA(c *CPU, imm8 byte, imm16 uint16) {
	before := c.A()
	a := before
	var corr byte

	if a&0x0F > 9 || c.flagAC {
		corr += 0x06
		a += 0x06
	}
	if a>>4 > 9 || c.flagCY {
		corr += 0x60
		a += 0x60
		c.flagCY = true
	}

	c.flagAC = addAuxCarry(before, corr, false)
	c.setZSP(a)
	c.setA(a)
}
