package i8080

// Data transfer instructions: MOV/MVI/LXI/LDA/STA/LDAX/STAX/LHLD/SHLD/XCHG.
// None of these touch flags (spec §4.3).

// movRR builds MOV r,r': copy src register into dst register.
func movRR(dst, src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setReg(dst, c.reg(src))
	}
}

// movRM builds MOV r,M: load dst from memory at HL.
func movRM(dst int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setReg(dst, c.m())
	}
}

// movMR builds MOV M,r: store src to memory at HL.
func movMR(src int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setM(c.reg(src))
	}
}

// mviR builds MVI r,imm8.
func mviR(dst int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setReg(dst, imm8)
	}
}

// execMVIM is MVI M,imm8.
func execMVIM(c *CPU, imm8 byte, imm16 uint16) {
	c.setM(imm8)
}

// lxiRP builds LXI rp,imm16 for rp in {B, D, H}.
func lxiRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setPair(hi, imm16)
	}
}

// execLXISP is LXI SP,imm16.
func execLXISP(c *CPU, imm8 byte, imm16 uint16) {
	c.Sp = imm16
}

// execSTA is STA addr: store A at an absolute address.
func execSTA(c *CPU, imm8 byte, imm16 uint16) {
	c.WriteMem(imm16, c.A())
}

// execLDA is LDA addr: load A from an absolute address.
func execLDA(c *CPU, imm8 byte, imm16 uint16) {
	c.setA(c.ReadMem(imm16))
}

// staxRP builds STAX rp for rp in {B, D}: store A at the address in the pair.
func staxRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.WriteMem(c.pair(hi), c.A())
	}
}

// ldaxRP builds LDAX rp for rp in {B, D}: load A from the address in the pair.
func ldaxRP(hi int) execFunc {
	return func(c *CPU, imm8 byte, imm16 uint16) {
		c.setA(c.ReadMem(c.pair(hi)))
	}
}

// execSHLD is SHLD addr: store L at addr, H at addr+1.
func execSHLD(c *CPU, imm8 byte, imm16 uint16) {
	c.writeWord(imm16, c.HL())
}

// execLHLD is LHLD addr: load L from addr, H from addr+1.
func execLHLD(c *CPU, imm8 byte, imm16 uint16) {
	c.setHL(c.readWord(imm16))
}

// execXCHG swaps HL and DE.
func execXCHG(c *CPU, imm8 byte, imm16 uint16) {
	hl, de := c.HL(), c.DE()
	c.setHL(de)
	c.setDE(hl)
}
