package i8080

// Flag Unit: pure functions computing Z, S, P, CY, AC from pre-operand
// values and a wide intermediate result, per spec §4.1. Kept separate from
// the register file so every instruction's flag contract is visible at a
// glance instead of buried in each opcode body.

// zero reports whether the low byte of v is zero.
func zero(v byte) bool { return v == 0 }

// sign reports whether bit 7 of v is set.
func sign(v byte) bool { return v&0x80 != 0 }

// parity reports whether the low byte of v has an even number of set bits.
func parity(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// addCarry reports the carry out of bit 7 for a + b + carryIn.
func addCarry(a, b byte, carryIn bool) bool {
	sum := uint16(a) + uint16(b)
	if carryIn {
		sum++
	}
	return sum > 0xFF
}

// addAuxCarry reports the carry out of bit 3 for a + b + carryIn.
func addAuxCarry(a, b byte, carryIn bool) bool {
	lo := (a & 0xF) + (b & 0xF)
	if carryIn {
		lo++
	}
	return lo > 0xF
}

// subCarry computes the 8080's carry-on-subtract: a + ^b + (1 - borrowIn),
// carry set iff the 9-bit result exceeds 0xFF (spec §4.1 "CY on subtract").
// This is the opposite sense from ordinary binary subtraction: CY=1 here
// means "no borrow occurred", matching the real chip.
func subCarry(a, b byte, borrowIn bool) bool {
	carryIn := byte(1)
	if borrowIn {
		carryIn = 0
	}
	sum := uint16(a) + uint16(^b&0xFF) + uint16(carryIn)
	return sum > 0xFF
}

// subAuxCarry is the same trick applied to the low nibble.
func subAuxCarry(a, b byte, borrowIn bool) bool {
	carryIn := byte(1)
	if borrowIn {
		carryIn = 0
	}
	lo := uint16(a&0xF) + uint16(^b&0xF) + uint16(carryIn)
	return lo > 0xF
}

// andAuxCarry implements the 8080 quirk used by ANA/ANI: AC is set from bit
// 3 of (a | b), not from any real carry. Spec §4.3/§9 — do not "fix" this.
func andAuxCarry(a, b byte) bool {
	return (a|b)&0x08 != 0
}

// setZSP sets Z, S and P together from a result byte, the combination every
// logical/arithmetic instruction updates.
func (c *CPU) setZSP(result byte) {
	c.flagZ = zero(result)
	c.flagS = sign(result)
	c.flagP = parity(result)
}

// packPSW encodes the Program Status Word byte: bit7=S,6=Z,5=0,4=AC,3=0,2=P,1=1,0=CY.
func (c *CPU) packPSW() byte {
	var psw byte
	if c.flagS {
		psw |= 1 << 7
	}
	if c.flagZ {
		psw |= 1 << 6
	}
	if c.flagAC {
		psw |= 1 << 4
	}
	if c.flagP {
		psw |= 1 << 2
	}
	psw |= 1 << 1 // bit 1 is always 1
	if c.flagCY {
		psw |= 1 << 0
	}
	return psw
}

// unpackPSW decodes a Program Status Word byte into the five flags. Bits 5
// and 3 are ignored on the way in (they are forced to 0 by packPSW and are
// not meaningful on real hardware either).
func (c *CPU) unpackPSW(psw byte) {
	c.flagS = psw&(1<<7) != 0
	c.flagZ = psw&(1<<6) != 0
	c.flagAC = psw&(1<<4) != 0
	c.flagP = psw&(1<<2) != 0
	c.flagCY = psw&(1<<0) != 0
}

// Flags returns a snapshot of the five condition flags, used by
// disassembly/trace output and by tests.
type Flags struct {
	Z, S, P, CY, AC bool
}

func (c *CPU) Flags() Flags {
	return Flags{Z: c.flagZ, S: c.flagS, P: c.flagP, CY: c.flagCY, AC: c.flagAC}
}
