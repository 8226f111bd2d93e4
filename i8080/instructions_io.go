package i8080

// IN/OUT: the 8080's only connection to the outside world (spec §4.5). The
// CPU itself never knows what a port number means; it just calls whatever
// handler the host bound via BindInput/BindOutput.

// execIN is IN port: A <- host-supplied byte for the given port.
func execIN(c *CPU, imm8 byte, imm16 uint16) {
	c.setA(c.in(imm8))
}

// execOUT is OUT port: host handler receives A for the given port.
func execOUT(c *CPU, imm8 byte, imm16 uint16) {
	c.out(imm8, c.A())
}
