package arcade

// ShiftRegister implements the arcade board's external 8-bit shift network
// used for object-position math: writing a byte shifts it in from the top,
// and a separately-latched shift amount selects which 8 of the 16 bits a
// read returns. Spec §2 "Shift register device"; grounded on
// original_source/game/hardware.c's read_shift/write_shift/write_shift_amnt.
type ShiftRegister struct {
	value  uint16
	amount byte // 0-7, low 3 bits of whatever was last written
}

// Write shifts data in as the new high byte, moving the previous high byte
// down to the low byte (port 4).
func (s *ShiftRegister) Write(data byte) {
	s.value = (s.value >> 8) | (uint16(data) << 8)
}

// WriteAmount latches the shift amount, masked to 3 bits (port 2).
func (s *ShiftRegister) WriteAmount(data byte) {
	s.amount = data & 0x07
}

// Read returns the 8 bits of the 16-bit value selected by the latched
// amount (port 3): bits 15-amount down to 8-amount. Amount 0 returns the
// high byte; amount 7 returns bits 8..1 (the high byte's lowest bit on top
// of the low byte's upper seven bits).
func (s *ShiftRegister) Read() byte {
	return byte(s.value >> (8 - s.amount))
}
