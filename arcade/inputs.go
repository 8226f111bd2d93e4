package arcade

// Cabinet input bit assignments for INP1 (port 1) and INP2 (port 2),
// grounded on original_source/game/hardware.c's PORT_BITS enum. Bit 3 of
// INP1 and bits 0/3/7 of INP2 are tied to fixed values the ROM expects
// (coin-info/bonus-life DIP switches) rather than live controls;
// NewInputLatches sets INP1 bit 3 to 1 and leaves those INP2 bits at 0.
const (
	inp1Credit  = 1 << 0
	inp1Start2P = 1 << 1
	inp1Start1P = 1 << 2
	inp1Shot    = 1 << 4
	inp1Left    = 1 << 5
	inp1Right   = 1 << 6

	inp2Tilt  = 1 << 2
	inp2Shot  = 1 << 4
	inp2Left  = 1 << 5
	inp2Right = 1 << 6
)

// InputLatches holds the two live input-port bytes the host mutates as
// cabinet buttons are pressed/released, and the CPU reads via IN 1/IN 2.
type InputLatches struct {
	inp1 byte
	inp2 byte
}

// NewInputLatches returns latches with bit 3 of INP1 set, matching the
// fixed "always 1" bit the ROM's input read expects on real hardware.
func NewInputLatches() *InputLatches {
	return &InputLatches{inp1: 1 << 3}
}

func (in *InputLatches) ReadINP1() byte { return in.inp1 }
func (in *InputLatches) ReadINP2() byte { return in.inp2 }

func setBit(reg *byte, bit byte, down bool) {
	if down {
		*reg |= bit
	} else {
		*reg &^= bit
	}
}

// SetCredit, SetStart1P, SetStart2P, SetTilt set/clear the coin slot and
// start/tilt switches.
func (in *InputLatches) SetCredit(down bool)  { setBit(&in.inp1, inp1Credit, down) }
func (in *InputLatches) SetStart1P(down bool) { setBit(&in.inp1, inp1Start1P, down) }
func (in *InputLatches) SetStart2P(down bool) { setBit(&in.inp1, inp1Start2P, down) }
func (in *InputLatches) SetTilt(down bool)    { setBit(&in.inp2, inp2Tilt, down) }

// SetPlayer1Shot/Left/Right and SetPlayer2Shot/Left/Right drive the
// per-player control bits, mirrored across both ports on a cocktail
// cabinet in two-player mode (spec §2 "Input latches").
func (in *InputLatches) SetPlayer1Shot(down bool)  { setBit(&in.inp1, inp1Shot, down) }
func (in *InputLatches) SetPlayer1Left(down bool)  { setBit(&in.inp1, inp1Left, down) }
func (in *InputLatches) SetPlayer1Right(down bool) { setBit(&in.inp1, inp1Right, down) }

func (in *InputLatches) SetPlayer2Shot(down bool)  { setBit(&in.inp2, inp2Shot, down) }
func (in *InputLatches) SetPlayer2Left(down bool)  { setBit(&in.inp2, inp2Left, down) }
func (in *InputLatches) SetPlayer2Right(down bool) { setBit(&in.inp2, inp2Right, down) }
